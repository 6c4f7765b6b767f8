package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError reports why an input mapping was rejected by a model.
type ValidationError struct {
	Model  string
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Model, strings.Join(e.Issues, "; "))
}

// validateAgainst checks input against the derived schema and, on success,
// returns a fresh mapping with declared defaults applied for omitted fields.
func validateAgainst(s ObjectSchema, fields []Field, input map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", s.Title, err)
	}
	if input == nil {
		input = map[string]any{}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(raw), gojsonschema.NewGoLoader(input))
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.Title, err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, issue := range result.Errors() {
			issues = append(issues, issue.String())
		}
		return nil, &ValidationError{Model: s.Title, Issues: issues}
	}

	resolved := make(map[string]any, len(fields))
	for _, f := range fields {
		if f.Default != nil {
			resolved[f.Name] = f.Default
		}
	}
	for k, v := range input {
		resolved[k] = v
	}
	return resolved, nil
}
