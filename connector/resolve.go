package connector

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/connectorkit/connectorkit/schema"
)

// ErrNoConfiguration reports that no usable configuration source was
// supplied.
var ErrNoConfiguration = errors.New("no valid configuration presented")

// Resolve produces a validated settings instance from the first usable
// source: an inline JSON string, an existing .json file, or an existing
// .toml file. Once a source is selected there is no fallthrough; any
// validation failure inside it surfaces to the caller as a
// *schema.ValidationError.
func (c *Connector) Resolve(inlineJSON, filename string) (schema.Settings, error) {
	if strings.TrimSpace(inlineJSON) != "" {
		var input map[string]any
		if err := json.Unmarshal([]byte(inlineJSON), &input); err != nil {
			return nil, fmt.Errorf("parse inline config: %w", err)
		}
		return c.settings.Validate(input)
	}

	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			switch strings.ToLower(filepath.Ext(filename)) {
			case ".json":
				return c.resolveJSONFile(filename)
			case ".toml", ".tml":
				return c.resolveTOMLFile(filename)
			}
		}
	}

	return nil, ErrNoConfiguration
}

func (c *Connector) resolveJSONFile(filename string) (schema.Settings, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var input map[string]any
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", filename, err)
	}
	return c.settings.Validate(input)
}

func (c *Connector) resolveTOMLFile(filename string) (schema.Settings, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var input map[string]any
	if err := toml.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", filename, err)
	}
	return c.settings.Validate(input)
}
