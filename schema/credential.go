package schema

import (
	"fmt"
	"strings"
)

// CredentialModel describes one external system's auth requirements. Prefix,
// Name, and Slug identify the credential kind and are constant per model;
// multiple kinds coexist as long as slugs are unique. Fields hold only the
// auth parameters, never the identity attributes.
type CredentialModel struct {
	Prefix      string
	Name        string
	Slug        string
	Description string
	Fields      []Field
}

// Definition derives the JSON-schema object covering the auth parameter
// fields. The identity attributes (prefix, name, slug, description) are not
// part of the definition.
func (m CredentialModel) Definition() ObjectSchema {
	return objectSchema(m.Name, m.Fields)
}

// EnvSecrets returns the environment variable names that must be treated as
// secret: {PREFIX}_{FIELD} upper-cased for every secret field. Computable
// from the model alone.
func (m CredentialModel) EnvSecrets() []string {
	var names []string
	for _, f := range m.Fields {
		if f.Secret {
			names = append(names, strings.ToUpper(fmt.Sprintf("%s_%s", m.Prefix, f.Name)))
		}
	}
	return names
}

// Validate checks concrete auth parameter values against the model,
// rejecting unknown fields and type mismatches, and returns the values with
// declared defaults applied.
func (m CredentialModel) Validate(input map[string]any) (map[string]any, error) {
	return validateAgainst(m.Definition(), m.Fields, input)
}
