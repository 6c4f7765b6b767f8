// Package schema holds the declarative models a connector describes itself
// with: job settings, external-system credentials, and the configuration
// descriptor the marketplace consumes. Models are explicit field-descriptor
// lists; schema derivation and validation operate generically over them.
package schema

import "strings"

// Type is the JSON-schema type of a field.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// FormatPassword marks a field whose value must never appear in logs.
const FormatPassword = "password"

// Field describes one settings or credential attribute.
type Field struct {
	Name        string
	Type        Type
	Title       string
	Description string
	// Format is a JSON-schema format hint such as "uri". Secret fields
	// always emit FormatPassword regardless of this value.
	Format   string
	Required bool
	Default  any
	Secret   bool
}

// Property is the derived JSON-schema representation of a single Field.
type Property struct {
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title"`
	Type        Type   `json:"type"`
}

// ObjectSchema is the derived JSON-schema representation of a model. Unknown
// properties are always rejected.
type ObjectSchema struct {
	AdditionalProperties bool                `json:"additionalProperties"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	Title                string              `json:"title"`
	Type                 string              `json:"type"`
}

func (f Field) property() Property {
	format := f.Format
	if f.Secret {
		format = FormatPassword
	}
	return Property{
		Default:     f.Default,
		Description: f.Description,
		Format:      format,
		Title:       f.title(),
		Type:        f.Type,
	}
}

func (f Field) title() string {
	if f.Title != "" {
		return f.Title
	}
	words := strings.Split(f.Name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func objectSchema(title string, fields []Field) ObjectSchema {
	props := make(map[string]Property, len(fields))
	var required []string
	for _, f := range fields {
		props[f.Name] = f.property()
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return ObjectSchema{
		AdditionalProperties: false,
		Properties:           props,
		Required:             required,
		Title:                title,
		Type:                 "object",
	}
}
