package schema

// SettingsModel describes the job-specific configuration a connector accepts.
// The derived schema is closed: input carrying a key outside Fields fails
// validation.
type SettingsModel struct {
	Title  string
	Fields []Field
}

// Schema derives the JSON-schema object for the model.
func (m SettingsModel) Schema() ObjectSchema {
	return objectSchema(m.Title, m.Fields)
}

// Defaults returns the declared default value for every field that has one.
func (m SettingsModel) Defaults() map[string]any {
	defaults := make(map[string]any, len(m.Fields))
	for _, f := range m.Fields {
		if f.Default != nil {
			defaults[f.Name] = f.Default
		}
	}
	return defaults
}

// Validate constructs a Settings instance from the input mapping. It fails
// with a *ValidationError when a required field is missing, a value does not
// match its declared type, or an unrecognized key is present.
func (m SettingsModel) Validate(input map[string]any) (Settings, error) {
	resolved, err := validateAgainst(m.Schema(), m.Fields, input)
	if err != nil {
		return nil, err
	}
	return Settings(resolved), nil
}

// Settings is a validated, fully populated settings instance. Treat it as
// read-only after construction.
type Settings map[string]any

// String returns the named field as a string, or "" when absent or not a
// string.
func (s Settings) String(name string) string {
	v, _ := s[name].(string)
	return v
}

// Bool returns the named field as a bool, or false when absent or not a bool.
func (s Settings) Bool(name string) bool {
	v, _ := s[name].(bool)
	return v
}

// Int returns the named field as an int64. JSON decoding produces float64 and
// TOML decoding produces int64; both are accepted.
func (s Settings) Int(name string) int64 {
	switch v := s[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Float returns the named field as a float64.
func (s Settings) Float(name string) float64 {
	switch v := s[name].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
