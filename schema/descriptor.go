package schema

// Descriptor is the self-describing configuration object served by a
// connector's config subcommand. It carries exactly three keys.
type Descriptor struct {
	Settings    ObjectSchema     `json:"settings"`
	Credentials []CredentialInfo `json:"credentials"`
	Defaults    map[string]any   `json:"defaults"`
}

// CredentialInfo is one credential model's marketplace-facing entry.
type CredentialInfo struct {
	Prefix     string       `json:"prefix"`
	Name       string       `json:"name"`
	Slug       string       `json:"slug"`
	Definition ObjectSchema `json:"definition"`
}

// Describe composes the configuration descriptor from a settings model, the
// credential models, and the default values. Pure function; nil defaults
// fall back to the settings model's declared defaults.
func Describe(settings SettingsModel, credentials []CredentialModel, defaults map[string]any) Descriptor {
	if defaults == nil {
		defaults = settings.Defaults()
	}
	infos := make([]CredentialInfo, 0, len(credentials))
	for _, m := range credentials {
		infos = append(infos, CredentialInfo{
			Prefix:     m.Prefix,
			Name:       m.Name,
			Slug:       m.Slug,
			Definition: m.Definition(),
		})
	}
	return Descriptor{
		Settings:    settings.Schema(),
		Credentials: infos,
		Defaults:    defaults,
	}
}
