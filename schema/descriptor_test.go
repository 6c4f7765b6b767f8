package schema

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestDescribe_TopLevelKeys(t *testing.T) {
	descriptor := Describe(appSettingsModel(), []CredentialModel{cloudCredentialModel()}, nil)
	raw, err := json.Marshal(descriptor)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("top-level keys = %d, want 3", len(top))
	}
	for _, key := range []string{"settings", "credentials", "defaults"} {
		if _, ok := top[key]; !ok {
			t.Fatalf("missing top-level key %q", key)
		}
	}
}

func TestDescribe_CredentialEntries(t *testing.T) {
	descriptor := Describe(appSettingsModel(), []CredentialModel{cloudCredentialModel()}, nil)
	if len(descriptor.Credentials) != 1 {
		t.Fatalf("Credentials len = %d, want 1", len(descriptor.Credentials))
	}
	entry := descriptor.Credentials[0]
	if entry.Prefix != "tio" || entry.Slug != "tvm" || entry.Name != "Tenable Cloud" {
		t.Fatalf("credential identity = %+v, want tio/tvm/Tenable Cloud", entry)
	}
	if len(entry.Definition.Properties) != 3 {
		t.Fatalf("definition properties = %d, want 3", len(entry.Definition.Properties))
	}
}

func TestDescribe_EmptyCredentialsMarshalsAsList(t *testing.T) {
	raw, err := json.Marshal(Describe(appSettingsModel(), nil, nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Contains(raw, []byte(`"credentials":[]`)) {
		t.Fatalf("marshaled descriptor = %s, want an empty credentials list", raw)
	}
}

func TestDescribe_Idempotent(t *testing.T) {
	first, err := json.Marshal(Describe(appSettingsModel(), []CredentialModel{cloudCredentialModel()}, nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	second, err := json.Marshal(Describe(appSettingsModel(), []CredentialModel{cloudCredentialModel()}, nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("descriptor output not byte-identical:\n%s\n%s", first, second)
	}
}

func TestDescribe_DefaultsFallBackToSettingsModel(t *testing.T) {
	descriptor := Describe(appSettingsModel(), nil, nil)
	if descriptor.Defaults["is_bool"] != true {
		t.Fatalf("Defaults[is_bool] = %v, want true", descriptor.Defaults["is_bool"])
	}

	override := map[string]any{"is_bool": false}
	descriptor = Describe(appSettingsModel(), nil, override)
	if descriptor.Defaults["is_bool"] != false {
		t.Fatalf("Defaults[is_bool] = %v, want override false", descriptor.Defaults["is_bool"])
	}
}
