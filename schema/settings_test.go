package schema

import (
	"errors"
	"testing"
)

func appSettingsModel() SettingsModel {
	return SettingsModel{
		Title: "AppSettings",
		Fields: []Field{
			{Name: "is_bool", Type: TypeBoolean, Default: true},
			{Name: "region", Type: TypeString, Default: "us-east-1"},
			{Name: "batch_size", Type: TypeInteger, Required: true},
		},
	}
}

func TestSettingsModel_ValidateAppliesInput(t *testing.T) {
	model := appSettingsModel()
	cfg, err := model.Validate(map[string]any{
		"is_bool":    false,
		"region":     "eu-west-1",
		"batch_size": 50,
	})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Bool("is_bool") != false {
		t.Fatalf("is_bool = %v, want false", cfg.Bool("is_bool"))
	}
	if cfg.String("region") != "eu-west-1" {
		t.Fatalf("region = %q, want %q", cfg.String("region"), "eu-west-1")
	}
	if cfg.Int("batch_size") != 50 {
		t.Fatalf("batch_size = %d, want 50", cfg.Int("batch_size"))
	}
}

func TestSettingsModel_ValidateAppliesDefaults(t *testing.T) {
	model := appSettingsModel()
	cfg, err := model.Validate(map[string]any{"batch_size": 10})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !cfg.Bool("is_bool") {
		t.Fatal("is_bool = false, want declared default true")
	}
	if cfg.String("region") != "us-east-1" {
		t.Fatalf("region = %q, want declared default %q", cfg.String("region"), "us-east-1")
	}
}

func TestSettingsModel_ValidateMissingRequired(t *testing.T) {
	model := appSettingsModel()
	if _, err := model.Validate(map[string]any{"is_bool": true}); !isValidationError(err) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
}

func TestSettingsModel_ValidateUnknownField(t *testing.T) {
	model := appSettingsModel()
	_, err := model.Validate(map[string]any{"batch_size": 1, "unexpected_field": 1})
	if !isValidationError(err) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
}

func TestSettingsModel_ValidateWrongType(t *testing.T) {
	model := appSettingsModel()
	_, err := model.Validate(map[string]any{"batch_size": "lots"})
	if !isValidationError(err) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
}

func TestSettingsModel_Defaults(t *testing.T) {
	defaults := appSettingsModel().Defaults()
	if len(defaults) != 2 {
		t.Fatalf("Defaults() len = %d, want 2", len(defaults))
	}
	if defaults["is_bool"] != true {
		t.Fatalf("Defaults()[is_bool] = %v, want true", defaults["is_bool"])
	}
}

func TestSettingsModel_SchemaShape(t *testing.T) {
	s := appSettingsModel().Schema()
	if s.AdditionalProperties {
		t.Fatal("AdditionalProperties = true, want false")
	}
	if s.Type != "object" {
		t.Fatalf("Type = %q, want object", s.Type)
	}
	if s.Title != "AppSettings" {
		t.Fatalf("Title = %q, want AppSettings", s.Title)
	}
	if len(s.Required) != 1 || s.Required[0] != "batch_size" {
		t.Fatalf("Required = %v, want [batch_size]", s.Required)
	}
	prop, ok := s.Properties["is_bool"]
	if !ok {
		t.Fatal("Properties missing is_bool")
	}
	if prop.Title != "Is Bool" {
		t.Fatalf("derived title = %q, want %q", prop.Title, "Is Bool")
	}
	if prop.Default != true {
		t.Fatalf("default = %v, want true", prop.Default)
	}
}

func isValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
