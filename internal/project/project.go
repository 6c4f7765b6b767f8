// Package project loads and validates the connector.toml manifest that
// drives packaging and marketplace generation.
package project

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest expected at the root of a connector project.
const FileName = "connector.toml"

const defaultTimeout = 3600

var validate = validator.New()

// Author identifies one project author.
type Author struct {
	Name  string `toml:"name" validate:"required"`
	Email string `toml:"email" validate:"required,email"`
}

// URLs are the project's marketplace-facing links.
type URLs struct {
	Repository string `toml:"repository" validate:"required,url"`
	Logo       string `toml:"logo" validate:"required,url"`
	Support    string `toml:"support" validate:"required,url"`
}

// Project holds the package identity fields.
type Project struct {
	Name        string   `toml:"name" validate:"required"`
	Version     string   `toml:"version" validate:"required"`
	Description string   `toml:"description" validate:"required"`
	Authors     []Author `toml:"authors" validate:"min=1,dive"`
	URLs        URLs     `toml:"urls"`
}

// Images names the container images per architecture.
type Images struct {
	AMD64 string `toml:"amd64" validate:"required"`
	ARM64 string `toml:"arm64"`
}

// Resources are the scheduler resource hints for a connector run.
type Resources struct {
	CPU    string `toml:"cpu"`
	Memory string `toml:"memory"`
}

// Connector holds the marketplace listing fields.
type Connector struct {
	Title     string    `toml:"title" validate:"required"`
	Tags      []string  `toml:"tags"`
	Schedule  string    `toml:"schedule"`
	Timeout   int       `toml:"timeout"`
	Resources Resources `toml:"resources"`
	Images    Images    `toml:"images"`
}

// Manifest is the parsed connector.toml.
type Manifest struct {
	Project   Project   `toml:"project"`
	Connector Connector `toml:"connector"`
}

// Load reads and validates a manifest file, applying the default run
// timeout when none is declared.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := toml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.Connector.Timeout == 0 {
		m.Connector.Timeout = defaultTimeout
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}
