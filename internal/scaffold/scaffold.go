// Package scaffold writes the starter files for a new connector project from
// embedded templates. Existing files are never overwritten; skips are
// reported to the caller.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed templates
var templates embed.FS

// starterFiles maps template names onto their destination in the target
// project, in the order they are generated.
var starterFiles = []struct {
	src  string
	dest string
}{
	{src: "connector.toml.tmpl", dest: "connector.toml"},
	{src: "connector.go.tmpl", dest: "connector.go"},
	{src: "connector_test.go.tmpl", dest: "connector_test.go"},
}

// Result reports which starter files were written and which already existed.
type Result struct {
	Written []string
	Skipped []string
}

// Generate writes the starter files into dir, creating it when necessary.
func Generate(dir string) (Result, error) {
	var res Result
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create project directory: %w", err)
	}
	for _, f := range starterFiles {
		dest := filepath.Join(dir, f.dest)
		if _, err := os.Stat(dest); err == nil {
			res.Skipped = append(res.Skipped, f.dest)
			continue
		}
		raw, err := templates.ReadFile("templates/" + f.src)
		if err != nil {
			return res, fmt.Errorf("read template %s: %w", f.src, err)
		}
		if err := os.WriteFile(dest, raw, 0o644); err != nil {
			return res, fmt.Errorf("write %s: %w", dest, err)
		}
		res.Written = append(res.Written, f.dest)
	}
	return res, nil
}

// Dockerfile returns the build container template used when a project has no
// Dockerfile of its own.
func Dockerfile() ([]byte, error) {
	return templates.ReadFile("templates/Dockerfile")
}
