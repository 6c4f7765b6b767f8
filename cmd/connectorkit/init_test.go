package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := runInit(dir, &out); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !strings.Contains(out.String(), "Now that you have") {
		t.Fatalf("output = %q, want the next-steps notice", out.String())
	}
	if strings.Contains(out.String(), "skipped") {
		t.Fatalf("output = %q, want no skip warnings in a clean directory", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "connector.go")); err != nil {
		t.Fatalf("connector.go not generated: %v", err)
	}
}

func TestRunInit_SkipsExistingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "connector.toml"), []byte("something"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runInit(dir, &out); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !strings.Contains(out.String(), "skipped existing connector.toml") {
		t.Fatalf("output = %q, want a skip warning for connector.toml", out.String())
	}
	if !strings.Contains(out.String(), "Could not initialize all of the files") {
		t.Fatalf("output = %q, want the dirty-environment warning", out.String())
	}
}
