package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunMain_Success(t *testing.T) {
	var stderr bytes.Buffer
	code := runMain(func() error { return nil }, &stderr)
	if code != 0 {
		t.Fatalf("runMain() = %d, want 0", code)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr = %q, want empty", stderr.String())
	}
}

func TestRunMain_PlainError(t *testing.T) {
	var stderr bytes.Buffer
	code := runMain(func() error { return errors.New("boom") }, &stderr)
	if code != 1 {
		t.Fatalf("runMain() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Fatalf("stderr = %q, want the error", stderr.String())
	}
}

func TestRunMain_ExitError(t *testing.T) {
	var stderr bytes.Buffer
	code := runMain(func() error {
		return &exitError{code: 2, err: errors.New("bad manifest")}
	}, &stderr)
	if code != 2 {
		t.Fatalf("runMain() = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "bad manifest") {
		t.Fatalf("stderr = %q, want the error", stderr.String())
	}
}

func TestRunMain_SilentExitError(t *testing.T) {
	var stderr bytes.Buffer
	code := runMain(func() error {
		return &exitError{code: 1, silent: true}
	}, &stderr)
	if code != 1 {
		t.Fatalf("runMain() = %d, want 1", code)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr = %q, want empty for a silent error", stderr.String())
	}
}
