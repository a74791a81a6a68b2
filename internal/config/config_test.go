package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileIsZeroValue(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "aisplit.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *d != (Defaults{}) {
		t.Fatalf("expected zero defaults, got %+v", d)
	}
}

func TestLoad_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aisplit.yaml")
	content := "output-dir: ./out\nencoding: latin1\nforce: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.OutputDir != "./out" {
		t.Fatalf("expected output-dir ./out, got %q", d.OutputDir)
	}
	if d.Encoding != "latin1" {
		t.Fatalf("expected encoding latin1, got %q", d.Encoding)
	}
	if !d.Force {
		t.Fatal("expected force true")
	}
}

func TestLoad_RejectsUnknownEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aisplit.yaml")
	if err := os.WriteFile(path, []byte("encoding: no-such-charset\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown encoding")
	}
	if !strings.Contains(err.Error(), "unsupported encoding") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aisplit.yaml")
	if err := os.WriteFile(path, []byte("output-dir: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
