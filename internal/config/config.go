package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the defaults file looked up in the working directory.
const DefaultPath = "aisplit.yaml"

// Defaults holds optional per-project flag defaults. Command-line flags
// override anything set here.
type Defaults struct {
	OutputDir string `yaml:"output-dir"`
	Encoding  string `yaml:"encoding"`
	Force     bool   `yaml:"force"`
}

// Load reads a YAML defaults file and returns a validated Defaults.
// A missing file is not an error; the zero value is returned.
func Load(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Defaults{}, nil
	}
	if err != nil {
		return nil, err
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
