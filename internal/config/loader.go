package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"bmm-generator/internal/convert"
	"bmm-generator/internal/gen"
)

// Syntax is the encoding of a configuration file.
type Syntax string

const (
	SyntaxYAML Syntax = "yaml"
	SyntaxTOML Syntax = "toml"
)

// SyntaxFor picks the syntax from a file extension; anything but .toml is YAML.
func SyntaxFor(path string) Syntax {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return SyntaxTOML
	}

	return SyntaxYAML
}

// LoadFile loads, defaults and validates a configuration file. Relative
// source paths and the output directory are resolved against the directory
// holding the file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data, SyntaxFor(path))
	if err != nil {
		return nil, err
	}

	resolvePaths(f, filepath.Dir(path))

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return f, nil
}

// Parse parses configuration data and applies defaults. It does not validate.
func Parse(data []byte, syntax Syntax) (*File, error) {
	var f File

	switch syntax {
	case SyntaxTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	applyDefaults(&f)

	return &f, nil
}

// Marshal serializes a configuration file in the given syntax.
func Marshal(f *File, syntax Syntax) ([]byte, error) {
	if syntax == SyntaxTOML {
		return toml.Marshal(*f)
	}

	return yaml.Marshal(f)
}

// Template returns an example configuration with two sources, the second
// depending on the first.
func Template() *File {
	f := &File{
		OutputDir: "./bmm",
		Sources: []SourceDef{
			{Name: "FOUNDATION", Path: "./models/foundation.yaml"},
			{Name: "CORE", Path: "./models/core.yaml"},
		},
	}

	applyDefaults(f)

	return f
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Format == "" {
		f.Format = string(gen.DefaultGeneratorConfig().Format)
	}

	if f.LifecycleState == "" {
		f.LifecycleState = convert.DefaultConfig().LifecycleState
	}

	if f.OutputDir == "" {
		f.OutputDir = "."
	}
}

func resolvePaths(f *File, base string) {
	if !filepath.IsAbs(f.OutputDir) {
		f.OutputDir = filepath.Join(base, f.OutputDir)
	}

	for i := range f.Sources {
		p := f.Sources[i].Path
		if p != "" && !filepath.IsAbs(p) {
			f.Sources[i].Path = filepath.Join(base, p)
		}
	}
}
