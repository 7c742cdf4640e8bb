package config

import (
	"errors"
	"fmt"

	"bmm-generator/internal/convert"
	"bmm-generator/internal/gen"
)

// File is a batch configuration: the ordered list of models to convert and
// where to write the schemas.
type File struct {
	// OutputDir receives the generated schema files.
	OutputDir string `yaml:"output_dir" toml:"output_dir"`

	// Format of the generated files: "odin" (default) or "yaml".
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`

	// LifecycleState is written to every schema. Defaults to "dstu".
	LifecycleState string `yaml:"lifecycle_state,omitempty" toml:"lifecycle_state,omitempty"`

	// Revision is written to every schema. Defaults to the generation time.
	Revision string `yaml:"revision,omitempty" toml:"revision,omitempty"`

	// Strict fails the run when any source fails.
	Strict bool `yaml:"strict,omitempty" toml:"strict,omitempty"`

	// Sources are converted in list order; later sources may reference
	// classes of earlier ones.
	Sources []SourceDef `yaml:"sources" toml:"sources"`
}

// SourceDef names one model file.
type SourceDef struct {
	Name string `yaml:"name" toml:"name"`
	Path string `yaml:"path" toml:"path"`
}

// Validate checks the configuration for errors.
func (f *File) Validate() error {
	var errs []error

	if len(f.Sources) == 0 {
		errs = append(errs, errors.New("no sources configured"))
	}

	if !gen.Format(f.Format).IsValid() {
		errs = append(errs, fmt.Errorf("unsupported format %q", f.Format))
	}

	names := make(map[string]bool, len(f.Sources))
	paths := make(map[string]bool, len(f.Sources))

	for i, src := range f.Sources {
		if src.Name == "" {
			errs = append(errs, fmt.Errorf("source %d: name is required", i))
		} else if names[src.Name] {
			errs = append(errs, fmt.Errorf("source %d: duplicate name %q", i, src.Name))
		}

		if src.Path == "" {
			errs = append(errs, fmt.Errorf("source %d: path is required", i))
		} else if paths[src.Path] {
			errs = append(errs, fmt.Errorf("source %d: duplicate path %q", i, src.Path))
		}

		names[src.Name] = true
		paths[src.Path] = true
	}

	return errors.Join(errs...)
}

// BatchSources returns the batch sources in configured order.
func (f *File) BatchSources() []convert.Source {
	sources := make([]convert.Source, len(f.Sources))
	for i, src := range f.Sources {
		sources[i] = convert.Source{Name: src.Name, Locator: src.Path}
	}

	return sources
}

// ConvertConfig returns the conversion settings of the file.
func (f *File) ConvertConfig() convert.Config {
	return convert.Config{
		LifecycleState: f.LifecycleState,
		Revision:       f.Revision,
		Strict:         f.Strict,
	}
}

// GeneratorConfig returns the generator settings of the file.
func (f *File) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.Format = gen.Format(f.Format)

	return cfg
}
