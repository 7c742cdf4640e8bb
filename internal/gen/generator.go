package gen

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"bmm-generator/internal/bmm"
)

// Format selects the serialization of generated schemas.
type Format string

const (
	// FormatODIN is the native BMM persistence syntax.
	FormatODIN Format = "odin"
	// FormatYAML is a YAML rendering of the same schema.
	FormatYAML Format = "yaml"
)

// IsValid returns true if the format is a recognized value.
func (f Format) IsValid() bool {
	return f == FormatODIN || f == FormatYAML
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".bmm.yaml"
	}

	return ".bmm"
}

// GeneratorConfig holds configuration for schema generation.
type GeneratorConfig struct {
	// Format of the generated files.
	Format Format
	// BMMVersion is written to the bmm_version field of ODIN output.
	BMMVersion string
	// GeneratorName appears in the header comment of ODIN output.
	GeneratorName string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Format:        FormatODIN,
		BMMVersion:    "2.1",
		GeneratorName: "bmm-generator",
	}
}

// Generator renders BMM schemas to files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a rendered schema file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "CIMI_CIMI-RM.v.0.0.4.bmm").
	Filename string
	// Content is the serialized schema.
	Content []byte
}

// DuplicateFileError reports two schemas that map to the same file name.
type DuplicateFileError struct {
	Filename string
	// Index is the position of the second schema in the input.
	Index int
}

func (e *DuplicateFileError) Error() string {
	return fmt.Sprintf("schema %d would overwrite %s", e.Index, e.Filename)
}

// Generate renders every schema, preserving order. It fails with a
// *DuplicateFileError if two schemas map to the same file name.
func (g *Generator) Generate(schemas []*bmm.Schema) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(schemas))
	seen := make(map[string]bool, len(schemas))

	for i, schema := range schemas {
		filename := FileName(schema, g.config.Format)
		if seen[filename] {
			return nil, &DuplicateFileError{Filename: filename, Index: i}
		}

		seen[filename] = true

		content, err := g.Render(schema)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", schema.Identifier(), err)
		}

		files = append(files, GeneratedFile{
			Filename: filename,
			Content:  content,
		})
	}

	return files, nil
}

// Render serializes one schema in the configured format.
func (g *Generator) Render(schema *bmm.Schema) ([]byte, error) {
	switch g.config.Format {
	case FormatODIN, "":
		if err := checkGenericParameters(schema); err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := schemaTemplate.Execute(&buf, g.buildTemplateData(schema)); err != nil {
			return nil, fmt.Errorf("executing template: %w", err)
		}

		return buf.Bytes(), nil

	case FormatYAML:
		data, err := yaml.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("marshaling schema: %w", err)
		}

		return data, nil

	default:
		return nil, fmt.Errorf("unsupported format %q", g.config.Format)
	}
}

// FileName returns "<publisher>_<schema name>.v.<release>" plus the format extension.
func FileName(schema *bmm.Schema, format Format) string {
	return schema.RMPublisher + "_" + schema.SchemaName + ".v." + schema.RMRelease + format.Extension()
}

// checkGenericParameters rejects generic property types with no parameters,
// which have no ODIN list rendering.
func checkGenericParameters(schema *bmm.Schema) error {
	for _, classes := range [][]*bmm.Class{schema.PrimitiveTypes, schema.ClassDefinitions} {
		for _, c := range classes {
			for _, p := range c.Properties {
				gt, ok := p.Type.(bmm.GenericType)
				if !ok {
					if ct, isContainer := p.Type.(bmm.ContainerType); isContainer {
						gt, ok = ct.Element.(bmm.GenericType)
					}
				}

				if ok && len(gt.Parameters) == 0 {
					return fmt.Errorf("property %s.%s: generic type %s has no parameters", c.Name, p.Name, gt.RootType)
				}
			}
		}
	}

	return nil
}
