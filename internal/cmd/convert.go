package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"bmm-generator/internal/config"
	"bmm-generator/internal/convert"
	"bmm-generator/internal/gen"
	"bmm-generator/internal/uml"
)

// BatchOptions are the flags shared by commands that run a batch.
type BatchOptions struct {
	Batch  string `arg:"" name:"batch" help:"Batch file (YAML or TOML) listing the models to convert" type:"existingfile"`
	Strict bool   `help:"Fail when any model fails to convert" env:"BMMGEN_STRICT"`
}

// load reads the batch file and applies flag overrides.
func (o *BatchOptions) load() (*config.File, error) {
	f, err := config.LoadFile(o.Batch)
	if err != nil {
		return nil, err
	}

	if o.Strict {
		f.Strict = true
	}

	return f, nil
}

// run converts every source of the batch file.
func (o *BatchOptions) run(f *config.File, logger *slog.Logger) (*convert.Batch, error) {
	assembler := convert.NewAssembler(uml.NewYAMLLoader(), f.ConvertConfig(), logger)

	return assembler.Assemble(f.BatchSources())
}

// Convert converts a batch and writes one schema file per converted model.
type Convert struct {
	BatchOptions `embed:""`

	Output string `help:"Output directory, overriding the batch file" type:"path" env:"BMMGEN_OUTPUT"`
	Format string `help:"Output format (odin or yaml), overriding the batch file" env:"BMMGEN_FORMAT"`
}

// Run is called by Kong when the convert command is executed.
func (c *Convert) Run(logger *slog.Logger) error {
	f, err := c.load()
	if err != nil {
		return err
	}

	if c.Output != "" {
		f.OutputDir = c.Output
	}

	if c.Format != "" {
		if !gen.Format(c.Format).IsValid() {
			return fmt.Errorf("unsupported format %q", c.Format)
		}

		f.Format = c.Format
	}

	// In strict mode the batch comes back with an error; the schemas that
	// were produced are still written.
	batch, assembleErr := c.run(f, logger)
	if batch == nil {
		return assembleErr
	}

	generator := gen.NewGenerator(f.GeneratorConfig())

	var files []gen.GeneratedFile

	// writtenBy maps file names to the source whose schema claimed them.
	writtenBy := make(map[string]string)
	skipped := 0

	for _, r := range batch.Results {
		if !r.OK() {
			continue
		}

		schema := r.Schema
		filename := gen.FileName(schema, gen.Format(f.Format))

		if prev, ok := writtenBy[filename]; ok {
			logger.Error("schema skipped, file name already used",
				"source", r.Source.Name, "file", filename, "previous", prev)
			batch.Diagnostics.AddError(convert.CodeDuplicateFile,
				fmt.Sprintf("file %s is already written for %s", filename, prev), r.Source.Name, "")

			skipped++

			continue
		}

		content, err := generator.Render(schema)
		if err != nil {
			logger.Error("error generating BMM file", "schema", schema.Identifier(), "error", err)
			continue
		}

		writtenBy[filename] = r.Source.Name

		logger.Info("writing schema", "file", filepath.Join(f.OutputDir, filename))
		files = append(files, gen.GeneratedFile{Filename: filename, Content: content})
	}

	writeErr := gen.WriteFiles(files, f.OutputDir)
	if writeErr != nil {
		logger.Error("error writing BMM files", "error", writeErr)
	}

	failed := len(batch.Failed())
	logger.Info("conversion finished",
		"run", batch.RunID,
		"converted", len(batch.Results)-failed,
		"failed", failed,
		"skipped", skipped,
		"diagnostics", batch.Diagnostics.Summary())

	if writeErr != nil {
		return fmt.Errorf("writing schemas: %w", writeErr)
	}

	if assembleErr == nil && f.Strict && skipped > 0 {
		return fmt.Errorf("strict mode: %d schemas not written, file names collide", skipped)
	}

	return assembleErr
}
