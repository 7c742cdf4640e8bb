package convert

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"bmm-generator/internal/bmm"
	"bmm-generator/internal/diagnostic"
	"bmm-generator/internal/uml"
)

// Config holds configuration for a conversion batch.
type Config struct {
	// LifecycleState is written to every schema (e.g., "dstu").
	LifecycleState string
	// Revision is written to every schema; empty means the generation time.
	Revision string
	// Strict makes Assemble return an error when any source failed.
	Strict bool
}

// DefaultConfig returns the default batch configuration.
func DefaultConfig() Config {
	return Config{
		LifecycleState: "dstu",
		Strict:         false,
	}
}

// Source is one named model in a batch.
type Source struct {
	Name    string
	Locator string
}

// Result is the outcome of one source. Exactly one of Schema and Err is set.
type Result struct {
	Source Source
	Schema *bmm.Schema
	Err    error
}

// OK returns true if the source produced a schema.
func (r Result) OK() bool {
	return r.Err == nil && r.Schema != nil
}

// Batch is the outcome of Assemble: one Result per source, in input order.
type Batch struct {
	// RunID identifies the batch in logs.
	RunID       string
	Results     []Result
	Diagnostics diagnostic.Diagnostics
}

// Schemas returns the produced schemas in production order.
func (b *Batch) Schemas() []*bmm.Schema {
	var out []*bmm.Schema

	for _, r := range b.Results {
		if r.OK() {
			out = append(out, r.Schema)
		}
	}

	return out
}

// Failed returns the results of sources that produced no schema.
func (b *Batch) Failed() []Result {
	var out []Result

	for _, r := range b.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}

	return out
}

// Assembler runs the conversion pipeline over an ordered batch of sources.
type Assembler struct {
	loader     uml.Loader
	translator *Translator
	config     Config
	logger     *slog.Logger
}

// NewAssembler creates a new Assembler. A nil logger discards output.
func NewAssembler(loader uml.Loader, config Config, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Assembler{
		loader:     loader,
		translator: NewTranslator(config, logger),
		config:     config,
		logger:     logger,
	}
}

// Assemble converts every source in order. Each model is loaded with the
// models of the sources before it available for cross-source references, and
// each produced schema includes every schema produced before it.
//
// A source that fails to load, index or translate gets an error Result and an
// error diagnostic; the remaining sources are still processed. In strict mode
// Assemble returns the batch together with an error if any source failed.
func (a *Assembler) Assemble(sources []Source) (*Batch, error) {
	batch := &Batch{
		RunID:   uuid.NewString(),
		Results: make([]Result, 0, len(sources)),
	}

	logger := a.logger.With("run", batch.RunID)
	var deps []*uml.Model

	var produced []*bmm.Schema

	// producedBy maps schema ids to the source that first produced them.
	producedBy := make(map[string]string)

	for i, src := range sources {
		log := logger.With("source", src.Name)
		log.Info("processing model", "locator", src.Locator)

		model, err := a.load(i, src, deps)
		if err == nil && i < len(sources)-1 {
			deps = append(deps, model)
		}

		var schema *bmm.Schema
		if err == nil {
			schema, err = a.translate(src, model)
		}

		if err != nil {
			log.Error("model conversion failed", "error", err)
			a.record(&batch.Diagnostics, src, err)
			batch.Results = append(batch.Results, Result{Source: src, Err: err})

			continue
		}

		for _, prev := range produced {
			schema.AddInclude(prev.Identifier())
		}

		id := schema.Identifier()
		if prev, ok := producedBy[id]; ok {
			log.Warn("schema id already produced", "id", id, "previous", prev)
			batch.Diagnostics.AddWarning(CodeDuplicateSchema,
				fmt.Sprintf("schema id %q is also produced by %s", id, prev), src.Name, "")
		} else {
			producedBy[id] = src.Name
		}

		produced = append(produced, schema)
		batch.Results = append(batch.Results, Result{Source: src, Schema: schema})

		log.Info("schema produced", "id", id, "includes", len(schema.Includes))
	}

	if a.config.Strict && batch.Diagnostics.HasErrors() {
		return batch, fmt.Errorf("strict mode: %d of %d sources failed", len(batch.Failed()), len(sources))
	}

	return batch, nil
}

func (a *Assembler) load(i int, src Source, deps []*uml.Model) (*uml.Model, error) {
	var available []*uml.Model
	if i > 0 {
		available = deps
	}

	model, err := a.loader.Load(src.Locator, available)
	if err != nil {
		return nil, &LoadError{Source: src.Name, Err: err}
	}

	if model.Name == "" {
		model.Name = src.Name
	}

	if err := model.BuildIndex(); err != nil {
		return nil, &IndexError{Source: src.Name, Err: err}
	}

	return model, nil
}

func (a *Assembler) translate(src Source, model *uml.Model) (*bmm.Schema, error) {
	schema, err := a.translator.Translate(src.Name, model)
	if err != nil {
		return nil, &TranslateError{Source: src.Name, Err: err}
	}

	return schema, nil
}

// record adds the error diagnostic for a failed source.
func (a *Assembler) record(diags *diagnostic.Diagnostics, src Source, err error) {
	var (
		unresolved *uml.UnresolvedReferenceError
		missing    *MissingMetadataError
		indexErr   *IndexError
	)

	switch {
	case errors.As(err, &unresolved):
		diags.AddError(CodeUnresolvedReference, err.Error(), src.Name, unresolved.Referrer)
	case errors.As(err, &indexErr):
		diags.AddError(CodeIndexFailed, err.Error(), src.Name, "")
	case errors.As(err, &missing):
		diags.AddError(CodeMissingMetadata, err.Error(), src.Name, missing.Stereotype)
	case isLoadError(err):
		diags.AddError(CodeLoadFailed, err.Error(), src.Name, "")
	default:
		diags.AddError(CodeTranslateFailed, err.Error(), src.Name, "")
	}
}

func isLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}
