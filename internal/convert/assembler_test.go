package convert

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmm-generator/internal/bmm"
	"bmm-generator/internal/uml"
)

// fakeLoader serves models by locator and records the deps each load saw.
type fakeLoader struct {
	models map[string]func() *uml.Model
	errs   map[string]error
	seen   map[string][]string
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		models: make(map[string]func() *uml.Model),
		errs:   make(map[string]error),
		seen:   make(map[string][]string),
	}
}

func (f *fakeLoader) Load(locator string, deps []*uml.Model) (*uml.Model, error) {
	if deps != nil {
		f.seen[locator] = make([]string, 0, len(deps))
		for _, dep := range deps {
			f.seen[locator] = append(f.seen[locator], dep.Name)
		}
	}

	if err, ok := f.errs[locator]; ok {
		return nil, err
	}

	build, ok := f.models[locator]
	if !ok {
		return nil, errors.New("no such model")
	}

	return build(), nil
}

// identifiedModel returns a model with one leaf package holding classes.
func identifiedModel(publisher, namespace string, classes ...string) func() *uml.Model {
	return func() *uml.Model {
		leaf := &uml.Package{Name: "Core"}
		for _, name := range classes {
			leaf.Classes = append(leaf.Classes, class(name))
		}

		return &uml.Model{Packages: []*uml.Package{{
			Name:        namespace,
			Stereotypes: []*uml.Stereotype{refModelStereotype(publisher, "1.0", namespace)},
			Packages:    []*uml.Package{leaf},
		}}}
	}
}

func includeIDs(s *bmm.Schema) []string {
	ids := make([]string, len(s.Includes))
	for i, inc := range s.Includes {
		ids[i] = inc.ID
	}

	return ids
}

func TestAssemble_IncludesEarlierSchemas(t *testing.T) {
	loader := newFakeLoader()
	loader.models["m1.yaml"] = identifiedModel("Acme", "M1", "A")
	loader.models["m2.yaml"] = identifiedModel("Acme", "M2", "B")
	loader.models["m3.yaml"] = identifiedModel("Acme", "M3", "C")

	batch, err := NewAssembler(loader, DefaultConfig(), nil).Assemble([]Source{
		{Name: "M1", Locator: "m1.yaml"},
		{Name: "M2", Locator: "m2.yaml"},
		{Name: "M3", Locator: "m3.yaml"},
	})
	require.NoError(t, err)
	require.Len(t, batch.Results, 3)
	assert.NotEmpty(t, batch.RunID)

	schemas := batch.Schemas()
	require.Len(t, schemas, 3, spew.Sdump(batch.Results))

	assert.Empty(t, schemas[0].Includes)
	assert.Equal(t, []string{"acme_m1_1.0"}, includeIDs(schemas[1]))
	assert.Equal(t, []string{"acme_m1_1.0", "acme_m2_1.0"}, includeIDs(schemas[2]))
	assert.True(t, batch.Diagnostics.IsValid())
}

func TestAssemble_PassesEarlierModelsAsDeps(t *testing.T) {
	loader := newFakeLoader()
	loader.models["m1.yaml"] = identifiedModel("Acme", "M1", "A")
	loader.models["zeta.yaml"] = identifiedModel("Acme", "ZETA", "B")
	loader.models["alpha.yaml"] = identifiedModel("Acme", "ALPHA", "C")
	loader.models["last.yaml"] = identifiedModel("Acme", "LAST", "D")

	_, err := NewAssembler(loader, DefaultConfig(), nil).Assemble([]Source{
		{Name: "M1", Locator: "m1.yaml"},
		{Name: "ZETA", Locator: "zeta.yaml"},
		{Name: "ALPHA", Locator: "alpha.yaml"},
		{Name: "LAST", Locator: "last.yaml"},
	})
	require.NoError(t, err)

	_, firstSawDeps := loader.seen["m1.yaml"]
	assert.False(t, firstSawDeps)
	assert.Equal(t, []string{"M1"}, loader.seen["zeta.yaml"])
	assert.Equal(t, []string{"M1", "ZETA", "ALPHA"}, loader.seen["last.yaml"])
}

func TestAssemble_FailureIsolation(t *testing.T) {
	loader := newFakeLoader()
	loader.models["m1.yaml"] = identifiedModel("Acme", "M1", "A")
	loader.errs["broken.yaml"] = &uml.UnresolvedReferenceError{Name: "MISSING", Referrer: "X.y"}
	loader.models["m3.yaml"] = identifiedModel("Acme", "M3", "C")

	batch, err := NewAssembler(loader, DefaultConfig(), nil).Assemble([]Source{
		{Name: "M1", Locator: "m1.yaml"},
		{Name: "BROKEN", Locator: "broken.yaml"},
		{Name: "M3", Locator: "m3.yaml"},
	})
	require.NoError(t, err)

	require.Len(t, batch.Failed(), 1)
	failed := batch.Failed()[0]
	assert.Equal(t, "BROKEN", failed.Source.Name)

	var loadErr *LoadError
	assert.True(t, errors.As(failed.Err, &loadErr))

	schemas := batch.Schemas()
	require.Len(t, schemas, 2)
	assert.Equal(t, []string{"acme_m1_1.0"}, includeIDs(schemas[1]))

	diags := batch.Diagnostics.ForSource("BROKEN")
	require.Len(t, diags, 1)
	assert.Equal(t, CodeUnresolvedReference, diags[0].Code)
	assert.Equal(t, "X.y", diags[0].Element)

	_, m3Loaded := loader.seen["m3.yaml"]
	assert.True(t, m3Loaded)
	assert.Equal(t, []string{"M1"}, loader.seen["m3.yaml"])
}

func TestAssemble_DuplicateSchemaID(t *testing.T) {
	unidentified := func(className string) func() *uml.Model {
		return func() *uml.Model {
			return &uml.Model{Packages: []*uml.Package{{
				Name:     "Model",
				Packages: []*uml.Package{{Name: "Core", Classes: []*uml.Class{class(className)}}},
			}}}
		}
	}

	loader := newFakeLoader()
	loader.models["alpha.yaml"] = unidentified("ALPHA")
	loader.models["beta.yaml"] = unidentified("BETA")

	batch, err := NewAssembler(loader, Config{Strict: true}, nil).Assemble([]Source{
		{Name: "ALPHA", Locator: "alpha.yaml"},
		{Name: "BETA", Locator: "beta.yaml"},
	})
	require.NoError(t, err)
	require.Len(t, batch.Schemas(), 2)

	require.Len(t, batch.Diagnostics.Warnings, 1)
	warning := batch.Diagnostics.Warnings[0]
	assert.Equal(t, CodeDuplicateSchema, warning.Code)
	assert.Equal(t, "BETA", warning.Source)
	assert.Contains(t, warning.Message, "ALPHA")
}

func TestAssemble_DiagnosticCodes(t *testing.T) {
	loader := newFakeLoader()
	loader.errs["io.yaml"] = errors.New("permission denied")
	loader.models["dup.yaml"] = func() *uml.Model {
		return &uml.Model{Packages: []*uml.Package{
			{Name: "A", Classes: []*uml.Class{class("X")}},
			{Name: "B", Classes: []*uml.Class{class("X")}},
		}}
	}
	loader.models["meta.yaml"] = func() *uml.Model {
		return &uml.Model{Packages: []*uml.Package{{
			Name:        "RM",
			Stereotypes: []*uml.Stereotype{{Name: "ReferenceModel"}},
		}}}
	}
	loader.models["untyped.yaml"] = func() *uml.Model {
		return &uml.Model{Packages: []*uml.Package{{
			Name: "RM",
			Packages: []*uml.Package{{
				Name:    "Core",
				Classes: []*uml.Class{class("P", &uml.Property{Name: "p"})},
			}},
		}}}
	}

	batch, err := NewAssembler(loader, DefaultConfig(), nil).Assemble([]Source{
		{Name: "IO", Locator: "io.yaml"},
		{Name: "DUP", Locator: "dup.yaml"},
		{Name: "META", Locator: "meta.yaml"},
		{Name: "UNTYPED", Locator: "untyped.yaml"},
	})
	require.NoError(t, err)
	assert.Empty(t, batch.Schemas())

	codes := map[string]string{}
	for _, d := range batch.Diagnostics.Errors {
		codes[d.Source] = d.Code
	}

	assert.Equal(t, map[string]string{
		"IO":      CodeLoadFailed,
		"DUP":     CodeIndexFailed,
		"META":    CodeMissingMetadata,
		"UNTYPED": CodeTranslateFailed,
	}, codes)
}

func TestAssemble_Strict(t *testing.T) {
	loader := newFakeLoader()
	loader.errs["bad.yaml"] = errors.New("boom")
	loader.models["good.yaml"] = identifiedModel("Acme", "GOOD", "A")

	config := DefaultConfig()
	config.Strict = true

	batch, err := NewAssembler(loader, config, nil).Assemble([]Source{
		{Name: "BAD", Locator: "bad.yaml"},
		{Name: "GOOD", Locator: "good.yaml"},
	})
	require.Error(t, err)
	require.NotNil(t, batch)
	assert.Len(t, batch.Schemas(), 1)
	assert.Contains(t, err.Error(), "1 of 2 sources failed")
}

func TestAssemble_ModelNameDefaultsToSource(t *testing.T) {
	var loaded *uml.Model

	loader := newFakeLoader()
	loader.models["m.yaml"] = func() *uml.Model {
		loaded = identifiedModel("Acme", "M", "A")()
		return loaded
	}

	_, err := NewAssembler(loader, DefaultConfig(), nil).Assemble([]Source{{Name: "M", Locator: "m.yaml"}})
	require.NoError(t, err)
	assert.Equal(t, "M", loaded.Name)
	assert.True(t, loaded.Indexed())
}
