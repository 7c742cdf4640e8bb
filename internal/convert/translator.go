package convert

import (
	"log/slog"
	"time"

	"bmm-generator/internal/bmm"
	"bmm-generator/internal/common"
	"bmm-generator/internal/uml"
)

// RevisionLayout formats generated schema revisions.
const RevisionLayout = time.UnixDate

// Translator converts one indexed UML model into a BMM schema.
type Translator struct {
	config Config
	logger *slog.Logger
	now    func() time.Time
}

// NewTranslator creates a new Translator. A nil logger discards output.
func NewTranslator(config Config, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Translator{
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// Translate builds the schema for the model loaded under name. The first
// top-level package is the reference model root: it supplies the
// identification metadata and names the single package container, and its
// package tree is flattened into the container's leaves.
func (t *Translator) Translate(name string, model *uml.Model) (*bmm.Schema, error) {
	root := model.Root()
	if root == nil {
		return nil, ErrEmptyModel
	}

	schema := &bmm.Schema{}
	t.documentSchema(name, schema)

	applied, err := ExtractIdentification(root, schema)
	if err != nil {
		return nil, err
	}

	if !applied {
		reason := "no stereotype"
		if common.IsMultiple(root.Stereotypes) {
			reason = "ambiguous stereotypes"
		}

		t.logger.Debug("reference model identification skipped",
			"package", root.Name, "reason", reason)
	}

	container := &bmm.Package{Name: common.Underscored(root.Name)}
	schema.Packages = append(schema.Packages, container)

	for _, leaf := range FlattenPackages(root.Packages, nil) {
		pkg := &bmm.Package{Name: leaf.Name, Documentation: leaf.Documentation}
		container.AddPackage(pkg)

		for _, c := range leaf.Classes {
			if err := TranslateClass(schema, pkg, c); err != nil {
				return nil, err
			}
		}

		schema.ArchetypeRMClosurePackages = append(schema.ArchetypeRMClosurePackages,
			container.Name+"."+leaf.Name)
	}

	t.logger.Debug("translated model",
		"packages", len(container.Packages),
		"classes", len(schema.ClassDefinitions),
		"primitives", len(schema.PrimitiveTypes))

	return schema, nil
}

func (t *Translator) documentSchema(name string, schema *bmm.Schema) {
	schema.SchemaDescription = name + " - Schema generated from UML"
	schema.SchemaLifecycleState = t.config.LifecycleState

	schema.SchemaRevision = t.config.Revision
	if schema.SchemaRevision == "" {
		schema.SchemaRevision = t.now().Format(RevisionLayout)
	}
}
