package uml

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader produces a Model from a source locator. deps holds the models loaded
// earlier in the same batch, in batch order; it is nil for the first source.
type Loader interface {
	Load(locator string, deps []*Model) (*Model, error)
}

// YAMLLoader loads models from YAML model files.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAMLLoader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Load reads and parses the model file at path.
func (l *YAMLLoader) Load(path string, deps []*Model) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	return l.Parse(data, deps)
}

// Parse parses YAML model data and resolves every class reference against the
// model itself first and then against deps. A name defined by several deps
// resolves to the earliest of them.
func (l *YAMLLoader) Parse(data []byte, deps []*Model) (*Model, error) {
	var doc modelDoc

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse model YAML: %w", err)
	}

	b := &modelBuilder{
		local: make(map[string]*Class),
		deps:  deps,
	}

	model := &Model{Name: doc.Name}

	// First pass: create every package and class so forward references resolve.
	for i := range doc.Packages {
		pkg, err := b.declarePackage(&doc.Packages[i])
		if err != nil {
			return nil, err
		}

		model.Packages = append(model.Packages, pkg)
	}

	// Second pass: wire generalizations, conforming types and property types.
	for _, pending := range b.pending {
		if err := b.defineClass(pending.class, pending.doc); err != nil {
			return nil, err
		}
	}

	return model, nil
}

type pendingClass struct {
	class *Class
	doc   *classDoc
}

type modelBuilder struct {
	local   map[string]*Class
	deps    []*Model
	pending []pendingClass
}

func (b *modelBuilder) declarePackage(doc *packageDoc) (*Package, error) {
	pkg := &Package{
		Name:          doc.Name,
		Documentation: doc.Documentation,
	}

	for _, st := range doc.Stereotypes {
		pkg.Stereotypes = append(pkg.Stereotypes, newStereotype(st))
	}

	for i := range doc.Classes {
		cd := &doc.Classes[i]

		if _, dup := b.local[cd.Name]; dup {
			return nil, &DuplicateClassError{Name: cd.Name, Package: doc.Name}
		}

		class := &Class{
			Name:          cd.Name,
			Documentation: cd.Documentation,
			Abstract:      cd.Abstract,
			Generic:       len(cd.Parameters) > 0,
		}

		if class.Generic {
			sig := &TemplateSignature{OwningClass: class}
			for _, pd := range cd.Parameters {
				sig.Parameters = append(sig.Parameters, TemplateParameter{Name: pd.Name})
			}

			class.TemplateSignature = sig
		}

		b.local[cd.Name] = class
		b.pending = append(b.pending, pendingClass{class: class, doc: cd})
		pkg.Classes = append(pkg.Classes, class)
	}

	for i := range doc.Packages {
		child, err := b.declarePackage(&doc.Packages[i])
		if err != nil {
			return nil, err
		}

		pkg.Packages = append(pkg.Packages, child)
	}

	return pkg, nil
}

func newStereotype(doc stereotypeDoc) *Stereotype {
	names := make([]string, 0, len(doc.Tags))
	for name := range doc.Tags {
		names = append(names, name)
	}

	sort.Strings(names)

	st := &Stereotype{Name: doc.Name}
	for _, name := range names {
		st.TaggedValues = append(st.TaggedValues, TaggedValue{Name: name, Value: doc.Tags[name]})
	}

	return st
}

func (b *modelBuilder) defineClass(class *Class, doc *classDoc) error {
	for i, pd := range doc.Parameters {
		if pd.ConformsTo == "" {
			continue
		}

		conforms, err := b.resolve(pd.ConformsTo, class.Name+"<"+pd.Name+">")
		if err != nil {
			return err
		}

		class.TemplateSignature.Parameters[i].Type = conforms
	}

	for _, ancestor := range doc.Ancestors {
		parent, err := b.resolve(ancestor, class.Name)
		if err != nil {
			return err
		}

		class.Generalizations = append(class.Generalizations, parent)
	}

	for i := range doc.Properties {
		prop, err := b.defineProperty(class, &doc.Properties[i])
		if err != nil {
			return err
		}

		class.Properties = append(class.Properties, prop)
	}

	return nil
}

func (b *modelBuilder) defineProperty(owner *Class, doc *propertyDoc) (*Property, error) {
	referrer := owner.Name + "." + doc.Name

	prop := &Property{
		Name:          doc.Name,
		Documentation: doc.Documentation,
		Low:           doc.Low.intPtr(),
		High:          doc.High.intPtr(),
	}

	switch {
	case doc.Type.IsBinding():
		boundType, err := b.bind(owner, doc.Type, referrer)
		if err != nil {
			return nil, err
		}

		prop.Types = []*Class{boundType}

	case doc.Type.Name == "":
		// Left untyped; translation reports it.

	case doc.Open || isParameterOf(owner, doc.Type.Name):
		prop.OpenGeneric = true
		prop.Types = []*Class{{Name: doc.Type.Name}}

	default:
		t, err := b.resolve(doc.Type.Name, referrer)
		if err != nil {
			return nil, err
		}

		prop.Types = []*Class{t}
	}

	return prop, nil
}

// bind builds the anonymous bound class for a generic type reference,
// e.g. INTERVAL<DATE_TIME>.
func (b *modelBuilder) bind(owner *Class, ref typeRefDoc, referrer string) (*Class, error) {
	root, err := b.resolve(ref.Root, referrer)
	if err != nil {
		return nil, err
	}

	sig := root.TemplateSignature
	if sig == nil {
		return nil, fmt.Errorf("%s: %s is bound but declares no generic parameters", referrer, root.Name)
	}

	if len(ref.Bindings) != len(sig.Parameters) {
		return nil, fmt.Errorf("%s: %s expects %d generic parameters, got %d",
			referrer, root.Name, len(sig.Parameters), len(ref.Bindings))
	}

	binding := &TemplateBinding{Signature: sig}

	for i, name := range ref.Bindings {
		var actual *Class

		if isParameterOf(owner, name) {
			actual = &Class{Name: name}
		} else {
			actual, err = b.resolve(name, referrer)
			if err != nil {
				return nil, err
			}
		}

		binding.Substitutions = append(binding.Substitutions, ParameterSubstitution{
			Formal: sig.Parameters[i].Name,
			Actual: actual,
		})
	}

	return &Class{
		Name:            root.Name + "<" + strings.Join(ref.Bindings, ",") + ">",
		TemplateBinding: binding,
	}, nil
}

func (b *modelBuilder) resolve(name, referrer string) (*Class, error) {
	if c, ok := b.local[name]; ok {
		return c, nil
	}

	for _, dep := range b.deps {
		if c, ok := dep.Class(name); ok {
			return c, nil
		}
	}

	return nil, &UnresolvedReferenceError{Name: name, Referrer: referrer}
}

func isParameterOf(owner *Class, name string) bool {
	if owner.TemplateSignature == nil {
		return false
	}

	for _, p := range owner.TemplateSignature.Parameters {
		if p.Name == name {
			return true
		}
	}

	return false
}
