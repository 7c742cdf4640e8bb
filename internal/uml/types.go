package uml

import (
	"bmm-generator/internal/common"
)

// Model is a loaded UML model: an ordered list of top-level packages.
// The first package is, by convention, the reference model root.
type Model struct {
	// Name is the name the model was loaded under (e.g., "CIMI_RM").
	Name string
	// Packages are the top-level packages in document order.
	Packages []*Package

	index map[string]*Class
}

// Root returns the reference model root package, or nil if the model is empty.
func (m *Model) Root() *Package {
	if root, ok := common.First(m.Packages); ok {
		return root
	}

	return nil
}

// Package is a UML package. Packages nest arbitrarily deep.
type Package struct {
	Name          string
	Documentation string
	Packages      []*Package
	Classes       []*Class
	Stereotypes   []*Stereotype
}

// IsLeaf returns true if the package has no nested packages.
func (p *Package) IsLeaf() bool {
	return common.IsEmpty(p.Packages)
}

// Stereotype is an applied stereotype with its tagged values.
type Stereotype struct {
	Name         string
	TaggedValues []TaggedValue
}

// TaggedValue is a single name/value pair carried by a stereotype.
type TaggedValue struct {
	Name  string
	Value string
}

// TaggedValue returns the value of the named tag and whether it is present.
func (s *Stereotype) TaggedValue(name string) (string, bool) {
	for _, tv := range s.TaggedValues {
		if tv.Name == name {
			return tv.Value, true
		}
	}

	return "", false
}

// Class is a UML class. A class that is the type of a bound generic
// (e.g., INTERVAL<DATE>) carries a TemplateBinding instead of living in a package.
type Class struct {
	Name          string
	Documentation string
	Abstract      bool
	// Generic marks classes declaring template parameters.
	Generic bool
	// Properties in declaration order.
	Properties []*Property
	// Generalizations are the direct ancestors of this class.
	Generalizations []*Class
	// TemplateSignature lists the generic parameters of a generic class.
	TemplateSignature *TemplateSignature
	// TemplateBinding is set on bound generic types.
	TemplateBinding *TemplateBinding
}

// TemplateSignature declares the generic parameters of a class.
type TemplateSignature struct {
	// OwningClass is the generic class the signature belongs to.
	OwningClass *Class
	Parameters  []TemplateParameter
}

// TemplateParameter is one formal generic parameter, e.g. T in INTERVAL<T: ORDERED>.
type TemplateParameter struct {
	Name string
	// Type is the conforming type, nil when unconstrained.
	Type *Class
}

// TemplateBinding substitutes actual types for the formal parameters of a signature.
type TemplateBinding struct {
	Signature     *TemplateSignature
	Substitutions []ParameterSubstitution
}

// ParameterSubstitution binds one formal parameter to an actual type.
type ParameterSubstitution struct {
	Formal string
	Actual *Class
}

// Property is a class attribute or navigable association end.
type Property struct {
	Name          string
	Documentation string
	// Low and High are the multiplicity bounds; nil when not declared.
	// A negative High means unbounded (*).
	Low  *int
	High *int
	// Types holds the declared types; the first one is the primary type.
	Types []*Class
	// OpenGeneric marks a property typed by an unbound template parameter.
	OpenGeneric bool
}

// FirstType returns the primary declared type, or nil if none is declared.
func (p *Property) FirstType() *Class {
	if t, ok := common.First(p.Types); ok {
		return t
	}

	return nil
}
