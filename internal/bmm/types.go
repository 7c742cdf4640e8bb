package bmm

import (
	"strings"
)

// Schema is a BMM schema produced from one UML model.
type Schema struct {
	// Identification.
	RMPublisher string `yaml:"rm_publisher,omitempty"`
	RMRelease   string `yaml:"rm_release,omitempty"`
	SchemaName  string `yaml:"schema_name,omitempty"`

	// Documentation.
	SchemaRevision       string `yaml:"schema_revision,omitempty"`
	SchemaLifecycleState string `yaml:"schema_lifecycle_state,omitempty"`
	SchemaDescription    string `yaml:"schema_description,omitempty"`

	// Includes reference schemas produced earlier in the same batch.
	Includes []Include `yaml:"includes,omitempty"`

	// Packages holds exactly one container package whose children are the leaves.
	Packages []*Package `yaml:"packages"`

	// ArchetypeRMClosurePackages lists "<container>.<leaf>" for every retained leaf.
	ArchetypeRMClosurePackages []string `yaml:"archetype_rm_closure_packages,omitempty"`

	PrimitiveTypes   []*Class `yaml:"primitive_types,omitempty"`
	ClassDefinitions []*Class `yaml:"class_definitions,omitempty"`
}

// Identifier returns the schema id other schemas use to include this one:
// lower-cased "<publisher>_<schema name>_<release>".
func (s *Schema) Identifier() string {
	return strings.ToLower(s.RMPublisher + "_" + s.SchemaName + "_" + s.RMRelease)
}

// AddInclude appends an include directive for the schema with the given id.
func (s *Schema) AddInclude(id string) {
	s.Includes = append(s.Includes, Include{ID: id})
}

// Container returns the top-level package container, or nil if none was added.
func (s *Schema) Container() *Package {
	if len(s.Packages) == 0 {
		return nil
	}

	return s.Packages[0]
}

// AddClassDefinition registers an ordinary class.
func (s *Schema) AddClassDefinition(c *Class) {
	s.ClassDefinitions = append(s.ClassDefinitions, c)
}

// AddPrimitive registers a primitive type class.
func (s *Schema) AddPrimitive(c *Class) {
	s.PrimitiveTypes = append(s.PrimitiveTypes, c)
}

// Include is a directive referencing another schema by identifier.
type Include struct {
	ID string `yaml:"id"`
}

// Package is a package container or a leaf package. Leaves list the names of
// their classes; the class definitions themselves live on the Schema.
type Package struct {
	Name          string     `yaml:"name"`
	Documentation string     `yaml:"documentation,omitempty"`
	Packages      []*Package `yaml:"packages,omitempty"`
	Classes       []string   `yaml:"classes,omitempty"`
}

// AddPackage appends a child package.
func (p *Package) AddPackage(child *Package) {
	p.Packages = append(p.Packages, child)
}

// AddClass appends a class name.
func (p *Package) AddClass(name string) {
	p.Classes = append(p.Classes, name)
}

// Class is a BMM class definition.
type Class struct {
	Name          string `yaml:"name"`
	Documentation string `yaml:"documentation,omitempty"`
	Abstract      bool   `yaml:"is_abstract,omitempty"`
	// Ancestors are referenced by name only.
	Ancestors []string `yaml:"ancestors,omitempty"`
	// GenericParameters is non-empty only for generic classes.
	GenericParameters []GenericParameter `yaml:"generic_parameter_defs,omitempty"`
	Properties        []*Property        `yaml:"properties,omitempty"`
}

// IsGeneric returns true if the class declares generic parameters.
func (c *Class) IsGeneric() bool {
	return len(c.GenericParameters) > 0
}

// AddAncestor appends an ancestor class name.
func (c *Class) AddAncestor(name string) {
	c.Ancestors = append(c.Ancestors, name)
}

// AddProperty appends a property.
func (c *Class) AddProperty(p *Property) {
	c.Properties = append(c.Properties, p)
}

// GenericParameter is a formal generic parameter of a class.
type GenericParameter struct {
	Name string `yaml:"name"`
	// ConformsToType is empty when the parameter is unconstrained.
	ConformsToType string `yaml:"conforms_to_type,omitempty"`
}
