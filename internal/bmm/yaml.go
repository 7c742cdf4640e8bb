package bmm

// propertyYAML is the serialized shape of a Property. The variant is written
// as its ODIN type marker so YAML and ODIN output read the same way.
type propertyYAML struct {
	Name          string       `yaml:"name"`
	Kind          string       `yaml:"kind"`
	Documentation string       `yaml:"documentation,omitempty"`
	Mandatory     bool         `yaml:"is_mandatory,omitempty"`
	Type          string       `yaml:"type,omitempty"`
	TypeDef       *typeDefYAML `yaml:"type_def,omitempty"`
	Cardinality   string       `yaml:"cardinality,omitempty"`
}

type typeDefYAML struct {
	ContainerType     string       `yaml:"container_type,omitempty"`
	Type              string       `yaml:"type,omitempty"`
	RootType          string       `yaml:"root_type,omitempty"`
	GenericParameters []string     `yaml:"generic_parameters,omitempty"`
	TypeDef           *typeDefYAML `yaml:"type_def,omitempty"`
}

// MarshalYAML implements custom YAML marshaling for Property.
func (p Property) MarshalYAML() (any, error) {
	out := propertyYAML{
		Name:          p.Name,
		Kind:          p.Kind().PersistedName(),
		Documentation: p.Documentation,
		Mandatory:     p.Mandatory,
	}

	switch t := p.Type.(type) {
	case SingleType:
		out.Type = t.Name
	case OpenType:
		out.Type = t.Name
	case GenericType:
		out.TypeDef = genericTypeDef(t)
	case ContainerType:
		def := &typeDefYAML{ContainerType: t.Container}

		switch elem := t.Element.(type) {
		case SingleType:
			def.Type = elem.Name
		case GenericType:
			def.TypeDef = genericTypeDef(elem)
		}

		out.TypeDef = def
		out.Cardinality = p.Cardinality.String()
	}

	return out, nil
}

func genericTypeDef(t GenericType) *typeDefYAML {
	return &typeDefYAML{
		RootType:          t.RootType,
		GenericParameters: t.Parameters,
	}
}
