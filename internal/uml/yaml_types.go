package uml

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// modelDoc is the YAML form of a model file.
//
//	name: CIMI_RM
//	packages:
//	  - name: CIMI Reference Model
//	    stereotypes:
//	      - name: ReferenceModel
//	        tags:
//	          rmPublisher: CIMI
//	          rmVersion: 0.0.4
//	          rmNamespace: CIMI RM
//	    packages:
//	      - name: Core
//	        classes:
//	          - name: LOCATABLE
//	            abstract: true
//	            ancestors: [Any]
//	            properties:
//	              - name: archetype_node_id
//	                type: String
//	              - name: links
//	                low: 0
//	                high: "*"
//	                type: {root: LIST, bindings: [LINK]}
type modelDoc struct {
	Name     string       `yaml:"name"`
	Packages []packageDoc `yaml:"packages"`
}

type packageDoc struct {
	Name          string          `yaml:"name"`
	Documentation string          `yaml:"documentation,omitempty"`
	Stereotypes   []stereotypeDoc `yaml:"stereotypes,omitempty"`
	Packages      []packageDoc    `yaml:"packages,omitempty"`
	Classes       []classDoc      `yaml:"classes,omitempty"`
}

type stereotypeDoc struct {
	Name string            `yaml:"name"`
	Tags map[string]string `yaml:"tags,omitempty"`
}

type classDoc struct {
	Name          string         `yaml:"name"`
	Documentation string         `yaml:"documentation,omitempty"`
	Abstract      bool           `yaml:"abstract,omitempty"`
	Parameters    []parameterDoc `yaml:"parameters,omitempty"`
	Ancestors     []string       `yaml:"ancestors,omitempty"`
	Properties    []propertyDoc  `yaml:"properties,omitempty"`
}

type parameterDoc struct {
	Name       string `yaml:"name"`
	ConformsTo string `yaml:"conforms_to,omitempty"`
}

type propertyDoc struct {
	Name          string     `yaml:"name"`
	Documentation string     `yaml:"documentation,omitempty"`
	Low           *bound     `yaml:"low,omitempty"`
	High          *bound     `yaml:"high,omitempty"`
	Type          typeRefDoc `yaml:"type"`
	Open          bool       `yaml:"open,omitempty"`
}

// typeRefDoc is either a plain type name or a generic binding:
//
//	type: STRING
//	type: {root: INTERVAL, bindings: [DATE_TIME]}
type typeRefDoc struct {
	Name     string
	Root     string
	Bindings []string
}

// IsBinding returns true if the reference binds a generic type.
func (t typeRefDoc) IsBinding() bool {
	return t.Root != ""
}

// UnmarshalYAML accepts either a scalar type name or a {root, bindings} map.
func (t *typeRefDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&t.Name)

	case yaml.MappingNode:
		var raw struct {
			Root     string   `yaml:"root"`
			Bindings []string `yaml:"bindings"`
		}

		if err := node.Decode(&raw); err != nil {
			return err
		}

		if raw.Root == "" {
			return fmt.Errorf("line %d: generic type reference without root", node.Line)
		}

		t.Root = raw.Root
		t.Bindings = raw.Bindings

		return nil

	default:
		return fmt.Errorf("line %d: expected type name or {root, bindings}, got %v", node.Line, node.Kind)
	}
}

// bound is a multiplicity bound. "*" decodes to -1 (unbounded).
type bound int

// UnmarshalYAML accepts an integer or "*".
func (b *bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected multiplicity bound", node.Line)
	}

	if node.Value == "*" {
		*b = -1
		return nil
	}

	n, err := strconv.Atoi(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid multiplicity bound %q", node.Line, node.Value)
	}

	*b = bound(n)

	return nil
}

func (b *bound) intPtr() *int {
	if b == nil {
		return nil
	}

	n := int(*b)

	return &n
}
