package gen

import (
	"strconv"
	"strings"

	"bmm-generator/internal/bmm"
)

// templateData holds all data needed for the ODIN schema template.
type templateData struct {
	BMMVersion string
	Generator  string
	Schema     *bmm.Schema
	Container  *bmm.Package
	Primitives []classData
	Classes    []classData
}

// classData is a class definition flattened for the template.
type classData struct {
	Name          string
	Documentation string
	Abstract      bool
	Ancestors     []string
	Parameters    []bmm.GenericParameter
	Properties    []propertyData
}

// propertyData is one property with its variant payload spelled out.
// Exactly one of Type, RootType (generic) or ContainerType is set.
type propertyData struct {
	Name          string
	Kind          string
	Documentation string
	Mandatory     bool
	// Single and open properties.
	Type string
	// Generic properties, and generic container elements.
	RootType   string
	Parameters []string
	// Container properties.
	ContainerType  string
	ElementType    string
	ElementGeneric bool
	Cardinality    string
}

// buildTemplateData constructs the template data for a schema.
func (g *Generator) buildTemplateData(schema *bmm.Schema) *templateData {
	data := &templateData{
		BMMVersion: g.config.BMMVersion,
		Generator:  g.config.GeneratorName,
		Schema:     schema,
		Container:  schema.Container(),
	}

	for _, c := range schema.PrimitiveTypes {
		data.Primitives = append(data.Primitives, buildClassData(c))
	}

	for _, c := range schema.ClassDefinitions {
		data.Classes = append(data.Classes, buildClassData(c))
	}

	return data
}

func buildClassData(c *bmm.Class) classData {
	cd := classData{
		Name:          c.Name,
		Documentation: c.Documentation,
		Abstract:      c.Abstract,
		Ancestors:     c.Ancestors,
		Parameters:    c.GenericParameters,
	}

	for _, p := range c.Properties {
		cd.Properties = append(cd.Properties, buildPropertyData(p))
	}

	return cd
}

func buildPropertyData(p *bmm.Property) propertyData {
	pd := propertyData{
		Name:          p.Name,
		Kind:          p.Kind().PersistedName(),
		Documentation: p.Documentation,
		Mandatory:     p.Mandatory,
	}

	switch t := p.Type.(type) {
	case bmm.SingleType:
		pd.Type = t.Name
	case bmm.OpenType:
		pd.Type = t.Name
	case bmm.GenericType:
		pd.RootType = t.RootType
		pd.Parameters = t.Parameters
	case bmm.ContainerType:
		pd.ContainerType = t.Container
		pd.Cardinality = odinInterval(p.Cardinality)

		switch elem := t.Element.(type) {
		case bmm.SingleType:
			pd.ElementType = elem.Name
		case bmm.GenericType:
			pd.ElementGeneric = true
			pd.RootType = elem.RootType
			pd.Parameters = elem.Parameters
		}
	}

	return pd
}

// odinString quotes s as an ODIN string literal.
func odinString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}

// odinList renders a list of strings. ODIN marks a single-element list
// with a trailing ", ...".
func odinList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = odinString(item)
	}

	if len(quoted) == 1 {
		return quoted[0] + ", ..."
	}

	return strings.Join(quoted, ", ")
}

// odinInterval renders a cardinality as an ODIN integer interval,
// e.g. |0..1| or |>=1| when unbounded.
func odinInterval(c bmm.Cardinality) string {
	if c.Unbounded() {
		return "|>=" + strconv.Itoa(c.Low) + "|"
	}

	return "|" + strconv.Itoa(c.Low) + ".." + strconv.Itoa(*c.High) + "|"
}

func odinBool(b bool) string {
	if b {
		return "True"
	}

	return "False"
}
