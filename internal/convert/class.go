package convert

import (
	"fmt"
	"strings"

	"bmm-generator/internal/bmm"
	"bmm-generator/internal/uml"
)

// PrimitiveTypesPackage is the leaf package whose classes are primitive types.
// Matched case-insensitively.
const PrimitiveTypesPackage = "Primitive_Types"

// IsPrimitivePackage reports whether a normalized leaf package name holds primitive types.
func IsPrimitivePackage(name string) bool {
	return strings.EqualFold(name, PrimitiveTypesPackage)
}

// TranslateClass converts c, lists its name in leaf and registers the result
// in schema: as a primitive type when leaf is the primitive types package,
// as an ordinary class definition otherwise.
func TranslateClass(schema *bmm.Schema, leaf *bmm.Package, c *uml.Class) error {
	class, err := BuildClass(c)
	if err != nil {
		return err
	}

	leaf.AddClass(class.Name)

	if IsPrimitivePackage(leaf.Name) {
		schema.AddPrimitive(class)
	} else {
		schema.AddClassDefinition(class)
	}

	return nil
}

// BuildClass converts a UML class into a BMM class definition without
// registering it anywhere.
func BuildClass(c *uml.Class) (*bmm.Class, error) {
	class := &bmm.Class{
		Name:          c.Name,
		Documentation: c.Documentation,
		Abstract:      c.Abstract,
	}

	if c.TemplateSignature != nil {
		for _, param := range c.TemplateSignature.Parameters {
			gp := bmm.GenericParameter{Name: param.Name}
			if param.Type != nil {
				gp.ConformsToType = param.Type.Name
			}

			class.GenericParameters = append(class.GenericParameters, gp)
		}
	}

	for _, prop := range c.Properties {
		p, err := TranslateProperty(c.Name, prop)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}

		class.AddProperty(p)
	}

	for _, parent := range c.Generalizations {
		class.AddAncestor(parent.Name)
	}

	return class, nil
}
