package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmm-generator/internal/bmm"
	"bmm-generator/internal/uml"
)

func TestBuildClass(t *testing.T) {
	anyClass := class("ANY")
	ordered := class("ORDERED")

	interval := generic("INTERVAL", "T")
	interval.Abstract = true
	interval.Documentation = "Interval of ordered values."
	interval.TemplateSignature.Parameters[0].Type = ordered
	interval.Generalizations = []*uml.Class{anyClass}

	lower := prop("lower", &uml.Class{Name: "T"})
	lower.OpenGeneric = true
	interval.Properties = []*uml.Property{lower}

	c, err := BuildClass(interval)
	require.NoError(t, err)

	assert.Equal(t, "INTERVAL", c.Name)
	assert.Equal(t, "Interval of ordered values.", c.Documentation)
	assert.True(t, c.Abstract)
	assert.Equal(t, []string{"ANY"}, c.Ancestors)
	assert.Equal(t, []bmm.GenericParameter{{Name: "T", ConformsToType: "ORDERED"}}, c.GenericParameters)
	require.Len(t, c.Properties, 1)
	assert.Equal(t, bmm.KindOpenGeneric, c.Properties[0].Kind())
}

func TestBuildClass_NonGeneric(t *testing.T) {
	c, err := BuildClass(class("PERSON", prop("name", class("STRING"))))
	require.NoError(t, err)
	assert.False(t, c.IsGeneric())
	assert.Empty(t, c.Ancestors)
}

func TestBuildClass_PropertyError(t *testing.T) {
	_, err := BuildClass(class("PERSON", &uml.Property{Name: "name"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class PERSON")

	var missing *MissingTypeError
	assert.True(t, errors.As(err, &missing))
}

func TestTranslateClass_Routing(t *testing.T) {
	schema := &bmm.Schema{}
	prims := &bmm.Package{Name: "primitive_types"}
	core := &bmm.Package{Name: "Core"}

	require.NoError(t, TranslateClass(schema, prims, class("STRING")))
	require.NoError(t, TranslateClass(schema, core, class("PERSON")))

	require.Len(t, schema.PrimitiveTypes, 1)
	assert.Equal(t, "STRING", schema.PrimitiveTypes[0].Name)
	require.Len(t, schema.ClassDefinitions, 1)
	assert.Equal(t, "PERSON", schema.ClassDefinitions[0].Name)

	assert.Equal(t, []string{"STRING"}, prims.Classes)
	assert.Equal(t, []string{"PERSON"}, core.Classes)
}

func TestIsPrimitivePackage(t *testing.T) {
	assert.True(t, IsPrimitivePackage("Primitive_Types"))
	assert.True(t, IsPrimitivePackage("PRIMITIVE_TYPES"))
	assert.False(t, IsPrimitivePackage("Primitive Types"))
	assert.False(t, IsPrimitivePackage("Core"))
}
