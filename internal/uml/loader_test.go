package uml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const foundationYAML = `
name: FOUNDATION
packages:
  - name: Foundation
    stereotypes:
      - name: ReferenceModel
        tags:
          rmPublisher: Acme
          rmVersion: 1.0.0
          rmNamespace: Acme Foundation
    packages:
      - name: Primitive Types
        classes:
          - name: ANY
          - name: ORDERED
            ancestors: [ANY]
          - name: STRING
            ancestors: [ANY]
          - name: DATE_TIME
            ancestors: [ORDERED]
      - name: Data Types
        classes:
          - name: INTERVAL
            documentation: Interval of ordered values.
            parameters:
              - name: T
                conforms_to: ORDERED
            properties:
              - name: lower
                low: 0
                type: T
              - name: upper
                low: 0
                type: T
                open: true
          - name: HASH
            parameters:
              - name: K
              - name: V
`

func TestParse(t *testing.T) {
	model, err := NewYAMLLoader().Parse([]byte(foundationYAML), nil)
	require.NoError(t, err)

	assert.Equal(t, "FOUNDATION", model.Name)
	root := model.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Foundation", root.Name)
	assert.False(t, root.IsLeaf())
	require.Len(t, root.Stereotypes, 1)

	publisher, ok := root.Stereotypes[0].TaggedValue("rmPublisher")
	assert.True(t, ok)
	assert.Equal(t, "Acme", publisher)

	_, ok = root.Stereotypes[0].TaggedValue("missing")
	assert.False(t, ok)

	require.Len(t, root.Packages, 2)
	prims := root.Packages[0]
	assert.True(t, prims.IsLeaf())
	require.Len(t, prims.Classes, 4)

	dateTime := prims.Classes[3]
	require.Len(t, dateTime.Generalizations, 1)
	assert.Same(t, prims.Classes[1], dateTime.Generalizations[0])
}

func TestParse_GenericClass(t *testing.T) {
	model, err := NewYAMLLoader().Parse([]byte(foundationYAML), nil)
	require.NoError(t, err)

	interval := model.Root().Packages[1].Classes[0]
	assert.True(t, interval.Generic)
	assert.Equal(t, "Interval of ordered values.", interval.Documentation)
	require.NotNil(t, interval.TemplateSignature)
	assert.Same(t, interval, interval.TemplateSignature.OwningClass)
	require.Len(t, interval.TemplateSignature.Parameters, 1)
	assert.Equal(t, "T", interval.TemplateSignature.Parameters[0].Name)
	assert.Equal(t, "ORDERED", interval.TemplateSignature.Parameters[0].Type.Name)

	require.Len(t, interval.Properties, 2)
	for _, p := range interval.Properties {
		assert.True(t, p.OpenGeneric, p.Name)
		assert.Equal(t, "T", p.FirstType().Name)
		assert.Equal(t, 0, *p.Low)
		assert.Nil(t, p.High)
	}

	hash := model.Root().Packages[1].Classes[1]
	require.NotNil(t, hash.TemplateSignature)
	assert.Len(t, hash.TemplateSignature.Parameters, 2)
	assert.Nil(t, hash.TemplateSignature.Parameters[0].Type)
}

func loadFoundation(t *testing.T) *Model {
	t.Helper()

	model, err := NewYAMLLoader().Parse([]byte(foundationYAML), nil)
	require.NoError(t, err)
	require.NoError(t, model.BuildIndex())

	return model
}

func TestParse_CrossModelReferences(t *testing.T) {
	foundation := loadFoundation(t)

	core := `
name: CORE
packages:
  - name: Core
    packages:
      - name: Demographics
        classes:
          - name: PERSON
            ancestors: [ANY]
            properties:
              - name: name
                type: STRING
              - name: aliases
                low: 0
                high: "*"
                type: STRING
              - name: lifetime
                low: 0
                type: {root: INTERVAL, bindings: [DATE_TIME]}
              - name: contact
                low: 0
                type: ADDRESS
          - name: ADDRESS
`

	model, err := NewYAMLLoader().Parse([]byte(core), []*Model{foundation})
	require.NoError(t, err)

	person := model.Root().Packages[0].Classes[0]
	anyClass, ok := foundation.Class("ANY")
	require.True(t, ok)
	assert.Same(t, anyClass, person.Generalizations[0])

	require.Len(t, person.Properties, 4)

	aliases := person.Properties[1]
	assert.Equal(t, -1, *aliases.High)

	lifetime := person.Properties[2]
	boundType := lifetime.FirstType()
	assert.Equal(t, "INTERVAL<DATE_TIME>", boundType.Name)
	require.NotNil(t, boundType.TemplateBinding)

	interval, _ := foundation.Class("INTERVAL")
	assert.Same(t, interval.TemplateSignature, boundType.TemplateBinding.Signature)
	require.Len(t, boundType.TemplateBinding.Substitutions, 1)
	assert.Equal(t, "T", boundType.TemplateBinding.Substitutions[0].Formal)
	assert.Equal(t, "DATE_TIME", boundType.TemplateBinding.Substitutions[0].Actual.Name)

	// Forward reference within the same model.
	assert.Same(t, model.Root().Packages[0].Classes[1], person.Properties[3].FirstType())
}

func TestParse_BindingOfOwnerParameter(t *testing.T) {
	foundation := loadFoundation(t)

	doc := `
packages:
  - name: Lists
    classes:
      - name: SORTED
        parameters:
          - name: E
        properties:
          - name: range
            type: {root: INTERVAL, bindings: [E]}
`

	model, err := NewYAMLLoader().Parse([]byte(doc), []*Model{foundation})
	require.NoError(t, err)

	rng := model.Root().Classes[0].Properties[0]
	sub := rng.FirstType().TemplateBinding.Substitutions[0]
	assert.Equal(t, "E", sub.Actual.Name)
	assert.Nil(t, sub.Actual.TemplateSignature)
}

func TestParse_EarliestDepWins(t *testing.T) {
	parseDep := func(name string) *Model {
		doc := "name: " + name + `
packages:
  - name: Codes
    classes:
      - name: CODE
`
		model, err := NewYAMLLoader().Parse([]byte(doc), nil)
		require.NoError(t, err)
		require.NoError(t, model.BuildIndex())

		return model
	}

	// Batch order deliberately differs from alphabetical order.
	zeta := parseDep("ZETA")
	alpha := parseDep("ALPHA")

	doc := `
packages:
  - name: Usage
    classes:
      - name: CODED
        properties:
          - name: code
            type: CODE
`

	model, err := NewYAMLLoader().Parse([]byte(doc), []*Model{zeta, alpha})
	require.NoError(t, err)

	zetaCode, ok := zeta.Class("CODE")
	require.True(t, ok)
	assert.Same(t, zetaCode, model.Root().Classes[0].Properties[0].FirstType())

	model, err = NewYAMLLoader().Parse([]byte(doc), []*Model{alpha, zeta})
	require.NoError(t, err)

	alphaCode, ok := alpha.Class("CODE")
	require.True(t, ok)
	assert.Same(t, alphaCode, model.Root().Classes[0].Properties[0].FirstType())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		errPart string
	}{
		{
			name: "unresolved type",
			doc: `
packages:
  - name: P
    classes:
      - name: A
        properties:
          - name: b
            type: MISSING
`,
			errPart: `unresolved reference to "MISSING" from A.b`,
		},
		{
			name: "unresolved ancestor",
			doc: `
packages:
  - name: P
    classes:
      - name: A
        ancestors: [NOPE]
`,
			errPart: `unresolved reference to "NOPE" from A`,
		},
		{
			name: "binding a non generic class",
			doc: `
packages:
  - name: P
    classes:
      - name: A
      - name: B
        properties:
          - name: x
            type: {root: A, bindings: [A]}
`,
			errPart: "declares no generic parameters",
		},
		{
			name: "binding arity",
			doc: `
packages:
  - name: P
    classes:
      - name: G
        parameters: [{name: T}]
      - name: B
        properties:
          - name: x
            type: {root: G, bindings: [B, B]}
`,
			errPart: "expects 1 generic parameters, got 2",
		},
		{
			name: "binding without root",
			doc: `
packages:
  - name: P
    classes:
      - name: B
        properties:
          - name: x
            type: {bindings: [B]}
`,
			errPart: "generic type reference without root",
		},
		{
			name: "bad bound",
			doc: `
packages:
  - name: P
    classes:
      - name: B
        properties:
          - name: x
            high: many
            type: B
`,
			errPart: `invalid multiplicity bound "many"`,
		},
		{
			name: "duplicate class",
			doc: `
packages:
  - name: P
    classes:
      - name: A
  - name: Q
    classes:
      - name: A
`,
			errPart: `duplicate class "A"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLLoader().Parse([]byte(tt.doc), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestParse_UnresolvedReferenceIsTyped(t *testing.T) {
	doc := `
packages:
  - name: P
    classes:
      - name: A
        properties:
          - name: b
            type: MISSING
`

	_, err := NewYAMLLoader().Parse([]byte(doc), nil)

	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "MISSING", unresolved.Name)
	assert.Equal(t, "A.b", unresolved.Referrer)
}

func TestParse_UntypedProperty(t *testing.T) {
	doc := `
packages:
  - name: P
    classes:
      - name: A
        properties:
          - name: b
`

	model, err := NewYAMLLoader().Parse([]byte(doc), nil)
	require.NoError(t, err)
	assert.Nil(t, model.Root().Classes[0].Properties[0].FirstType())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foundation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(foundationYAML), 0o644))

	model, err := NewYAMLLoader().Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "FOUNDATION", model.Name)

	_, err = NewYAMLLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read model file")
}
