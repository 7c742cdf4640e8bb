package convert

import (
	"bmm-generator/internal/uml"
)

func intPtr(n int) *int { return &n }

func class(name string, props ...*uml.Property) *uml.Class {
	return &uml.Class{Name: name, Properties: props}
}

func prop(name string, t *uml.Class) *uml.Property {
	return &uml.Property{Name: name, Types: []*uml.Class{t}}
}

func withBounds(p *uml.Property, low, high int) *uml.Property {
	p.Low = intPtr(low)
	p.High = intPtr(high)

	return p
}

// generic returns a generic class declaring the given parameter names.
func generic(name string, params ...string) *uml.Class {
	c := &uml.Class{Name: name, Generic: true}
	sig := &uml.TemplateSignature{OwningClass: c}

	for _, p := range params {
		sig.Parameters = append(sig.Parameters, uml.TemplateParameter{Name: p})
	}

	c.TemplateSignature = sig

	return c
}

// bound returns the anonymous class binding root to actuals.
func bound(root *uml.Class, actuals ...*uml.Class) *uml.Class {
	binding := &uml.TemplateBinding{Signature: root.TemplateSignature}

	name := root.Name + "<"
	for i, a := range actuals {
		binding.Substitutions = append(binding.Substitutions, uml.ParameterSubstitution{
			Formal: root.TemplateSignature.Parameters[i].Name,
			Actual: a,
		})

		if i > 0 {
			name += ","
		}

		name += a.Name
	}

	return &uml.Class{Name: name + ">", TemplateBinding: binding}
}

func refModelStereotype(publisher, version, namespace string) *uml.Stereotype {
	return &uml.Stereotype{
		Name: "ReferenceModel",
		TaggedValues: []uml.TaggedValue{
			{Name: TagPublisher, Value: publisher},
			{Name: TagVersion, Value: version},
			{Name: TagNamespace, Value: namespace},
		},
	}
}
