package convert

import (
	"fmt"

	"bmm-generator/internal/bmm"
	"bmm-generator/internal/uml"
)

// ResolveBinding turns the template binding on a property's declared type
// into a GenericType: the owning generic class becomes the root type and each
// substitution contributes the name of its actual type, in order.
//
// Only one level is resolved. If an actual type is itself a bound generic,
// its name is recorded as-is and its own bindings are not expanded.
func ResolveBinding(prop *uml.Property) (bmm.GenericType, error) {
	declared := prop.FirstType()
	if declared == nil || declared.TemplateBinding == nil {
		return bmm.GenericType{}, &InvalidBindingError{Property: prop.Name, Reason: "declared type is not bound"}
	}

	binding := declared.TemplateBinding
	if binding.Signature == nil || binding.Signature.OwningClass == nil {
		return bmm.GenericType{}, &InvalidBindingError{Property: prop.Name, Reason: "binding has no owning generic class"}
	}

	if len(binding.Substitutions) == 0 {
		return bmm.GenericType{}, &InvalidBindingError{Property: prop.Name, Reason: "binding has no substitutions"}
	}

	gt := bmm.GenericType{
		RootType:   binding.Signature.OwningClass.Name,
		Parameters: make([]string, 0, len(binding.Substitutions)),
	}

	for i, sub := range binding.Substitutions {
		if sub.Actual == nil {
			return bmm.GenericType{}, &InvalidBindingError{
				Property: prop.Name,
				Reason:   fmt.Sprintf("substitution %d (%s) has no actual type", i, sub.Formal),
			}
		}

		gt.Parameters = append(gt.Parameters, sub.Actual.Name)
	}

	return gt, nil
}
