package convert

import (
	"bmm-generator/internal/bmm"
	"bmm-generator/internal/uml"
)

// NormalizeCardinality applies the multiplicity defaults: an absent low or
// high bound is 1, and a negative high bound means unbounded.
func NormalizeCardinality(prop *uml.Property) bmm.Cardinality {
	card := bmm.Cardinality{Low: 1}

	if prop.Low != nil {
		card.Low = *prop.Low
	}

	switch {
	case prop.High == nil:
		high := 1
		card.High = &high
	case *prop.High < 0:
		card.ExcludeUpperBound = true
	default:
		high := *prop.High
		card.High = &high
	}

	return card
}

// TranslateProperty converts one UML property into exactly one BMM property
// variant. Variants are chosen in priority order:
//  1. container, when the upper bound is unbounded or greater than 1
//  2. generic, when the declared type carries a template binding
//  3. open generic, when the property references an unbound parameter
//  4. single otherwise
//
// owner is used only for error messages.
func TranslateProperty(owner string, prop *uml.Property) (*bmm.Property, error) {
	declared := prop.FirstType()
	if declared == nil {
		return nil, &MissingTypeError{Class: owner, Property: prop.Name}
	}

	card := NormalizeCardinality(prop)

	out := &bmm.Property{
		Name:          prop.Name,
		Documentation: prop.Documentation,
		Mandatory:     card.Low >= 1,
		Cardinality:   card,
	}

	bound := declared.TemplateBinding != nil

	switch {
	case card.Unbounded() || *card.High > 1:
		var elem bmm.ElementType = bmm.SingleType{Name: declared.Name}

		if bound {
			gt, err := ResolveBinding(prop)
			if err != nil {
				return nil, err
			}

			elem = gt
		}

		out.Type = bmm.ContainerType{Container: bmm.DefaultContainer, Element: elem}

	case bound:
		gt, err := ResolveBinding(prop)
		if err != nil {
			return nil, err
		}

		out.Type = gt

	case prop.OpenGeneric:
		out.Type = bmm.OpenType{Name: declared.Name}

	default:
		out.Type = bmm.SingleType{Name: declared.Name}
	}

	return out, nil
}
