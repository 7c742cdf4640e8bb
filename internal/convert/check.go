package convert

import (
	"fmt"

	"bmm-generator/internal/bmm"
	"bmm-generator/internal/diagnostic"
	"bmm-generator/internal/match"
)

// CheckReferences warns about ancestors and property types that no class in
// a schema, or in the schemas it includes, defines. Failed sources are skipped.
func CheckReferences(batch *Batch) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	byID := make(map[string]bmm.ClassIndex)

	for _, r := range batch.Results {
		if !r.OK() {
			continue
		}

		schema := r.Schema

		var included []bmm.ClassIndex
		for _, inc := range schema.Includes {
			if idx, ok := byID[inc.ID]; ok {
				included = append(included, idx)
			}
		}

		local := schema.Index()
		visible := local.Merge(included...)
		known := visible.Names()

		for _, c := range append(append([]*bmm.Class{}, schema.PrimitiveTypes...), schema.ClassDefinitions...) {
			checkClass(&diags, r.Source.Name, c, visible, known)
		}

		// Schemas sharing an id pool their classes.
		if prev, ok := byID[schema.Identifier()]; ok {
			local = local.Merge(prev)
		}

		byID[schema.Identifier()] = local
	}

	return diags
}

func checkClass(diags *diagnostic.Diagnostics, source string, c *bmm.Class, visible bmm.ClassIndex, known []string) {
	params := make(map[string]bool, len(c.GenericParameters))
	for _, gp := range c.GenericParameters {
		params[gp.Name] = true
	}

	for _, ancestor := range c.Ancestors {
		if _, ok := visible.Lookup(ancestor); !ok {
			diags.AddWarning(CodeUnresolvedAncestor,
				undefined("ancestor", ancestor, known), source, c.Name)
		}
	}

	for _, p := range c.Properties {
		for _, name := range bmm.ReferencedTypes(p) {
			if params[name] {
				continue
			}

			if _, ok := visible.Lookup(name); !ok {
				diags.AddWarning(CodeUnresolvedType,
					undefined("type", name, known), source, c.Name+"."+p.Name)
			}
		}
	}
}

// undefined builds the warning message, suggesting the closest known class.
func undefined(what, name string, known []string) string {
	msg := fmt.Sprintf("%s %s is not defined", what, name)
	if suggestion, ok := match.Closest(name, known); ok {
		msg += fmt.Sprintf("; did you mean %s?", suggestion)
	}

	return msg
}
