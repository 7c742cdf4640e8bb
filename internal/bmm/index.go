package bmm

import "sort"

// ClassIndex maps class names to definitions. Ancestors and property types
// are stored by name, so consumers that need the definitions look them up here.
type ClassIndex map[string]*Class

// Index builds a ClassIndex over the schema's primitive types and class definitions.
func (s *Schema) Index() ClassIndex {
	idx := make(ClassIndex, len(s.PrimitiveTypes)+len(s.ClassDefinitions))

	for _, c := range s.PrimitiveTypes {
		idx[c.Name] = c
	}

	for _, c := range s.ClassDefinitions {
		idx[c.Name] = c
	}

	return idx
}

// Lookup returns the class with the given name.
func (idx ClassIndex) Lookup(name string) (*Class, bool) {
	c, ok := idx[name]
	return c, ok
}

// Names returns the indexed class names in sorted order.
func (idx ClassIndex) Names() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Merge returns a new index holding the entries of idx and others.
// Entries of idx win on name clashes.
func (idx ClassIndex) Merge(others ...ClassIndex) ClassIndex {
	merged := make(ClassIndex, len(idx))

	for _, other := range others {
		for name, c := range other {
			merged[name] = c
		}
	}

	for name, c := range idx {
		merged[name] = c
	}

	return merged
}

// ReferencedTypes returns the names a property refers to: its type, the
// container element, generic root types and bound parameters.
func ReferencedTypes(p *Property) []string {
	switch t := p.Type.(type) {
	case SingleType:
		return []string{t.Name}
	case GenericType:
		return append([]string{t.RootType}, t.Parameters...)
	case ContainerType:
		switch elem := t.Element.(type) {
		case SingleType:
			return []string{elem.Name}
		case GenericType:
			return append([]string{elem.RootType}, elem.Parameters...)
		}
	}

	return nil
}
