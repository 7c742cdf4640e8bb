package uml

import (
	"fmt"
	"sort"
)

// BuildIndex walks every package of the model and indexes its classes by name.
// It fails on duplicate class names, since references are resolved nominally.
func (m *Model) BuildIndex() error {
	index := make(map[string]*Class)

	var walk func(pkgs []*Package, path string) error
	walk = func(pkgs []*Package, path string) error {
		for _, pkg := range pkgs {
			pkgPath := joinPath(path, pkg.Name)

			for _, c := range pkg.Classes {
				if c.Name == "" {
					return fmt.Errorf("unnamed class in package %s", pkgPath)
				}

				if _, dup := index[c.Name]; dup {
					return &DuplicateClassError{Name: c.Name, Package: pkgPath}
				}

				index[c.Name] = c
			}

			if err := walk(pkg.Packages, pkgPath); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(m.Packages, ""); err != nil {
		return err
	}

	m.index = index

	return nil
}

// Indexed returns true once BuildIndex has succeeded.
func (m *Model) Indexed() bool {
	return m.index != nil
}

// Class looks up a class by name. The model must be indexed.
func (m *Model) Class(name string) (*Class, bool) {
	c, ok := m.index[name]
	return c, ok
}

// ClassNames returns all indexed class names in sorted order.
func (m *Model) ClassNames() []string {
	names := make([]string, 0, len(m.index))
	for name := range m.index {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}
