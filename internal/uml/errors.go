package uml

import "fmt"

// UnresolvedReferenceError reports a type or ancestor reference that matches no
// class in the model being loaded nor in any of its dependencies.
type UnresolvedReferenceError struct {
	// Name is the referenced class name.
	Name string
	// Referrer describes where the reference was found (e.g., "PATIENT.name").
	Referrer string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference to %q from %s", e.Name, e.Referrer)
}

// DuplicateClassError reports two classes sharing a name within one model.
type DuplicateClassError struct {
	Name    string
	Package string
}

func (e *DuplicateClassError) Error() string {
	return fmt.Sprintf("duplicate class %q in package %s", e.Name, e.Package)
}
