// Package common holds helpers shared by the model packages.
package common

// IsEmpty reports whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle reports whether s has exactly one element. Stereotype lookup
// only applies to singletons.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple reports whether s has two or more elements.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) >= 2
}

// First returns the head of s. ok is false for an empty slice.
func First[S ~[]E, E any](s S) (head E, ok bool) {
	if len(s) > 0 {
		head, ok = s[0], true
	}

	return head, ok
}
