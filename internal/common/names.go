package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// Underscored replaces every space in name with an underscore.
// Package names are normalized this way before they reach a schema.
func Underscored(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// Hyphenated replaces every space in name with a hyphen.
func Hyphenated(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}
