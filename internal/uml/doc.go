// Package uml provides the in-memory UML source model consumed by the converter.
//
// A Model is an ordered list of packages. Packages nest, hold classes and may
// carry stereotypes with tagged values. Classes reference their ancestors and
// property types by pointer; bound generic types (e.g., INTERVAL<DATE_TIME>)
// are anonymous classes carrying a TemplateBinding back to the signature of
// the generic class they bind.
//
// Key types:
//   - Model: top-level packages plus a name index built by BuildIndex
//   - Loader: produces a Model from a locator, resolving references into
//     models loaded earlier in the same batch
//   - YAMLLoader: Loader over the YAML model format described on modelDoc
package uml
