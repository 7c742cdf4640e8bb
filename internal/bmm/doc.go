// Package bmm provides the target BMM (Basic Meta-Model) schema types.
//
// A Schema holds identification and documentation fields, include directives,
// a single package container with leaf packages, ordinary and primitive class
// definitions, and the archetype closure package list.
//
// Properties are a tagged union: Property.Type holds exactly one of
//   - SingleType: a plain named type
//   - OpenType: an unbound generic parameter (e.g., T)
//   - GenericType: a generic root bound to parameter type names
//   - ContainerType: a container whose element is a SingleType or GenericType
//
// Ancestors and types are referenced by name; Schema.Index builds a lookup
// for consumers that need the definitions.
package bmm
