// Package gen renders BMM schemas to files.
//
// ODIN output follows the BMM persistence layout: identification and
// documentation fields, includes, the package container, the closure package
// list, primitive types and class definitions. Properties are written with
// their P_BMM_* type markers. YAML output mirrors the same structure.
//
// File names follow "<publisher>_<schema name>.v.<release>.bmm".
package gen
