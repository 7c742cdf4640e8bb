package bmm

import "bmm-generator/internal/common"

//go:generate go tool stringer -type=PropertyKind -output=kind_string.go

// PropertyKind identifies a property variant.
type PropertyKind int

const (
	_ PropertyKind = iota // zero value marks an untyped property

	KindSingle
	KindOpenGeneric
	KindGeneric
	KindContainer
)

// PersistedName returns the ODIN type marker of the variant
// (e.g., "P_BMM_SINGLE_PROPERTY").
func (k PropertyKind) PersistedName() string {
	switch k {
	case KindSingle:
		return "P_BMM_SINGLE_PROPERTY"
	case KindOpenGeneric:
		return "P_BMM_SINGLE_PROPERTY_OPEN"
	case KindGeneric:
		return "P_BMM_GENERIC_PROPERTY"
	case KindContainer:
		return "P_BMM_CONTAINER_PROPERTY"
	default:
		return common.UnknownStr
	}
}
