package bmm

import (
	"strconv"
	"strings"
)

// DefaultContainer is the container type used for multi-valued properties.
const DefaultContainer = "List"

// Property is a BMM property. Type holds exactly one of SingleType, OpenType,
// GenericType or ContainerType.
type Property struct {
	Name          string
	Documentation string
	Mandatory     bool
	Cardinality   Cardinality
	Type          PropertyType
}

// Kind returns the variant of the property, or 0 if Type is unset.
func (p *Property) Kind() PropertyKind {
	if p.Type == nil {
		return 0
	}

	return p.Type.Kind()
}

// Cardinality is a normalized multiplicity interval.
type Cardinality struct {
	Low int
	// High is nil when the interval is unbounded.
	High *int
	// ExcludeUpperBound is set for unbounded intervals.
	ExcludeUpperBound bool
}

// Unbounded returns true if the interval has no numeric upper bound.
func (c Cardinality) Unbounded() bool {
	return c.High == nil
}

// String renders the interval as "low..high" or "low..*".
func (c Cardinality) String() string {
	high := "*"
	if c.High != nil {
		high = strconv.Itoa(*c.High)
	}

	return strconv.Itoa(c.Low) + ".." + high
}

// PropertyType is the closed set of property type shapes.
type PropertyType interface {
	Kind() PropertyKind
	// TypeName renders the type as it would be written in a declaration,
	// e.g. "List<INTERVAL<DATE_TIME>>".
	TypeName() string
	isPropertyType()
}

// ElementType is the element of a container: a SingleType or a GenericType.
type ElementType interface {
	PropertyType
	isElementType()
}

// SingleType is a plain named type.
type SingleType struct {
	Name string
}

func (SingleType) Kind() PropertyKind { return KindSingle }
func (t SingleType) TypeName() string { return t.Name }
func (SingleType) isPropertyType()    {}
func (SingleType) isElementType()     {}

// OpenType is a reference to an unbound generic parameter, e.g. T.
type OpenType struct {
	Name string
}

func (OpenType) Kind() PropertyKind { return KindOpenGeneric }
func (t OpenType) TypeName() string { return t.Name }
func (OpenType) isPropertyType()    {}

// GenericType is a generic class bound to actual parameter types.
type GenericType struct {
	RootType string
	// Parameters are the bound type names in declaration order.
	Parameters []string
}

func (GenericType) Kind() PropertyKind { return KindGeneric }
func (GenericType) isPropertyType()    {}
func (GenericType) isElementType()     {}

func (t GenericType) TypeName() string {
	return t.RootType + "<" + strings.Join(t.Parameters, ",") + ">"
}

// ContainerType is a container (e.g., List) of elements.
type ContainerType struct {
	Container string
	Element   ElementType
}

func (ContainerType) Kind() PropertyKind { return KindContainer }
func (ContainerType) isPropertyType()    {}

func (t ContainerType) TypeName() string {
	elem := ""
	if t.Element != nil {
		elem = t.Element.TypeName()
	}

	return t.Container + "<" + elem + ">"
}
