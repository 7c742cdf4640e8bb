package convert

import (
	"bmm-generator/internal/common"
	"bmm-generator/internal/uml"
)

// RedefinedDatatypesPackage holds redefined types such as
// DateTimeInterval = INTERVAL_VALUE<DATE_TIME>. It is never converted.
const RedefinedDatatypesPackage = "Redefined_Datatypes"

// Leaf is a leaf package retained by FlattenPackages.
type Leaf struct {
	// Name is the normalized package name (spaces replaced by underscores).
	Name          string
	Documentation string
	Classes       []*uml.Class
}

// FlattenPackages collapses a package tree into its leaves, depth-first in
// source order, appending them to acc. Packages with children are never
// materialized themselves. The redefined datatypes leaf is skipped wherever
// it appears.
func FlattenPackages(pkgs []*uml.Package, acc []Leaf) []Leaf {
	for _, pkg := range pkgs {
		if !pkg.IsLeaf() {
			acc = FlattenPackages(pkg.Packages, acc)
			continue
		}

		name := common.Underscored(pkg.Name)
		if name == RedefinedDatatypesPackage {
			continue
		}

		acc = append(acc, Leaf{
			Name:          name,
			Documentation: pkg.Documentation,
			Classes:       pkg.Classes,
		})
	}

	return acc
}
