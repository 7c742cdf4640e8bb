package convert

import (
	"bmm-generator/internal/bmm"
	"bmm-generator/internal/common"
	"bmm-generator/internal/uml"
)

// Tagged values read from the reference model stereotype.
const (
	TagPublisher = "rmPublisher"
	TagVersion   = "rmVersion"
	TagNamespace = "rmNamespace"
)

// ExtractIdentification copies publisher, release and schema name from the
// root package's stereotype into schema. The namespace becomes the schema
// name with spaces replaced by hyphens.
//
// It only applies when the root carries exactly one stereotype. With zero or
// several stereotypes nothing is set and applied is false. A single stereotype
// missing any of the three tags fails with *MissingMetadataError and leaves
// schema untouched.
func ExtractIdentification(root *uml.Package, schema *bmm.Schema) (applied bool, err error) {
	if root == nil || !common.IsSingle(root.Stereotypes) {
		return false, nil
	}

	st := root.Stereotypes[0]

	var values [3]string
	for i, tag := range []string{TagPublisher, TagVersion, TagNamespace} {
		v, ok := st.TaggedValue(tag)
		if !ok {
			return false, &MissingMetadataError{Stereotype: st.Name, Tag: tag}
		}

		values[i] = v
	}

	schema.RMPublisher = values[0]
	schema.RMRelease = values[1]
	schema.SchemaName = common.Hyphenated(values[2])

	return true, nil
}
