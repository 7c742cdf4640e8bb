package convert

import (
	"errors"
	"fmt"
)

// Diagnostic codes recorded for failed sources and reference checks.
const (
	CodeLoadFailed          = "load_failed"
	CodeUnresolvedReference = "unresolved_reference"
	CodeIndexFailed         = "index_failed"
	CodeMissingMetadata     = "missing_metadata"
	CodeTranslateFailed     = "translate_failed"
	CodeUnresolvedAncestor  = "unresolved_ancestor"
	CodeUnresolvedType      = "unresolved_type"
	CodeDuplicateSchema     = "duplicate_schema"
	CodeDuplicateFile       = "duplicate_file"
)

// ErrEmptyModel is returned when a model has no top-level package.
var ErrEmptyModel = errors.New("model has no reference model package")

// MissingMetadataError reports a reference model stereotype lacking one of
// the identification tagged values.
type MissingMetadataError struct {
	Stereotype string
	Tag        string
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("stereotype %q has no tagged value %q", e.Stereotype, e.Tag)
}

// MissingTypeError reports a property without a declared type.
type MissingTypeError struct {
	Class    string
	Property string
}

func (e *MissingTypeError) Error() string {
	return fmt.Sprintf("property %s.%s has no declared type", e.Class, e.Property)
}

// InvalidBindingError reports a template binding that cannot be resolved to
// a root type and its parameters.
type InvalidBindingError struct {
	Property string
	Reason   string
}

func (e *InvalidBindingError) Error() string {
	return fmt.Sprintf("invalid template binding on property %s: %s", e.Property, e.Reason)
}

// LoadError wraps a loader failure for one source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IndexError wraps a failure to index a loaded model.
type IndexError struct {
	Source string
	Err    error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("indexing %s: %v", e.Source, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }

// TranslateError wraps a failure to translate a loaded model into a schema.
type TranslateError struct {
	Source string
	Err    error
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("translating %s: %v", e.Source, e.Err)
}

func (e *TranslateError) Unwrap() error { return e.Err }
