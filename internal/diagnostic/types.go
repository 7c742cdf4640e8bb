package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"bmm-generator/internal/common"
)

// Diagnostics holds the diagnostics of one conversion batch.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a stable identifier for this kind of diagnostic (e.g., "load_failed").
	Code string
	// Message is the human-readable description.
	Message string
	// Source names the batch source this relates to (if any).
	Source string
	// Element identifies the class or property this relates to (if any).
	Element string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, source, element string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, source, element))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source, element string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, source, element))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source, element string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, source, element))
}

func newDiagnostic(severity DiagnosticSeverity, code, message, source, element string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Source:   source,
		Element:  element,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// ForSource returns the diagnostics recorded against one source, in All order.
func (d *Diagnostics) ForSource(source string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Source == source {
			out = append(out, diag)
		}
	}

	return out
}

// Summary returns a one-line count, e.g. "1 error, 2 warnings".
func (d *Diagnostics) Summary() string {
	return plural(len(d.Errors), "error") + ", " + plural(len(d.Warnings), "warning")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, "["+d.Source+"]")
	}

	if d.Element != "" {
		prefix = append(prefix, d.Element)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
