// Package diag defines a structured diagnostic payload for the analysis
// packages' errors: file, line, element, attribute, and offending value,
// per the error-kind table of the core error-handling design. The
// analysis packages themselves return plain %w-wrapped sentinels and do
// not build diag.Error values.
//
// diag.Error wraps a sentinel error (defined per-package, e.g.
// mef.ErrCycle) so callers can still branch with errors.Is/errors.As while
// getting the full context when they want to print or log it.
package diag

import "fmt"

// Kind classifies a diagnostic by the recovery-policy table: every kind is
// fatal for the current analysis; only Cancellation short-circuits without
// producing output, and only Cancellation and none of the others are ever
// expected in normal operation.
type Kind int

const (
	// KindIO covers file-open/write failures. Out of scope for this
	// library (no file I/O happens inside core packages) but kept so a
	// host building a CLI on top of this module can reuse the same Kind
	// enumeration for its own I/O errors.
	KindIO Kind = iota
	// KindParse covers ill-formed input (out of scope here; the XML
	// parser is an external collaborator).
	KindParse
	// KindValidity covers MEF/schema invariant violations.
	KindValidity
	// KindCycle covers gate or parameter reference cycles.
	KindCycle
	// KindDomain covers expression arguments outside their valid domain.
	KindDomain
	// KindSettings covers out-of-range or incompatible analysis settings.
	KindSettings
	// KindLogic covers internal precondition violations.
	KindLogic
	// KindCancelled covers cooperative cancellation.
	KindCancelled
)

// String renders the Kind the way it appears in diagnostic output.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io-error"
	case KindParse:
		return "parse-error"
	case KindValidity:
		return "validity-error"
	case KindCycle:
		return "cycle-error"
	case KindDomain:
		return "domain-error"
	case KindSettings:
		return "settings-error"
	case KindLogic:
		return "logic-error"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown-error"
	}
}

// Error is the structured diagnostic payload attached to a sentinel error.
// File/Line are empty/zero when the offending element has no source
// position (e.g. errors raised after CCF expansion, which has no file of
// its own).
type Error struct {
	Kind      Kind
	File      string
	Line      int
	Element   string // element/gate/event/group name
	Attribute string // attribute or field name, if applicable
	Value     string // offending value, stringified
	Err       error  // the wrapped sentinel
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Element != "" {
		msg += " in " + e.Element
	}
	if e.Attribute != "" {
		msg += "." + e.Attribute
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (value=%q)", e.Value)
	}
	if e.File != "" {
		msg += fmt.Sprintf(" [%s:%d]", e.File, e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes the wrapped sentinel so errors.Is/errors.As keep working.
func (e *Error) Unwrap() error { return e.Err }

// Wrap builds a diag.Error around sentinel err with the given kind and
// element name; File/Line/Attribute/Value can be set on the returned
// value before it is returned to the caller.
func Wrap(kind Kind, element string, err error) *Error {
	return &Error{Kind: kind, Element: element, Err: err}
}
