// Package diag carries build and parse diagnostics on a stream
// separate from the primary, machine-readable result, the way
// nihei9/vartan's "error" package separates a *SpecError from the
// value it decorates.
package diag

import "fmt"

// Kind names one of the error/warning categories a build or parse can
// report.
type Kind string

const (
	KindGrammarOpenFailure   = Kind("GrammarOpenFailure")
	KindEmptyGrammar         = Kind("EmptyGrammar")
	KindInvalidProductionLine = Kind("InvalidProductionLine")
	KindTableConflict        = Kind("TableConflict")
	KindInconsistentTable    = Kind("InconsistentTable")
	KindInputRejected        = Kind("InputRejected")
)

// Severity distinguishes a diagnostic that aborts the current operation
// from one that is recorded and passed through.
type Severity int

const (
	Warning Severity = iota
	Fatal
)

func (k Kind) severity() Severity {
	switch k {
	case KindGrammarOpenFailure, KindEmptyGrammar, KindInconsistentTable:
		return Fatal
	default:
		return Warning
	}
}

// Error is the diagnostic value type. It wraps an underlying cause and,
// when available, the source location that produced it, mirroring
// nihei9/vartan's SpecError (FilePath, SourceName, Row, Cause).
type Error struct {
	Kind     Kind
	Cause    error
	Source   string
	Line     int
	LineText string
}

func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

func (e *Error) WithLocation(source string, line int, text string) *Error {
	e.Source = source
	e.Line = line
	e.LineText = text
	return e
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: %v", e.Kind, e.Cause)
	if e.Source != "" {
		msg = fmt.Sprintf("%v:%v: %v", e.Source, e.Line, msg)
	}
	if e.LineText != "" {
		msg += "\n    " + e.LineText
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Severity reports whether e should abort the caller or merely be
// recorded.
func (e *Error) Severity() Severity {
	return e.Kind.severity()
}

// Stream accumulates diagnostics produced during a build or a parse. It
// keeps stdout (the primary, machine-readable output) free of anything
// that isn't the artifact the caller asked for.
type Stream struct {
	entries []*Error
}

func NewStream() *Stream {
	return &Stream{}
}

// Report records a diagnostic. It returns true if the diagnostic is
// fatal, so callers can decide whether to keep going.
func (s *Stream) Report(e *Error) bool {
	s.entries = append(s.entries, e)
	return e.Severity() == Fatal
}

// Entries returns every diagnostic reported so far, in report order.
func (s *Stream) Entries() []*Error {
	return s.entries
}

// HasFatal reports whether any reported diagnostic was fatal.
func (s *Stream) HasFatal() bool {
	for _, e := range s.entries {
		if e.Severity() == Fatal {
			return true
		}
	}
	return false
}
