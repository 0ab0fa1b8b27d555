// Package errors provides the structured error type used across the
// bindings. Errors carry a phase (where in processing the failure occurred)
// and a kind (what went wrong), so callers can match on both without
// parsing messages.
package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad Phase = "load" // module compilation
	PhaseBind Phase = "bind" // export resolution and validation
	PhaseCall Phase = "call" // invoking an exported function
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidModule     Kind = "invalid_module"
	KindMissingExport     Kind = "missing_export"
	KindSignatureMismatch Kind = "signature_mismatch"
	KindInvalidInput      Kind = "invalid_input"
	KindNotInitialized    Kind = "not_initialized"
	KindCallFailed        Kind = "call_failed"
)

// Error is the structured error type used throughout the module
type Error struct {
	Phase  Phase
	Kind   Kind
	Symbol string // exported symbol the error relates to, if any
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(" at ")
		b.WriteString(e.Symbol)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the errors the bindings produce

// Load creates a module loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidModule,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingExport reports a symbol required by the ABI table but absent from
// the loaded module
func MissingExport(symbol string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindMissingExport,
		Symbol: symbol,
		Detail: "required export not found",
	}
}

// SignatureMismatch reports an export whose value types differ from the ABI
// table
func SignatureMismatch(symbol, want, got string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindSignatureMismatch,
		Symbol: symbol,
		Detail: fmt.Sprintf("want %s, got %s", want, got),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotInitialized creates a not-initialized error for a missing component
func NotInitialized(component string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// CallFailed wraps a failure from the underlying engine while invoking an
// exported function
func CallFailed(symbol string, cause error) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindCallFailed,
		Symbol: symbol,
		Cause:  cause,
	}
}
