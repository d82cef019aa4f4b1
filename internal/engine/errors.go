package engine

import "fmt"

// Kind classifies the errors the engine surfaces to its caller (spec.md §7).
// A ride ending up Failed is a normal terminal outcome, not an error — only
// these three kinds are ever returned from an operation.
type Kind int

const (
	// KindNotFound: the referenced entity does not exist.
	KindNotFound Kind = iota
	// KindConflict: the requested transition is illegal in the current state.
	KindConflict
	// KindInvalidInput: coordinates out of range, empty required field.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the typed error the engine returns. Handlers switch on Kind to
// pick an HTTP status, mirroring the teacher pack's sentinel-error-to-status
// mapping but carrying the message and entity context in one value instead
// of one bare `errors.New` per case.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

func conflictf(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

func invalidf(format string, args ...any) *Error {
	return newError(KindInvalidInput, format, args...)
}
