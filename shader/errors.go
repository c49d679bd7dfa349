package shader

import "fmt"

// ErrorKind categorizes registry errors.
type ErrorKind uint8

const (
	// ErrEmptyInputs indicates an input set without any input.
	ErrEmptyInputs ErrorKind = iota

	// ErrDuplicateName indicates two entries sharing a name.
	ErrDuplicateName

	// ErrMissingName indicates a lookup of a name that was never declared.
	ErrMissingName

	// ErrTypeConflict indicates a name reused with a different type, or a
	// type that cannot be used in that position.
	ErrTypeConflict

	// ErrInvalidName indicates a name that is not an identifier.
	ErrInvalidName

	// ErrInvalidLayout indicates a malformed vertex layout or vertex data
	// that does not match it.
	ErrInvalidLayout
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrEmptyInputs:
		return "EmptyInputs"
	case ErrDuplicateName:
		return "DuplicateName"
	case ErrMissingName:
		return "MissingName"
	case ErrTypeConflict:
		return "TypeConflict"
	case ErrInvalidName:
		return "InvalidName"
	case ErrInvalidLayout:
		return "InvalidLayout"
	default:
		return "Unknown"
	}
}

// Error represents a registry error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Name is the offending name, if any.
	Name string

	// Message provides details about the error.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("shader %s %q: %s", e.Kind, e.Name, e.Message)
	}
	return fmt.Sprintf("shader %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error of the same kind, so callers can
// match with errors.Is(err, &shader.Error{Kind: shader.ErrMissingName}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, name, format string, args ...any) *Error {
	return &Error{Kind: kind, Name: name, Message: fmt.Sprintf(format, args...)}
}
