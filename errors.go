package shadergen

import "fmt"

// ErrorKind categorizes generation errors.
type ErrorKind uint8

const (
	// ErrInvalidLayout indicates a vertex layout that cannot produce the
	// vertex stage inputs.
	ErrInvalidLayout ErrorKind = iota

	// ErrCallback indicates an error returned by a stage callback.
	ErrCallback

	// ErrMissingBuiltin indicates a stage that never set its built-in
	// output.
	ErrMissingBuiltin

	// ErrInterfaceLink indicates vertex outputs that cannot be turned into
	// fragment inputs.
	ErrInterfaceLink

	// ErrParameterConflict indicates colliding uniform parameters.
	ErrParameterConflict

	// ErrRender indicates a stage the GLSL backend rejected.
	ErrRender
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidLayout:
		return "InvalidLayout"
	case ErrCallback:
		return "Callback"
	case ErrMissingBuiltin:
		return "MissingBuiltin"
	case ErrInterfaceLink:
		return "InterfaceLink"
	case ErrParameterConflict:
		return "ParameterConflict"
	case ErrRender:
		return "Render"
	default:
		return "Unknown"
	}
}

// Error represents a generation error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Stage is the stage being generated ("vertex" or "fragment"), or empty
	// for errors that belong to neither.
	Stage string

	// Message provides details about the error.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Stage != "" {
		return fmt.Sprintf("shadergen: %s in %s stage: %s", e.Kind, e.Stage, msg)
	}
	return fmt.Sprintf("shadergen: %s: %s", e.Kind, msg)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
