package ir

import "fmt"

// TypeError reports an operand that violates the typing rules of an
// operation. It is a data error: it depends on how a shader author combined
// values, and is always returned rather than raised.
type TypeError struct {
	// Op is the operation name, e.g. "mul".
	Op string

	// Side names the offending operand, e.g. "left side of 'mul'".
	Side string

	// Message provides details about the violation.
	Message string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("type error in %s: %s", e.Side, e.Message)
	}
	return fmt.Sprintf("type error in '%s': %s", e.Op, e.Message)
}

func typeErrorf(op, side, format string, args ...any) *TypeError {
	return &TypeError{Op: op, Side: side, Message: fmt.Sprintf(format, args...)}
}

// ContractViolation reports misuse of the authoring API that no correct
// shader can trigger. It is raised with panic and is not part of the
// recoverable error taxonomy.
type ContractViolation struct {
	// Op is the API call that was misused.
	Op string

	// Message provides details about the violation.
	Message string
}

// Error implements the error interface.
func (e *ContractViolation) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Message)
}

// Contractf returns a ContractViolation for the given operation, ready to be
// passed to panic.
func Contractf(op, format string, args ...any) *ContractViolation {
	return &ContractViolation{Op: op, Message: fmt.Sprintf(format, args...)}
}
