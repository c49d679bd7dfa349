package ir

import "fmt"

// side formats the operand description used in type errors.
func side(part, op string) string {
	return fmt.Sprintf("%s of '%s'", part, op)
}

func ensureVectorOrScalar(op, part string, t ValueType) error {
	if !t.IsVectorOrScalar() {
		return typeErrorf(op, side(part, op), "expected a scalar or vector, found %s", t)
	}
	return nil
}

func ensureFloatVectorOrScalar(op, part string, t ValueType) error {
	if !t.IsFloatVectorOrScalar() {
		return typeErrorf(op, side(part, op), "expected a float scalar or vector, found %s", t)
	}
	return nil
}

func ensureFloatVector(op, part string, t ValueType) error {
	if !t.IsFloatVector() {
		return typeErrorf(op, side(part, op), "expected a float vector, found %s", t)
	}
	return nil
}

func ensureType(op, part string, t, want ValueType) error {
	if !t.Matches(want) {
		return typeErrorf(op, side(part, op), "expected %s, found %s", want, t)
	}
	return nil
}

// ensureBroadcast validates a component-wise binary operation and returns
// the result type.
func ensureBroadcast(op string, left, right ValueType) (ValueType, error) {
	if err := ensureVectorOrScalar(op, "left side", left); err != nil {
		return 0, err
	}
	if err := ensureVectorOrScalar(op, "right side", right); err != nil {
		return 0, err
	}
	t, ok := left.BroadcastCompatible(right)
	if !ok {
		return 0, typeErrorf(op, side("right side", op),
			"%s cannot be combined with %s (component counts must match or one side must be a scalar of the same kind)",
			right, left)
	}
	return t, nil
}

// ensureBroadcastTo validates that arg may stand in for a value of type
// target: either the same type or a scalar of the same kind.
func ensureBroadcastTo(op, part string, target, arg ValueType) error {
	if arg == target {
		return nil
	}
	if n, ok := arg.ComponentCount(); ok && n == 1 && arg.scalar() == target.scalar() {
		return nil
	}
	return typeErrorf(op, side(part, op), "expected %s or a matching scalar, found %s", target, arg)
}

// operands converts builder arguments, naming each after its position.
func operands(op string, parts []string, values ...Value) ([]*Expression, error) {
	out := make([]*Expression, len(values))
	for i, v := range values {
		e, err := operand(op, side(parts[i], op), v)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
