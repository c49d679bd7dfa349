package ir

// ResolveType computes the type of an expression from its structure.
//
// Builders validate operand types before a node is created, so every
// expression reachable from the public API resolves to a well-defined type.
//
//nolint:gocyclo,cyclop // Type resolution requires handling all expression kinds
func ResolveType(e *Expression) ValueType {
	switch kind := e.Kind.(type) {
	case ExprInput:
		return kind.Type
	case ExprUniform:
		return kind.Type
	case LiteralI32:
		return TypeInt
	case LiteralF32:
		return TypeFloat
	case ExprCompose:
		t, _ := VectorOf(len(kind.Components))
		return t
	case ExprAppend:
		return resolveAppendType(kind)
	case ExprUnary:
		return ResolveType(kind.Operand)
	case ExprBinary:
		return resolveBinaryType(kind)
	case ExprMath:
		return resolveMathType(kind)
	case ExprImageSample:
		return TypeVec4
	default:
		panic(Contractf("resolve", "unsupported expression kind %T", kind))
	}
}

func resolveAppendType(kind ExprAppend) ValueType {
	a, _ := ResolveType(kind.Left).ComponentCount()
	b, _ := ResolveType(kind.Right).ComponentCount()
	t, _ := VectorOf(a + b)
	return t
}

func resolveBinaryType(kind ExprBinary) ValueType {
	left := ResolveType(kind.Left)
	right := ResolveType(kind.Right)
	if kind.Op == BinaryMultiply && left == TypeMat4 {
		return right
	}
	t, _ := left.BroadcastCompatible(right)
	return t
}

func resolveMathType(kind ExprMath) ValueType {
	switch kind.Fun {
	case MathDot, MathLength:
		return TypeFloat
	case MathCross:
		return TypeVec3
	case MathMin, MathMax, MathPow:
		t, _ := ResolveType(kind.Arg).BroadcastCompatible(ResolveType(kind.Arg1))
		return t
	default:
		return ResolveType(kind.Arg)
	}
}
