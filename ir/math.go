package ir

// Arithmetic is the capability of values that support arithmetic,
// component construction and scalar math intrinsics.
// It is satisfied by *Expression, Int and Float.
type Arithmetic interface {
	Value
	Append(other Value) (*Expression, error)
	Add(other Value) (*Expression, error)
	Sub(other Value) (*Expression, error)
	Mul(other Value) (*Expression, error)
	Div(other Value) (*Expression, error)
	Pow(other Value) (*Expression, error)
	Rem(other Value) (*Expression, error)
	Neg() (*Expression, error)
	Abs() (*Expression, error)
	Sign() (*Expression, error)
	Floor() (*Expression, error)
	Ceil() (*Expression, error)
	Round() (*Expression, error)
	Min(other Value) (*Expression, error)
	Max(other Value) (*Expression, error)
	Clamp(lo, hi Value) (*Expression, error)
	Mix(other, factor Value) (*Expression, error)
}

var (
	_ Arithmetic = (*Expression)(nil)
	_ Arithmetic = Int(0)
	_ Arithmetic = Float(0)
)

// Append concatenates two scalars or vectors into a float vector.
// The result may not have more than four components.
func Append(a, b Value) (*Expression, error) {
	args, err := operands("append", []string{"left side", "right side"}, a, b)
	if err != nil {
		return nil, err
	}
	left, right := args[0].Type(), args[1].Type()
	if err := ensureVectorOrScalar("append", "left side", left); err != nil {
		return nil, err
	}
	if err := ensureVectorOrScalar("append", "right side", right); err != nil {
		return nil, err
	}
	n, _ := left.ComponentCount()
	m, _ := right.ComponentCount()
	if n+m > 4 {
		return nil, typeErrorf("append", side("right side", "append"),
			"cannot create a vector with more than 4 components: %s + %s = %d components", left, right, n+m)
	}
	return &Expression{Kind: ExprAppend{Left: args[0], Right: args[1]}}, nil
}

func binary(name string, op BinaryOperator, a, b Value) (*Expression, error) {
	args, err := operands(name, []string{"left side", "right side"}, a, b)
	if err != nil {
		return nil, err
	}
	if _, err := ensureBroadcast(name, args[0].Type(), args[1].Type()); err != nil {
		return nil, err
	}
	return &Expression{Kind: ExprBinary{Op: op, Left: args[0], Right: args[1]}}, nil
}

// Add returns a + b.
func Add(a, b Value) (*Expression, error) { return binary("add", BinaryAdd, a, b) }

// Sub returns a - b.
func Sub(a, b Value) (*Expression, error) { return binary("sub", BinarySubtract, a, b) }

// Div returns a / b.
func Div(a, b Value) (*Expression, error) { return binary("div", BinaryDivide, a, b) }

// Rem returns the remainder of a divided by b.
func Rem(a, b Value) (*Expression, error) { return binary("rem", BinaryModulo, a, b) }

// Mul returns a * b. Besides component-wise multiplication, a Mat4 on the
// left transforms a Vec4 or composes with another Mat4.
func Mul(a, b Value) (*Expression, error) {
	args, err := operands("mul", []string{"left side", "right side"}, a, b)
	if err != nil {
		return nil, err
	}
	left, right := args[0].Type(), args[1].Type()
	switch {
	case left == TypeMat4:
		if !right.ContainedIn(TypeVec4, TypeMat4) {
			return nil, typeErrorf("mul", side("right side", "mul"), "expected Vec4 or Mat4 after Mat4, found %s", right)
		}
	case right == TypeMat4:
		return nil, typeErrorf("mul", side("right side", "mul"), "a matrix may only appear as the left operand")
	default:
		if _, err := ensureBroadcast("mul", left, right); err != nil {
			return nil, err
		}
	}
	return &Expression{Kind: ExprBinary{Op: BinaryMultiply, Left: args[0], Right: args[1]}}, nil
}

func mathCall(name string, fun MathFunction, parts []string, values ...Value) ([]*Expression, *Expression, error) {
	args, err := operands(name, parts, values...)
	if err != nil {
		return nil, nil, err
	}
	expr := ExprMath{Fun: fun, Arg: args[0]}
	if len(args) > 1 {
		expr.Arg1 = args[1]
	}
	if len(args) > 2 {
		expr.Arg2 = args[2]
	}
	return args, &Expression{Kind: expr}, nil
}

// Pow raises a to the power of b.
func Pow(a, b Value) (*Expression, error) {
	args, e, err := mathCall("pow", MathPow, []string{"left side", "right side"}, a, b)
	if err != nil {
		return nil, err
	}
	if err := ensureFloatVectorOrScalar("pow", "left side", args[0].Type()); err != nil {
		return nil, err
	}
	if err := ensureFloatVectorOrScalar("pow", "right side", args[1].Type()); err != nil {
		return nil, err
	}
	if _, err := ensureBroadcast("pow", args[0].Type(), args[1].Type()); err != nil {
		return nil, err
	}
	return e, nil
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Value) (*Expression, error) { return minMax("min", MathMin, a, b) }

// Max returns the component-wise maximum of a and b.
func Max(a, b Value) (*Expression, error) { return minMax("max", MathMax, a, b) }

func minMax(name string, fun MathFunction, a, b Value) (*Expression, error) {
	args, e, err := mathCall(name, fun, []string{"left side", "right side"}, a, b)
	if err != nil {
		return nil, err
	}
	if _, err := ensureBroadcast(name, args[0].Type(), args[1].Type()); err != nil {
		return nil, err
	}
	return e, nil
}

func unary(name string, fun MathFunction, float bool, a Value) (*Expression, error) {
	args, e, err := mathCall(name, fun, []string{"operand"}, a)
	if err != nil {
		return nil, err
	}
	if float {
		err = ensureFloatVectorOrScalar(name, "operand", args[0].Type())
	} else {
		err = ensureVectorOrScalar(name, "operand", args[0].Type())
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Neg returns -a.
func Neg(a Value) (*Expression, error) {
	arg, err := operand("neg", side("operand", "neg"), a)
	if err != nil {
		return nil, err
	}
	if err := ensureVectorOrScalar("neg", "operand", arg.Type()); err != nil {
		return nil, err
	}
	return &Expression{Kind: ExprUnary{Op: UnaryNegate, Operand: arg}}, nil
}

// Abs returns the absolute value of a.
func Abs(a Value) (*Expression, error) { return unary("abs", MathAbs, false, a) }

// Sign returns -1, 0 or 1 per component depending on the sign of a.
func Sign(a Value) (*Expression, error) { return unary("sign", MathSign, false, a) }

// Floor rounds a down.
func Floor(a Value) (*Expression, error) { return unary("floor", MathFloor, true, a) }

// Ceil rounds a up.
func Ceil(a Value) (*Expression, error) { return unary("ceil", MathCeil, true, a) }

// Round rounds a to the nearest integer, delegating ties to the target
// language's round.
func Round(a Value) (*Expression, error) { return unary("round", MathRound, true, a) }

// Clamp constrains x between lo and hi. The bounds either have the type of x
// or are scalars of the same kind.
func Clamp(x, lo, hi Value) (*Expression, error) {
	args, e, err := mathCall("clamp", MathClamp, []string{"argument 'self'", "argument 'min'", "argument 'max'"}, x, lo, hi)
	if err != nil {
		return nil, err
	}
	t := args[0].Type()
	if err := ensureVectorOrScalar("clamp", "argument 'self'", t); err != nil {
		return nil, err
	}
	if err := ensureBroadcastTo("clamp", "argument 'min'", t, args[1].Type()); err != nil {
		return nil, err
	}
	if err := ensureBroadcastTo("clamp", "argument 'max'", t, args[2].Type()); err != nil {
		return nil, err
	}
	return e, nil
}

// Mix linearly interpolates between a and b by factor.
func Mix(a, b, factor Value) (*Expression, error) {
	args, e, err := mathCall("mix", MathMix, []string{"argument 'self'", "argument 'other'", "argument 'factor'"}, a, b, factor)
	if err != nil {
		return nil, err
	}
	t := args[0].Type()
	if err := ensureFloatVectorOrScalar("mix", "argument 'self'", t); err != nil {
		return nil, err
	}
	if err := ensureType("mix", "argument 'other'", args[1].Type(), t); err != nil {
		return nil, err
	}
	if err := ensureBroadcastTo("mix", "argument 'factor'", t, args[2].Type()); err != nil {
		return nil, err
	}
	return e, nil
}

func compose(name string, parts []string, values ...Value) (*Expression, error) {
	args, err := operands(name, parts, values...)
	if err != nil {
		return nil, err
	}
	for i, arg := range args {
		if !arg.Type().ContainedIn(TypeInt, TypeFloat) {
			return nil, typeErrorf(name, side(parts[i], name), "expected Int or Float, found %s", arg.Type())
		}
	}
	return &Expression{Kind: ExprCompose{Components: args}}, nil
}

// NewVec2 constructs a Vec2 from two scalars.
func NewVec2(x, y Value) (*Expression, error) {
	return compose("vec2", []string{"argument 'x'", "argument 'y'"}, x, y)
}

// NewVec3 constructs a Vec3 from three scalars.
func NewVec3(x, y, z Value) (*Expression, error) {
	return compose("vec3", []string{"argument 'x'", "argument 'y'", "argument 'z'"}, x, y, z)
}

// NewVec4 constructs a Vec4 from four scalars.
func NewVec4(x, y, z, w Value) (*Expression, error) {
	return compose("vec4", []string{"argument 'x'", "argument 'y'", "argument 'z'", "argument 'w'"}, x, y, z, w)
}

// Append concatenates the expression with other.
func (e *Expression) Append(other Value) (*Expression, error) { return Append(e, other) }

// Add returns e + other.
func (e *Expression) Add(other Value) (*Expression, error) { return Add(e, other) }

// Sub returns e - other.
func (e *Expression) Sub(other Value) (*Expression, error) { return Sub(e, other) }

// Mul returns e * other.
func (e *Expression) Mul(other Value) (*Expression, error) { return Mul(e, other) }

// Div returns e / other.
func (e *Expression) Div(other Value) (*Expression, error) { return Div(e, other) }

// Pow raises e to the power of other.
func (e *Expression) Pow(other Value) (*Expression, error) { return Pow(e, other) }

// Rem returns the remainder of e divided by other.
func (e *Expression) Rem(other Value) (*Expression, error) { return Rem(e, other) }

// Neg returns -e.
func (e *Expression) Neg() (*Expression, error) { return Neg(e) }

// Abs returns the absolute value of e.
func (e *Expression) Abs() (*Expression, error) { return Abs(e) }

// Sign returns the sign of e.
func (e *Expression) Sign() (*Expression, error) { return Sign(e) }

// Floor rounds e down.
func (e *Expression) Floor() (*Expression, error) { return Floor(e) }

// Ceil rounds e up.
func (e *Expression) Ceil() (*Expression, error) { return Ceil(e) }

// Round rounds e to the nearest integer.
func (e *Expression) Round() (*Expression, error) { return Round(e) }

// Min returns the minimum of e and other.
func (e *Expression) Min(other Value) (*Expression, error) { return Min(e, other) }

// Max returns the maximum of e and other.
func (e *Expression) Max(other Value) (*Expression, error) { return Max(e, other) }

// Clamp constrains e between lo and hi.
func (e *Expression) Clamp(lo, hi Value) (*Expression, error) { return Clamp(e, lo, hi) }

// Mix interpolates between e and other by factor.
func (e *Expression) Mix(other, factor Value) (*Expression, error) { return Mix(e, other, factor) }

func (v Int) Append(other Value) (*Expression, error) { return Append(v, other) }
func (v Int) Add(other Value) (*Expression, error) { return Add(v, other) }
func (v Int) Sub(other Value) (*Expression, error) { return Sub(v, other) }
func (v Int) Mul(other Value) (*Expression, error) { return Mul(v, other) }
func (v Int) Div(other Value) (*Expression, error) { return Div(v, other) }
func (v Int) Pow(other Value) (*Expression, error) { return Pow(v, other) }
func (v Int) Rem(other Value) (*Expression, error) { return Rem(v, other) }
func (v Int) Neg() (*Expression, error) { return Neg(v) }
func (v Int) Abs() (*Expression, error) { return Abs(v) }
func (v Int) Sign() (*Expression, error) { return Sign(v) }
func (v Int) Floor() (*Expression, error) { return Floor(v) }
func (v Int) Ceil() (*Expression, error) { return Ceil(v) }
func (v Int) Round() (*Expression, error) { return Round(v) }
func (v Int) Min(other Value) (*Expression, error) { return Min(v, other) }
func (v Int) Max(other Value) (*Expression, error) { return Max(v, other) }
func (v Int) Clamp(lo, hi Value) (*Expression, error) { return Clamp(v, lo, hi) }
func (v Int) Mix(other, factor Value) (*Expression, error) { return Mix(v, other, factor) }

func (v Float) Append(other Value) (*Expression, error) { return Append(v, other) }
func (v Float) Add(other Value) (*Expression, error) { return Add(v, other) }
func (v Float) Sub(other Value) (*Expression, error) { return Sub(v, other) }
func (v Float) Mul(other Value) (*Expression, error) { return Mul(v, other) }
func (v Float) Div(other Value) (*Expression, error) { return Div(v, other) }
func (v Float) Pow(other Value) (*Expression, error) { return Pow(v, other) }
func (v Float) Rem(other Value) (*Expression, error) { return Rem(v, other) }
func (v Float) Neg() (*Expression, error) { return Neg(v) }
func (v Float) Abs() (*Expression, error) { return Abs(v) }
func (v Float) Sign() (*Expression, error) { return Sign(v) }
func (v Float) Floor() (*Expression, error) { return Floor(v) }
func (v Float) Ceil() (*Expression, error) { return Ceil(v) }
func (v Float) Round() (*Expression, error) { return Round(v) }
func (v Float) Min(other Value) (*Expression, error) { return Min(v, other) }
func (v Float) Max(other Value) (*Expression, error) { return Max(v, other) }
func (v Float) Clamp(lo, hi Value) (*Expression, error) { return Clamp(v, lo, hi) }
func (v Float) Mix(other, factor Value) (*Expression, error) { return Mix(v, other, factor) }
