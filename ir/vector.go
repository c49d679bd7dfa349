package ir

// VectorMath is the capability of values that support geometric vector
// operations. Operand types are validated when the operation is called.
// It is satisfied by *Expression, Vec2, Vec3 and Vec4.
type VectorMath interface {
	Value
	Dot(other Value) (*Expression, error)
	Cross(other Value) (*Expression, error)
	Length() (*Expression, error)
	Normalize() (*Expression, error)
}

var (
	_ VectorMath = (*Expression)(nil)
	_ VectorMath = Vec2{}
	_ VectorMath = Vec3{}
	_ VectorMath = Vec4{}
)

// Dot returns the dot product of two float vectors of the same size.
func Dot(a, b Value) (*Expression, error) {
	args, e, err := mathCall("dot", MathDot, []string{"argument 'self'", "argument 'other'"}, a, b)
	if err != nil {
		return nil, err
	}
	t := args[0].Type()
	if err := ensureFloatVector("dot", "argument 'self'", t); err != nil {
		return nil, err
	}
	if err := ensureType("dot", "argument 'other'", args[1].Type(), t); err != nil {
		return nil, err
	}
	return e, nil
}

// Cross returns the cross product of two Vec3 values.
func Cross(a, b Value) (*Expression, error) {
	args, e, err := mathCall("cross", MathCross, []string{"argument 'self'", "argument 'other'"}, a, b)
	if err != nil {
		return nil, err
	}
	if err := ensureType("cross", "argument 'self'", args[0].Type(), TypeVec3); err != nil {
		return nil, err
	}
	if err := ensureType("cross", "argument 'other'", args[1].Type(), TypeVec3); err != nil {
		return nil, err
	}
	return e, nil
}

// Length returns the Euclidean length of a float vector.
func Length(a Value) (*Expression, error) {
	args, e, err := mathCall("length", MathLength, []string{"argument 'self'"}, a)
	if err != nil {
		return nil, err
	}
	if err := ensureFloatVector("length", "argument 'self'", args[0].Type()); err != nil {
		return nil, err
	}
	return e, nil
}

// Normalize returns the float vector scaled to unit length.
func Normalize(a Value) (*Expression, error) {
	args, e, err := mathCall("normalize", MathNormalize, []string{"argument 'self'"}, a)
	if err != nil {
		return nil, err
	}
	if err := ensureFloatVector("normalize", "argument 'self'", args[0].Type()); err != nil {
		return nil, err
	}
	return e, nil
}

// Dot returns the dot product of e and other.
func (e *Expression) Dot(other Value) (*Expression, error) { return Dot(e, other) }

// Cross returns the cross product of e and other.
func (e *Expression) Cross(other Value) (*Expression, error) { return Cross(e, other) }

// Length returns the length of e.
func (e *Expression) Length() (*Expression, error) { return Length(e) }

// Normalize returns e scaled to unit length.
func (e *Expression) Normalize() (*Expression, error) { return Normalize(e) }

func (v Vec2) Dot(other Value) (*Expression, error) { return Dot(v, other) }
func (v Vec2) Cross(other Value) (*Expression, error) { return Cross(v, other) }
func (v Vec2) Length() (*Expression, error) { return Length(v) }
func (v Vec2) Normalize() (*Expression, error) { return Normalize(v) }

func (v Vec3) Dot(other Value) (*Expression, error) { return Dot(v, other) }
func (v Vec3) Cross(other Value) (*Expression, error) { return Cross(v, other) }
func (v Vec3) Length() (*Expression, error) { return Length(v) }
func (v Vec3) Normalize() (*Expression, error) { return Normalize(v) }

func (v Vec4) Dot(other Value) (*Expression, error) { return Dot(v, other) }
func (v Vec4) Cross(other Value) (*Expression, error) { return Cross(v, other) }
func (v Vec4) Length() (*Expression, error) { return Length(v) }
func (v Vec4) Normalize() (*Expression, error) { return Normalize(v) }
