package ir

// ValueType represents the type of a shader value.
type ValueType uint8

const (
	TypeInt ValueType = iota
	TypeFloat
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat4
	TypeSampler2D
)

// scalarKind is the underlying scalar of a scalar or vector type.
type scalarKind uint8

const (
	kindNone scalarKind = iota
	kindSint
	kindFloat
)

// ComponentCount returns the number of scalar components of the type.
// Matrices and samplers have no component count and report false.
func (t ValueType) ComponentCount() (int, bool) {
	switch t {
	case TypeInt, TypeFloat:
		return 1, true
	case TypeVec2:
		return 2, true
	case TypeVec3:
		return 3, true
	case TypeVec4:
		return 4, true
	default:
		return 0, false
	}
}

// LocationCount returns the number of binding locations the type occupies.
func (t ValueType) LocationCount() int {
	if t == TypeMat4 {
		return 4
	}
	return 1
}

// SourceName returns the name of the type in generated shader source.
func (t ValueType) SourceName() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeVec2:
		return "vec2"
	case TypeVec3:
		return "vec3"
	case TypeVec4:
		return "vec4"
	case TypeMat4:
		return "mat4"
	case TypeSampler2D:
		return "sampler2D"
	default:
		return "unknown"
	}
}

// String returns the display name of the type.
func (t ValueType) String() string {
	switch t {
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeVec2:
		return "Vec2"
	case TypeVec3:
		return "Vec3"
	case TypeVec4:
		return "Vec4"
	case TypeMat4:
		return "Mat4"
	case TypeSampler2D:
		return "Sampler2D"
	default:
		return "Unknown"
	}
}

// ParseValueType returns the type with the given display or source name.
func ParseValueType(name string) (ValueType, bool) {
	for t := TypeInt; t <= TypeSampler2D; t++ {
		if name == t.String() || name == t.SourceName() {
			return t, true
		}
	}
	return 0, false
}

func (t ValueType) scalar() scalarKind {
	switch t {
	case TypeInt:
		return kindSint
	case TypeFloat, TypeVec2, TypeVec3, TypeVec4:
		return kindFloat
	default:
		return kindNone
	}
}

// IsVectorOrScalar reports whether the type is a scalar or a vector.
func (t ValueType) IsVectorOrScalar() bool {
	return t.scalar() != kindNone
}

// IsFloatVectorOrScalar reports whether the type is a float scalar or vector.
func (t ValueType) IsFloatVectorOrScalar() bool {
	return t.scalar() == kindFloat
}

// IsFloatVector reports whether the type is a float vector of 2, 3 or 4 components.
func (t ValueType) IsFloatVector() bool {
	return t == TypeVec2 || t == TypeVec3 || t == TypeVec4
}

// Matches reports whether both types are identical.
func (t ValueType) Matches(other ValueType) bool {
	return t == other
}

// BroadcastCompatible reports whether two operands may be combined by a
// component-wise binary operation, and returns the resulting type.
// Both sides must be scalars or vectors of the same scalar kind with equal
// component counts, or one side must be a scalar.
func (t ValueType) BroadcastCompatible(other ValueType) (ValueType, bool) {
	if !t.IsVectorOrScalar() || !other.IsVectorOrScalar() {
		return 0, false
	}
	if t.scalar() != other.scalar() {
		return 0, false
	}
	a, _ := t.ComponentCount()
	b, _ := other.ComponentCount()
	switch {
	case a == b:
		return t, true
	case a == 1:
		return other, true
	case b == 1:
		return t, true
	default:
		return 0, false
	}
}

// ContainedIn reports whether the type is one of the given types.
func (t ValueType) ContainedIn(types ...ValueType) bool {
	for _, other := range types {
		if t == other {
			return true
		}
	}
	return false
}

// VectorOf returns the float type with n components. One component is Float.
func VectorOf(n int) (ValueType, bool) {
	switch n {
	case 1:
		return TypeFloat, true
	case 2:
		return TypeVec2, true
	case 3:
		return TypeVec3, true
	case 4:
		return TypeVec4, true
	default:
		return 0, false
	}
}
