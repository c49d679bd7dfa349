package ir

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Value is anything that can be used as an operand of a builder.
// *Expression and the literal types below implement it.
type Value interface {
	Expression() *Expression
}

// Int is a 32-bit integer literal.
type Int int32

// Float is a 32-bit float literal.
type Float float32

// Vec2 is a float vector literal with two components.
type Vec2 [2]float32

// Vec3 is a float vector literal with three components.
type Vec3 [3]float32

// Vec4 is a float vector literal with four components.
type Vec4 [4]float32

// IVec2 is an integer vector literal with two components.
// It promotes to a float vector whose components are integer literals.
type IVec2 [2]int32

// IVec3 is an integer vector literal with three components.
type IVec3 [3]int32

// IVec4 is an integer vector literal with four components.
type IVec4 [4]int32

// Expression promotes the literal to an expression.
func (v Int) Expression() *Expression { return &Expression{Kind: LiteralI32(v)} }

// Expression promotes the literal to an expression.
func (v Float) Expression() *Expression { return &Expression{Kind: LiteralF32(v)} }

// Expression promotes the literal to an expression.
func (v Vec2) Expression() *Expression { return composeFloats(v[:]) }

// Expression promotes the literal to an expression.
func (v Vec3) Expression() *Expression { return composeFloats(v[:]) }

// Expression promotes the literal to an expression.
func (v Vec4) Expression() *Expression { return composeFloats(v[:]) }

// Expression promotes the literal to an expression.
func (v IVec2) Expression() *Expression { return composeInts(v[:]) }

// Expression promotes the literal to an expression.
func (v IVec3) Expression() *Expression { return composeInts(v[:]) }

// Expression promotes the literal to an expression.
func (v IVec4) Expression() *Expression { return composeInts(v[:]) }

func composeFloats(values []float32) *Expression {
	components := make([]*Expression, len(values))
	for i, f := range values {
		components[i] = Float(f).Expression()
	}
	return &Expression{Kind: ExprCompose{Components: components}}
}

func composeInts(values []int32) *Expression {
	components := make([]*Expression, len(values))
	for i, n := range values {
		components[i] = Int(n).Expression()
	}
	return &Expression{Kind: ExprCompose{Components: components}}
}

// Literal promotes a Go value to an expression.
// Accepted values are Value implementations, int, int32, float32, float64,
// and float32/int32 arrays of 2, 3 or 4 elements.
func Literal(v any) (*Expression, error) {
	switch x := v.(type) {
	case nil:
		return nil, typeErrorf("literal", "", "nil value")
	case Value:
		return operand("literal", "argument of 'literal'", x)
	case int:
		if int64(x) != int64(int32(x)) {
			return nil, typeErrorf("literal", "", "integer %d overflows int32", x)
		}
		return Int(x).Expression(), nil
	case int32:
		return Int(x).Expression(), nil
	case float32:
		return operand("literal", "argument of 'literal'", Float(x))
	case float64:
		return operand("literal", "argument of 'literal'", Float(x))
	case [2]float32:
		return operand("literal", "argument of 'literal'", Vec2(x))
	case [3]float32:
		return operand("literal", "argument of 'literal'", Vec3(x))
	case [4]float32:
		return operand("literal", "argument of 'literal'", Vec4(x))
	case [2]int32:
		return IVec2(x).Expression(), nil
	case [3]int32:
		return IVec3(x).Expression(), nil
	case [4]int32:
		return IVec4(x).Expression(), nil
	default:
		return nil, typeErrorf("literal", "", "cannot promote %T to an expression", v)
	}
}

// operand converts a builder argument to an expression and rejects values
// that cannot appear in shader source.
func operand(op, side string, v Value) (*Expression, error) {
	if v == nil {
		return nil, typeErrorf(op, side, "missing operand")
	}
	e := v.Expression()
	if e == nil || e.Kind == nil {
		return nil, typeErrorf(op, side, "missing operand")
	}
	if err := checkFinite(op, side, e); err != nil {
		return nil, err
	}
	return e, nil
}

// checkFinite rejects NaN and infinite float literals at the top of a
// freshly promoted literal. Deeper nodes were checked when they were built.
func checkFinite(op, side string, e *Expression) error {
	switch kind := e.Kind.(type) {
	case LiteralF32:
		f := float32(kind)
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return typeErrorf(op, side, "non-finite float literal %v", f)
		}
	case ExprCompose:
		for i, c := range kind.Components {
			if err := checkFinite(op, fmt.Sprintf("component %d of %s", i, side), c); err != nil {
				return err
			}
		}
	}
	return nil
}
