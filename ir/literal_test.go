package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  ValueType
	}{
		{"int", 3, TypeInt},
		{"int32", int32(-7), TypeInt},
		{"float32", float32(0.5), TypeFloat},
		{"float64", 2.5, TypeFloat},
		{"vec2 array", [2]float32{1, 2}, TypeVec2},
		{"vec3 array", [3]float32{1, 2, 3}, TypeVec3},
		{"vec4 array", [4]float32{1, 2, 3, 4}, TypeVec4},
		{"ivec3 array", [3]int32{1, 2, 3}, TypeVec3},
		{"wrapper", Vec4{0, 0, 0, 1}, TypeVec4},
		{"expression", NewInput("uv", TypeVec2), TypeVec2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Literal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Type())
		})
	}
}

func TestLiteralErrors(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"string", "1.0"},
		{"overflow", math.MaxInt32 + 1},
		{"bool", true},
		{"nan", float32(math.NaN())},
		{"inf", math.Inf(1)},
		{"nan component", [3]float32{0, float32(math.Inf(-1)), 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Literal(tt.value)
			require.Error(t, err)
			var typeErr *TypeError
			assert.True(t, errors.As(err, &typeErr))
			assert.Equal(t, "literal", typeErr.Op)
		})
	}
}

func TestLiteralWrappers(t *testing.T) {
	assert.Equal(t, LiteralI32(4), Int(4).Expression().Kind)
	assert.Equal(t, LiteralF32(0.25), Float(0.25).Expression().Kind)

	v := Vec3{1, 2, 3}.Expression()
	compose, ok := v.Kind.(ExprCompose)
	require.True(t, ok)
	require.Len(t, compose.Components, 3)
	assert.Equal(t, LiteralF32(2), compose.Components[1].Kind)

	iv := IVec2{5, 6}.Expression()
	assert.Equal(t, TypeVec2, iv.Type())
	assert.Equal(t, LiteralI32(6), iv.Kind.(ExprCompose).Components[1].Kind)
}

func TestNonFiniteOperand(t *testing.T) {
	_, err := Add(NewInput("x", TypeFloat), Float(float32(math.NaN())))
	require.Error(t, err)
	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "right side of 'add'", typeErr.Side)
}
