// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shadergen/ir"
)

// renderExpression renders e inside a vertex stage declaring the inputs v
// (Vec3), s (Float) and n (Int) and the uniforms m (Mat4) and tex (Sampler2D).
func renderExpression(t *testing.T, e *ir.Expression) string {
	t.Helper()
	opts := DefaultOptions()
	w := newWriter(&ir.Module{
		Stage: ir.StageVertex,
		Inputs: []ir.Binding{
			{Name: "v", Type: ir.TypeVec3, Location: 0},
			{Name: "s", Type: ir.TypeFloat, Location: 1},
			{Name: "n", Type: ir.TypeInt, Location: 2},
		},
		Uniforms: []ir.Uniform{
			{Name: "m", Type: ir.TypeMat4},
			{Name: "tex", Type: ir.TypeSampler2D},
		},
	}, &opts)
	require.NoError(t, w.registerNames())
	s, err := w.writeExpression(e)
	require.NoError(t, err)
	return s
}

func must(t *testing.T) func(*ir.Expression, error) *ir.Expression {
	return func(e *ir.Expression, err error) *ir.Expression {
		t.Helper()
		require.NoError(t, err)
		return e
	}
}

func TestWriteExpression(t *testing.T) {
	ok := must(t)
	v := ir.NewInput("v", ir.TypeVec3)
	s := ir.NewInput("s", ir.TypeFloat)
	n := ir.NewInput("n", ir.TypeInt)
	m := ir.NewUniform("m", ir.TypeMat4)

	tests := []struct {
		name string
		expr *ir.Expression
		want string
	}{
		{"int literal", ir.Int(7).Expression(), "7"},
		{"negative int literal", ir.Int(-3).Expression(), "-3"},
		{"min int literal", ir.Int(math.MinInt32).Expression(), "(-2147483647 - 1)"},
		{"float literal", ir.Float(2).Expression(), "2.0"},
		{"fractional float literal", ir.Float(0.25).Expression(), "0.25"},
		{"small float literal", ir.Float(1e-7).Expression(), "1e-07"},
		{"vector literal", ir.Vec3{1, 0.5, 0}.Expression(), "vec3(1.0, 0.5, 0.0)"},
		{"integer vector literal", ir.IVec2{1, 2}.Expression(), "vec2(1, 2)"},
		{"input", v, "input_v"},
		{"uniform", m, "_uniform_m"},
		{"compose", ok(ir.NewVec2(ir.Int(1), s)), "vec2(1, input_s)"},
		{"append", ok(v.Append(ir.Float(1))), "vec4(input_v, 1.0)"},
		{"append scalars", ok(s.Append(s)), "vec2(input_s, input_s)"},
		{"add", ok(v.Add(ir.Float(1))), "(input_v + 1.0)"},
		{"sub", ok(s.Sub(v)), "(input_s - input_v)"},
		{"mul", ok(v.Mul(v)), "(input_v * input_v)"},
		{"div", ok(v.Div(s)), "(input_v / input_s)"},
		{"matrix mul", ok(m.Mul(ok(v.Append(ir.Float(1))))), "(_uniform_m * vec4(input_v, 1.0))"},
		{"matrix compose", ok(m.Mul(m)), "(_uniform_m * _uniform_m)"},
		{"int rem", ok(n.Rem(ir.Int(3))), "(input_n % 3)"},
		{"float rem", ok(v.Rem(ir.Float(2))), "mod(input_v, 2.0)"},
		{"float rem splat", ok(s.Rem(v)), "mod(vec3(input_s), input_v)"},
		{"neg", ok(v.Neg()), "-(input_v)"},
		{"abs", ok(n.Abs()), "abs(input_n)"},
		{"sign", ok(v.Sign()), "sign(input_v)"},
		{"floor", ok(s.Floor()), "floor(input_s)"},
		{"ceil", ok(v.Ceil()), "ceil(input_v)"},
		{"round", ok(v.Round()), "round(input_v)"},
		{"pow", ok(v.Pow(v)), "pow(input_v, input_v)"},
		{"pow splat", ok(v.Pow(ir.Float(2))), "pow(input_v, vec3(2.0))"},
		{"min", ok(v.Min(s)), "min(input_v, input_s)"},
		{"max splat", ok(s.Max(v)), "max(vec3(input_s), input_v)"},
		{"clamp", ok(v.Clamp(ir.Float(0), ir.Float(1))), "clamp(input_v, 0.0, 1.0)"},
		{"mix", ok(v.Mix(v, s)), "mix(input_v, input_v, input_s)"},
		{"dot", ok(v.Dot(v)), "dot(input_v, input_v)"},
		{"cross", ok(v.Cross(ir.Vec3{0, 1, 0})), "cross(input_v, vec3(0.0, 1.0, 0.0))"},
		{"length", ok(v.Length()), "length(input_v)"},
		{"normalize", ok(v.Normalize()), "normalize(input_v)"},
		{"nested", ok(ok(v.Add(v)).Mul(ir.Float(0.5))), "((input_v + input_v) * 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderExpression(t, tt.expr))
		})
	}
}

func TestWriteSharedExpression(t *testing.T) {
	ok := must(t)
	v := ir.NewInput("v", ir.TypeVec3)
	sum := ok(v.Add(v))
	e := ok(sum.Mul(sum))
	assert.Equal(t, "((input_v + input_v) * (input_v + input_v))", renderExpression(t, e))
}

func TestWriteImageSample(t *testing.T) {
	ok := must(t)
	tex := ir.NewUniform("tex", ir.TypeSampler2D)
	uv := ok(ir.NewInput("v", ir.TypeVec3).Dot(ir.Vec3{1, 1, 1}))
	e := ok(tex.Sample(ok(uv.Append(uv)), ir.NewInput("s", ir.TypeFloat)))

	want := "textureLod(_uniform_tex, _uniform_tex_min.xy + (_uniform_tex_max.xy - _uniform_tex_min.xy) * " +
		"vec2(dot(input_v, vec3(1.0, 1.0, 1.0)), dot(input_v, vec3(1.0, 1.0, 1.0))), " +
		"floor(_uniform_tex_min.z + (_uniform_tex_max.z - _uniform_tex_min.z) * input_s))"
	assert.Equal(t, want, renderExpression(t, e))

	region := ok(tex.MaxRegion())
	assert.Equal(t, "_uniform_tex_max", renderExpression(t, region))
}

func TestWriteExpressionErrors(t *testing.T) {
	opts := DefaultOptions()
	w := newWriter(&ir.Module{Stage: ir.StageVertex}, &opts)
	require.NoError(t, w.registerNames())

	tests := []struct {
		name string
		expr *ir.Expression
	}{
		{"nil", nil},
		{"undeclared input", ir.NewInput("missing", ir.TypeFloat)},
		{"undeclared uniform", ir.NewUniform("missing", ir.TypeFloat)},
		{"non-finite literal", &ir.Expression{Kind: ir.LiteralF32(float32(math.Inf(1)))}},
		{"short compose", &ir.Expression{Kind: ir.ExprCompose{Components: []*ir.Expression{ir.Float(1).Expression()}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.writeExpression(tt.expr)
			assert.Error(t, err)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-1, "-1.0"},
		{0.5, "0.5"},
		{1e10, "1e+10"},
		{123.25, "123.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in))
	}
}
