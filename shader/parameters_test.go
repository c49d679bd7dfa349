package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shadergen/ir"
)

func TestParametersGet(t *testing.T) {
	p := NewParameters()
	first := p.Vec4("tint")
	second := p.Get("tint", ir.TypeVec4)

	assert.Equal(t, first.Kind, second.Kind)
	assert.Equal(t, 1, p.Len())

	param, ok := p.Parameter("tint")
	require.True(t, ok)
	assert.Equal(t, Parameter{Name: "tint", Type: ir.TypeVec4}, param)

	_, ok = p.Parameter("missing")
	assert.False(t, ok)
}

func TestParametersTypedHelpers(t *testing.T) {
	p := NewParameters()
	tests := []struct {
		expr *ir.Expression
		want ir.ValueType
	}{
		{p.Int("i"), ir.TypeInt},
		{p.Float("f"), ir.TypeFloat},
		{p.Vec2("v2"), ir.TypeVec2},
		{p.Vec3("v3"), ir.TypeVec3},
		{p.Vec4("v4"), ir.TypeVec4},
		{p.Mat4("m"), ir.TypeMat4},
		{p.Sampler2D("tex"), ir.TypeSampler2D},
		{p.ModelMatrix(), ir.TypeMat4},
		{p.ViewMatrix(), ir.TypeMat4},
		{p.ProjectionMatrix(), ir.TypeMat4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.expr.Type())
	}

	names := make([]string, 0, p.Len())
	for _, param := range p.All() {
		names = append(names, param.Name)
	}
	assert.Equal(t, []string{
		"i", "f", "v2", "v3", "v4", "m", "tex",
		"builtin_model_matrix", "builtin_view_matrix", "builtin_projection_matrix",
	}, names)
}

func TestParametersGetContract(t *testing.T) {
	tests := []struct {
		name string
		call func(p *Parameters)
	}{
		{"type mismatch", func(p *Parameters) { p.Float("x"); p.Vec2("x") }},
		{"builtin mismatch", func(p *Parameters) { p.Float(ModelMatrixName); p.ModelMatrix() }},
		{"invalid name", func(p *Parameters) { p.Float("not valid") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				_, ok := r.(*ir.ContractViolation)
				assert.True(t, ok, "expected *ir.ContractViolation, got %T", r)
			}()
			tt.call(NewParameters())
		})
	}
}

func TestParametersAppend(t *testing.T) {
	vertex := NewParameters()
	vertex.ModelMatrix()
	vertex.Float("time")

	fragment := NewParameters()
	fragment.Float("time")
	fragment.Sampler2D("tex")

	require.NoError(t, vertex.Append(fragment))
	assert.Equal(t, []Parameter{
		{Name: ModelMatrixName, Type: ir.TypeMat4},
		{Name: "time", Type: ir.TypeFloat},
		{Name: "tex", Type: ir.TypeSampler2D},
	}, vertex.All())

	require.NoError(t, vertex.Append(nil))

	conflict := NewParameters()
	conflict.Vec2("extra")
	conflict.Vec3("time")
	err := vertex.Append(conflict)
	requireKind(t, err, ErrTypeConflict)
	assert.Equal(t, 3, vertex.Len(), "a failed merge leaves the registry unchanged")
}

func TestParametersUniforms(t *testing.T) {
	p := NewParameters()
	p.Sampler2D("font_texture")
	p.Vec4("tint")

	uniforms, err := p.Uniforms()
	require.NoError(t, err)
	assert.Equal(t, []Parameter{
		{Name: "font_texture", Type: ir.TypeSampler2D},
		{Name: "font_texture_min", Type: ir.TypeVec3},
		{Name: "font_texture_max", Type: ir.TypeVec3},
		{Name: "tint", Type: ir.TypeVec4},
	}, uniforms)

	assert.Equal(t, []ir.Uniform{
		{Name: "font_texture", Type: ir.TypeSampler2D},
		{Name: "tint", Type: ir.TypeVec4},
	}, p.Bindings())

	p.Vec3("font_texture_max")
	_, err = p.Uniforms()
	requireKind(t, err, ErrDuplicateName)
}

func TestParameterExpression(t *testing.T) {
	param := Parameter{Name: "tex", Type: ir.TypeSampler2D}
	region, err := ir.MinRegion(param)
	require.NoError(t, err)
	assert.Equal(t, ir.ExprUniform{Name: "tex_min", Type: ir.TypeVec3}, region.Kind)
}
