package shader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shadergen/ir"
)

func TestOutputsSetLocations(t *testing.T) {
	tests := []struct {
		stage ir.ShaderStage
		wide  ir.ValueType
		want  []int
	}{
		{ir.StageVertex, ir.TypeMat4, []int{0, 1, 5}},
		{ir.StageFragment, ir.TypeVec4, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			o := NewOutputs(tt.stage)
			require.NoError(t, o.Set("a", ir.Float(1)))
			require.NoError(t, o.Set("m", ir.NewUniform("m", tt.wide)))
			require.NoError(t, o.Set("b", ir.Vec3{1, 2, 3}))

			var got []int
			for _, out := range o.All() {
				got = append(got, out.Location)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.stage, o.Stage())
		})
	}
}

func TestOutputsSetUpdates(t *testing.T) {
	o := NewOutputs(ir.StageVertex)
	require.NoError(t, o.Set("Color", ir.Vec4{1, 0, 0, 1}))
	require.NoError(t, o.Set("Other", ir.Float(0)))

	replacement := ir.NewInput("Color", ir.TypeVec4)
	require.NoError(t, o.Set("Color", replacement))

	out, ok := o.Output("Color")
	require.True(t, ok)
	assert.Same(t, replacement, out.Expression)
	assert.Equal(t, 0, out.Location)
	assert.Equal(t, 2, o.Len())

	err := o.Set("Color", ir.Float(1))
	requireKind(t, err, ErrTypeConflict)
}

func TestOutputsSetErrors(t *testing.T) {
	o := NewOutputs(ir.StageVertex)

	requireKind(t, o.Set("bad name", ir.Float(1)), ErrInvalidName)
	requireKind(t, o.Set("tex", ir.NewUniform("tex", ir.TypeSampler2D)), ErrTypeConflict)
	requireKind(t, o.Set("missing", nil), ErrTypeConflict)

	err := o.Set("nan", ir.Float(float32(math.NaN())))
	requireKind(t, err, ErrTypeConflict)
	var typeErr *ir.TypeError
	assert.ErrorAs(t, err, &typeErr)

	assert.Equal(t, 0, o.Len())
}

func TestOutputsFragmentMatrix(t *testing.T) {
	m := ir.NewUniform("m", ir.TypeMat4)

	fragment := NewOutputs(ir.StageFragment)
	err := fragment.Set("M", m)
	requireKind(t, err, ErrTypeConflict)
	assert.Contains(t, err.Error(), "fragment output cannot have type Mat4")
	assert.Equal(t, 0, fragment.Len())

	vertex := NewOutputs(ir.StageVertex)
	require.NoError(t, vertex.Set("M", m))
}

func TestOutputsBuiltins(t *testing.T) {
	clip := ir.Vec4{0, 0, 0, 1}.Expression()

	vertex := NewOutputs(ir.StageVertex)
	assert.Nil(t, vertex.VertexPosition())
	vertex.SetVertexPosition(clip)
	assert.Same(t, clip, vertex.VertexPosition())
	assert.Same(t, clip, vertex.Builtin())
	assert.Nil(t, vertex.FragmentColor())

	fragment := NewOutputs(ir.StageFragment)
	fragment.SetFragmentColor(clip)
	assert.Same(t, clip, fragment.FragmentColor())
	assert.Same(t, clip, fragment.Builtin())
}

func TestOutputsBuiltinContract(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"vertex position on fragment stage", func() { NewOutputs(ir.StageFragment).SetVertexPosition(ir.Vec4{}) }},
		{"fragment color on vertex stage", func() { NewOutputs(ir.StageVertex).SetFragmentColor(ir.Vec4{}) }},
		{"vertex position not Vec4", func() { NewOutputs(ir.StageVertex).SetVertexPosition(ir.Vec3{}) }},
		{"fragment color not Vec4", func() { NewOutputs(ir.StageFragment).SetFragmentColor(ir.Float(1)) }},
		{"nil value", func() { NewOutputs(ir.StageVertex).SetVertexPosition(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				_, ok := r.(*ir.ContractViolation)
				assert.True(t, ok, "expected *ir.ContractViolation, got %T", r)
			}()
			tt.call()
		})
	}
}

func TestOutputsBindingsAndAssignments(t *testing.T) {
	o := NewOutputs(ir.StageFragment)
	color := ir.NewInput("Color", ir.TypeVec4)
	require.NoError(t, o.Set("Bright", color))

	assert.Equal(t, []ir.Binding{{Name: "Bright", Type: ir.TypeVec4, Location: 1}}, o.Bindings())
	assert.Equal(t, []ir.Assignment{{Output: "Bright", Value: color}}, o.Assignments())
}
