package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModule() *Module {
	color := NewInput("Color", TypeVec4)
	return &Module{
		Stage: StageVertex,
		Inputs: []Binding{
			{Name: "Position", Type: TypeVec3, Location: 0},
			{Name: "Color", Type: TypeVec4, Location: 1},
		},
		Outputs:     []Binding{{Name: "Color", Type: TypeVec4, Location: 0}},
		Uniforms:    []Uniform{{Name: "tex", Type: TypeSampler2D}},
		Builtin:     &Expression{Kind: ExprAppend{Left: NewInput("Position", TypeVec3), Right: Float(1).Expression()}},
		Assignments: []Assignment{{Output: "Color", Value: color}},
	}
}

func messages(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

func TestValidateValid(t *testing.T) {
	errs, err := Validate(validModule())
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidateNil(t *testing.T) {
	_, err := Validate(nil)
	assert.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(m *Module)
		want   string
	}{
		{
			name:   "missing vertex position",
			modify: func(m *Module) { m.Builtin = nil },
			want:   "vertex position not set",
		},
		{
			name: "missing fragment color",
			modify: func(m *Module) {
				m.Stage = StageFragment
				m.Builtin = nil
			},
			want: "fragment color not set",
		},
		{
			name:   "builtin not vec4",
			modify: func(m *Module) { m.Builtin = NewInput("Position", TypeVec3) },
			want:   "vertex position must be Vec4, found Vec3",
		},
		{
			name: "duplicate input",
			modify: func(m *Module) {
				m.Inputs = append(m.Inputs, Binding{Name: "Color", Type: TypeVec4, Location: 2})
			},
			want: `duplicate input "Color"`,
		},
		{
			name: "overlapping locations",
			modify: func(m *Module) {
				m.Inputs = append(m.Inputs, Binding{Name: "Bones", Type: TypeMat4, Location: 2},
					Binding{Name: "Weight", Type: TypeFloat, Location: 4})
			},
			want: `input "Weight" overlaps location 4 of input "Bones"`,
		},
		{
			name: "sampler output",
			modify: func(m *Module) {
				m.Outputs = append(m.Outputs, Binding{Name: "Tex", Type: TypeSampler2D, Location: 1})
			},
			want: `output "Tex" has type Sampler2D, which cannot cross a stage interface`,
		},
		{
			name: "region collision",
			modify: func(m *Module) {
				m.Uniforms = append(m.Uniforms, Uniform{Name: "tex_max", Type: TypeVec3})
			},
			want: `uniform "tex_max" collides with a region uniform of sampler "tex"`,
		},
		{
			name: "undeclared input",
			modify: func(m *Module) {
				m.Assignments[0].Value = NewInput("Tint", TypeVec4)
			},
			want: `reference to undeclared input "Tint"`,
		},
		{
			name: "undeclared uniform",
			modify: func(m *Module) {
				m.Assignments[0].Value = NewUniform("tint", TypeVec4)
			},
			want: `reference to undeclared uniform "tint"`,
		},
		{
			name: "input type mismatch",
			modify: func(m *Module) {
				m.Assignments[0].Value = &Expression{Kind: ExprAppend{Left: NewInput("Color", TypeVec3), Right: Float(1).Expression()}}
			},
			want: `input "Color" referenced as Vec3, declared as Vec4`,
		},
		{
			name: "assignment type mismatch",
			modify: func(m *Module) {
				m.Assignments[0].Value = NewInput("Position", TypeVec3)
			},
			want: "expression of type Vec3 assigned to output of type Vec4",
		},
		{
			name: "undeclared output",
			modify: func(m *Module) {
				m.Assignments = append(m.Assignments, Assignment{Output: "Normal", Value: NewInput("Position", TypeVec3)})
			},
			want: `assignment to undeclared output "Normal"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validModule()
			tt.modify(m)
			errs, err := Validate(m)
			require.NoError(t, err)
			assert.Contains(t, messages(errs), tt.want)
		})
	}
}

func TestValidationErrorString(t *testing.T) {
	assert.Equal(t, "in fragment stage: fragment color not set",
		ValidationError{Message: "fragment color not set", Stage: StageFragment}.Error())
	assert.Equal(t, `in vertex stage, output Color: reference to undeclared input "Tint"`,
		ValidationError{Message: `reference to undeclared input "Tint"`, Stage: StageVertex, Output: "Color"}.Error())
	assert.Equal(t, "unknown", ShaderStage(7).String())
}
