// Package shadergen generates matching vertex and fragment shaders from Go
// callbacks.
//
// A shader is described by two stage callbacks. Each receives the stage's
// read-only inputs, a uniform parameter registry and the output set to
// assign. Values are combined through the typed builders of the ir package,
// which check operand types as the expression tree is built. The generator
// links the stages, deriving the fragment inputs from the vertex outputs,
// and renders both through the glsl backend:
//
//	program, err := shadergen.Generate(shader.DefaultLayout(),
//	    func(in *shader.Inputs, params *shader.Parameters, out *shader.Outputs) error {
//	        pos, err := in.Get("Position")
//	        if err != nil {
//	            return err
//	        }
//	        clip, err := pos.Append(ir.Float(1))
//	        if err != nil {
//	            return err
//	        }
//	        out.SetVertexPosition(clip)
//	        color, err := in.Get("Color")
//	        if err != nil {
//	            return err
//	        }
//	        return out.Set("Color", color)
//	    },
//	    func(in *shader.Inputs, params *shader.Parameters, out *shader.Outputs) error {
//	        color, err := in.Get("Color")
//	        if err != nil {
//	            return err
//	        }
//	        out.SetFragmentColor(color)
//	        return nil
//	    })
//
// Data errors, from a mistyped operand to a name clash, are returned as
// *Error. Misuse of the authoring API panics with *ir.ContractViolation and
// is never recovered by the generator.
package shadergen

import (
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/shader"
)

// StageFunc describes one shader stage. It reads inputs, requests uniform
// parameters and assigns outputs. Any error it returns aborts generation.
type StageFunc func(inputs *shader.Inputs, params *shader.Parameters, outputs *shader.Outputs) error

// Options configures shader generation.
type Options struct {
	// GLSL configures the backend both stages are rendered with.
	GLSL glsl.Options

	// Logger receives generation diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		GLSL: glsl.DefaultOptions(),
	}
}

// Program is a generated vertex/fragment shader pair.
type Program struct {
	// VertexSource is the rendered vertex stage.
	VertexSource string

	// VertexParameters are the uniform parameters the vertex stage requested.
	VertexParameters *shader.Parameters

	// VertexInfo maps vertex stage names to the identifiers in VertexSource.
	VertexInfo glsl.TranslationInfo

	// FragmentSource is the rendered fragment stage.
	FragmentSource string

	// FragmentParameters are the uniform parameters the fragment stage
	// requested.
	FragmentParameters *shader.Parameters

	// FragmentInfo maps fragment stage names to the identifiers in
	// FragmentSource.
	FragmentInfo glsl.TranslationInfo

	// BufferLayout describes the vertex buffer the vertex stage reads.
	BufferLayout gputypes.VertexBufferLayout
}

// Parameters returns the uniform parameters of both stages, vertex stage
// parameters first. A name requested with different types by the two stages
// is an error.
func (p *Program) Parameters() (*shader.Parameters, error) {
	return MergeParameters(p.VertexParameters, p.FragmentParameters)
}

// MergeParameters merges parameter registries into a new one, keeping the
// first occurrence of each name. The inputs are not modified.
func MergeParameters(sets ...*shader.Parameters) (*shader.Parameters, error) {
	merged := shader.NewParameters()
	for _, set := range sets {
		if err := merged.Append(set); err != nil {
			return nil, &Error{Kind: ErrParameterConflict, Message: "cannot merge stage parameters", Err: err}
		}
	}
	return merged, nil
}

// Generate generates a shader pair reading vertex data laid out as layout,
// using default options.
func Generate(layout *shader.Layout, vertex, fragment StageFunc) (*Program, error) {
	return GenerateWithOptions(layout, vertex, fragment, DefaultOptions())
}

// GenerateWithOptions generates a shader pair with custom options.
//
// The generation pipeline is:
//  1. Derive the vertex inputs from the layout
//  2. Run the vertex callback and require the vertex position
//  3. Derive the fragment inputs from the vertex outputs
//  4. Run the fragment callback and require the fragment color
//  5. Render both stages
func GenerateWithOptions(layout *shader.Layout, vertex, fragment StageFunc, opts Options) (*Program, error) {
	if vertex == nil || fragment == nil {
		panic(ir.Contractf("generate", "stage functions must not be nil"))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	vertexInputs, err := shader.InputsFromLayout(layout)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidLayout, Stage: ir.StageVertex.String(), Message: "cannot derive vertex inputs", Err: err}
	}
	bufferLayout, err := layout.BufferLayout()
	if err != nil {
		return nil, &Error{Kind: ErrInvalidLayout, Stage: ir.StageVertex.String(), Message: "cannot derive vertex buffer layout", Err: err}
	}

	vs, err := runStage(ir.StageVertex, vertex, vertexInputs)
	if err != nil {
		return nil, err
	}

	fragmentInputs, err := shader.InputsFromOutputs(vs.outputs)
	if err != nil {
		return nil, &Error{Kind: ErrInterfaceLink, Stage: ir.StageFragment.String(), Message: "cannot derive fragment inputs from vertex outputs", Err: err}
	}

	fs, err := runStage(ir.StageFragment, fragment, fragmentInputs)
	if err != nil {
		return nil, err
	}

	program := &Program{
		VertexParameters:   vs.params,
		FragmentParameters: fs.params,
		BufferLayout:       bufferLayout,
	}
	if program.VertexSource, program.VertexInfo, err = vs.render(opts.GLSL, logger); err != nil {
		return nil, err
	}
	if program.FragmentSource, program.FragmentInfo, err = fs.render(opts.GLSL, logger); err != nil {
		return nil, err
	}
	return program, nil
}

// stage is the state a stage callback left behind.
type stage struct {
	stage   ir.ShaderStage
	inputs  *shader.Inputs
	params  *shader.Parameters
	outputs *shader.Outputs
}

func runStage(s ir.ShaderStage, fn StageFunc, inputs *shader.Inputs) (*stage, error) {
	st := &stage{
		stage:   s,
		inputs:  inputs,
		params:  shader.NewParameters(),
		outputs: shader.NewOutputs(s),
	}
	if err := fn(st.inputs, st.params, st.outputs); err != nil {
		return nil, &Error{Kind: ErrCallback, Stage: s.String(), Err: err}
	}
	if st.outputs.Builtin() == nil {
		msg := "vertex position not set"
		if s == ir.StageFragment {
			msg = "fragment color not set"
		}
		return nil, &Error{Kind: ErrMissingBuiltin, Stage: s.String(), Message: msg}
	}
	return st, nil
}

func (st *stage) module() (*ir.Module, error) {
	if _, err := st.params.Uniforms(); err != nil {
		return nil, &Error{Kind: ErrParameterConflict, Stage: st.stage.String(), Err: err}
	}
	return &ir.Module{
		Stage:       st.stage,
		Inputs:      st.inputs.Bindings(),
		Outputs:     st.outputs.Bindings(),
		Uniforms:    st.params.Bindings(),
		Builtin:     st.outputs.Builtin(),
		Assignments: st.outputs.Assignments(),
	}, nil
}

func (st *stage) render(options glsl.Options, logger *slog.Logger) (string, glsl.TranslationInfo, error) {
	module, err := st.module()
	if err != nil {
		return "", glsl.TranslationInfo{}, err
	}
	source, info, err := glsl.Compile(module, options)
	if err != nil {
		return "", glsl.TranslationInfo{}, &Error{Kind: ErrRender, Stage: st.stage.String(), Err: err}
	}
	logger.Debug("generated stage",
		"stage", st.stage,
		"inputs", len(module.Inputs),
		"outputs", len(module.Outputs),
		"uniforms", len(module.Uniforms),
		"bytes", len(source))
	return source, info, nil
}
