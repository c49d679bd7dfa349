package shader

import (
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/ir"
)

// Output is a named, typed stage output at an explicit location, together
// with the expression assigned to it.
type Output struct {
	Name       string
	Type       ir.ValueType
	Location   int
	Expression *ir.Expression
}

// Outputs is the output set a stage callback writes to. Besides the named
// user outputs it holds the stage's built-in output: the vertex position on
// the vertex stage, the fragment color on the fragment stage.
type Outputs struct {
	stage   ir.ShaderStage
	outputs []Output
	byName  map[string]int

	// next is the location of the next output created.
	next int

	vertexPosition *ir.Expression
	fragmentColor  *ir.Expression
}

// NewOutputs returns an empty output set for the stage. On the fragment
// stage location 0 belongs to the fragment color, so user outputs start at
// location 1.
func NewOutputs(stage ir.ShaderStage) *Outputs {
	o := &Outputs{
		stage:  stage,
		byName: make(map[string]int),
	}
	if stage == ir.StageFragment {
		o.next = 1
	}
	return o
}

// Stage returns the stage the outputs belong to.
func (o *Outputs) Stage() ir.ShaderStage {
	return o.stage
}

// Set assigns value to the named output, creating the output on first use.
// A new output is placed after the locations of all outputs created before
// it. Reassigning an output must keep its type.
func (o *Outputs) Set(name string, value ir.Value) error {
	if !glsl.IsIdentifier(name) {
		return newError(ErrInvalidName, name, "output name is not an identifier")
	}
	e, err := ir.Literal(value)
	if err != nil {
		return &Error{Kind: ErrTypeConflict, Name: name, Message: "invalid output value", Err: err}
	}
	t := e.Type()

	if i, ok := o.byName[name]; ok {
		out := &o.outputs[i]
		if out.Type != t {
			return newError(ErrTypeConflict, name, "output has type %s, cannot assign %s", out.Type, t)
		}
		out.Expression = e
		return nil
	}

	if !t.IsVectorOrScalar() && (t != ir.TypeMat4 || o.stage == ir.StageFragment) {
		return newError(ErrTypeConflict, name, "%s output cannot have type %s", o.stage, t)
	}
	o.byName[name] = len(o.outputs)
	o.outputs = append(o.outputs, Output{Name: name, Type: t, Location: o.next, Expression: e})
	o.next += t.LocationCount()
	return nil
}

// SetVertexPosition assigns the clip-space vertex position.
// It panics with *ir.ContractViolation outside the vertex stage or when
// value is not a Vec4.
func (o *Outputs) SetVertexPosition(value ir.Value) {
	o.vertexPosition = o.builtin("set_vertex_position", ir.StageVertex, value)
}

// SetFragmentColor assigns the fragment color.
// It panics with *ir.ContractViolation outside the fragment stage or when
// value is not a Vec4.
func (o *Outputs) SetFragmentColor(value ir.Value) {
	o.fragmentColor = o.builtin("set_fragment_color", ir.StageFragment, value)
}

func (o *Outputs) builtin(op string, stage ir.ShaderStage, value ir.Value) *ir.Expression {
	if o.stage != stage {
		panic(ir.Contractf(op, "cannot be called on the %s stage", o.stage))
	}
	if value == nil || value.Expression() == nil {
		panic(ir.Contractf(op, "missing value"))
	}
	e := value.Expression()
	if t := e.Type(); t != ir.TypeVec4 {
		panic(ir.Contractf(op, "value must be Vec4, found %s", t))
	}
	return e
}

// VertexPosition returns the vertex position, or nil if it was never set.
func (o *Outputs) VertexPosition() *ir.Expression {
	return o.vertexPosition
}

// FragmentColor returns the fragment color, or nil if it was never set.
func (o *Outputs) FragmentColor() *ir.Expression {
	return o.fragmentColor
}

// Builtin returns the built-in output of the stage, or nil if unset.
func (o *Outputs) Builtin() *ir.Expression {
	if o.stage == ir.StageFragment {
		return o.fragmentColor
	}
	return o.vertexPosition
}

// Output returns the output with the given name.
func (o *Outputs) Output(name string) (Output, bool) {
	i, ok := o.byName[name]
	if !ok {
		return Output{}, false
	}
	return o.outputs[i], true
}

// All returns the user outputs in creation order.
func (o *Outputs) All() []Output {
	return append([]Output(nil), o.outputs...)
}

// Len returns the number of user outputs.
func (o *Outputs) Len() int {
	return len(o.outputs)
}

// Bindings returns the user outputs as stage module bindings.
func (o *Outputs) Bindings() []ir.Binding {
	bindings := make([]ir.Binding, len(o.outputs))
	for i, out := range o.outputs {
		bindings[i] = ir.Binding{Name: out.Name, Type: out.Type, Location: out.Location}
	}
	return bindings
}

// Assignments returns one assignment per user output with an expression.
func (o *Outputs) Assignments() []ir.Assignment {
	assignments := make([]ir.Assignment, 0, len(o.outputs))
	for _, out := range o.outputs {
		if out.Expression != nil {
			assignments = append(assignments, ir.Assignment{Output: out.Name, Value: out.Expression})
		}
	}
	return assignments
}
