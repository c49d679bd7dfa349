package shader

import (
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/ir"
)

// Input is a named, typed stage input at an explicit location.
type Input struct {
	Name     string
	Type     ir.ValueType
	Location int
}

// Inputs is the read-only input set of a stage.
type Inputs struct {
	inputs []Input
	byName map[string]int
}

// NewInputs returns an input set. The set must not be empty, names must be
// unique identifiers and types must be able to cross a stage interface.
func NewInputs(inputs []Input) (*Inputs, error) {
	if len(inputs) == 0 {
		return nil, newError(ErrEmptyInputs, "", "input set is empty")
	}
	in := &Inputs{
		inputs: make([]Input, 0, len(inputs)),
		byName: make(map[string]int, len(inputs)),
	}
	for _, input := range inputs {
		if !glsl.IsIdentifier(input.Name) {
			return nil, newError(ErrInvalidName, input.Name, "input name is not an identifier")
		}
		if _, dup := in.byName[input.Name]; dup {
			return nil, newError(ErrDuplicateName, input.Name, "duplicate input")
		}
		if !input.Type.IsVectorOrScalar() && input.Type != ir.TypeMat4 {
			return nil, newError(ErrTypeConflict, input.Name, "input cannot have type %s", input.Type)
		}
		if input.Location < 0 {
			return nil, newError(ErrInvalidLayout, input.Name, "negative location %d", input.Location)
		}
		in.byName[input.Name] = len(in.inputs)
		in.inputs = append(in.inputs, input)
	}
	return in, nil
}

// InputsFromLayout returns the vertex stage inputs of a layout, with
// locations assigned in attribute order.
func InputsFromLayout(layout *Layout) (*Inputs, error) {
	if layout == nil {
		return nil, newError(ErrEmptyInputs, "", "layout is nil")
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	inputs := make([]Input, 0, layout.Len())
	location := 0
	for _, a := range layout.attributes {
		inputs = append(inputs, Input{Name: a.Name, Type: a.Type, Location: location})
		location += a.Type.LocationCount()
	}
	return NewInputs(inputs)
}

// InputsFromOutputs links a stage to the previous one: each output becomes
// an input of the same name and type. Locations are renumbered sequentially,
// which reproduces the locations of a vertex stage's outputs.
func InputsFromOutputs(outputs *Outputs) (*Inputs, error) {
	if outputs == nil {
		return nil, newError(ErrEmptyInputs, "", "outputs are nil")
	}
	all := outputs.All()
	inputs := make([]Input, 0, len(all))
	location := 0
	for _, out := range all {
		inputs = append(inputs, Input{Name: out.Name, Type: out.Type, Location: location})
		location += out.Type.LocationCount()
	}
	return NewInputs(inputs)
}

// Input returns the input with the given name.
func (in *Inputs) Input(name string) (Input, bool) {
	i, ok := in.byName[name]
	if !ok {
		return Input{}, false
	}
	return in.inputs[i], true
}

// Get returns an expression reading the named input.
func (in *Inputs) Get(name string) (*ir.Expression, error) {
	input, ok := in.Input(name)
	if !ok {
		return nil, newError(ErrMissingName, name, "no such input")
	}
	return ir.NewInput(input.Name, input.Type), nil
}

// All returns the inputs in declaration order.
func (in *Inputs) All() []Input {
	return append([]Input(nil), in.inputs...)
}

// Len returns the number of inputs.
func (in *Inputs) Len() int {
	return len(in.inputs)
}

// Bindings returns the inputs as stage module bindings.
func (in *Inputs) Bindings() []ir.Binding {
	bindings := make([]ir.Binding, len(in.inputs))
	for i, input := range in.inputs {
		bindings[i] = ir.Binding{Name: input.Name, Type: input.Type, Location: input.Location}
	}
	return bindings
}
