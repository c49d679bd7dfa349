package ir

// ShaderStage represents a shader stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Module is the fully linked description of one shader stage, ready to be
// handed to a backend.
type Module struct {
	// Stage is the stage the module describes.
	Stage ShaderStage

	// Inputs are the stage inputs in declaration order.
	Inputs []Binding

	// Outputs are the user outputs in declaration order.
	Outputs []Binding

	// Uniforms are the uniform parameters in declaration order.
	Uniforms []Uniform

	// Builtin is the expression assigned to the stage's built-in output:
	// the vertex position or the fragment color.
	Builtin *Expression

	// Assignments assign expressions to user outputs, in output order.
	Assignments []Assignment
}

// Binding is a named, typed value at an explicit location.
type Binding struct {
	Name     string
	Type     ValueType
	Location int
}

// Uniform is a named, typed uniform parameter.
type Uniform struct {
	Name string
	Type ValueType
}

// Assignment assigns an expression to the user output with the given name.
type Assignment struct {
	Output string
	Value  *Expression
}
