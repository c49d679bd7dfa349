package ir

import (
	"fmt"
)

// ValidationError represents a validation error.
type ValidationError struct {
	Message string
	// Optional context
	Stage  ShaderStage
	Output string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("in %s stage, output %s: %s", e.Stage, e.Output, e.Message)
	}
	return fmt.Sprintf("in %s stage: %s", e.Stage, e.Message)
}

// Validator validates stage modules.
type Validator struct {
	module *Module
	errors []ValidationError

	inputs   map[string]Binding
	outputs  map[string]Binding
	uniforms map[string]ValueType
	visited  map[*Expression]struct{}
	output   string
}

// Validate checks that a stage module is self-consistent: names are unique,
// locations do not overlap, the built-in output is present and every
// expression references only declared inputs and uniforms.
// Returns validation errors if any, or nil if module is valid.
func Validate(module *Module) ([]ValidationError, error) {
	if module == nil {
		return nil, fmt.Errorf("module is nil")
	}

	v := &Validator{
		module:   module,
		errors:   make([]ValidationError, 0),
		inputs:   make(map[string]Binding, len(module.Inputs)),
		outputs:  make(map[string]Binding, len(module.Outputs)),
		uniforms: make(map[string]ValueType, len(module.Uniforms)),
		visited:  make(map[*Expression]struct{}),
	}

	v.ValidateModule()

	if len(v.errors) > 0 {
		return v.errors, nil
	}
	return nil, nil
}

// ValidateModule validates the complete module.
func (v *Validator) ValidateModule() {
	v.validateBindings("input", v.module.Inputs, v.inputs)
	v.validateBindings("output", v.module.Outputs, v.outputs)
	v.validateUniforms()
	v.validateBuiltin()
	v.validateAssignments()
}

func (v *Validator) validateBindings(what string, bindings []Binding, seen map[string]Binding) {
	used := make(map[int]string)
	for _, b := range bindings {
		if b.Name == "" {
			v.addError(fmt.Sprintf("%s with empty name", what))
			continue
		}
		if _, dup := seen[b.Name]; dup {
			v.addError(fmt.Sprintf("duplicate %s %q", what, b.Name))
			continue
		}
		seen[b.Name] = b
		if !b.Type.IsVectorOrScalar() && b.Type != TypeMat4 {
			v.addError(fmt.Sprintf("%s %q has type %s, which cannot cross a stage interface", what, b.Name, b.Type))
		}
		if b.Location < 0 {
			v.addError(fmt.Sprintf("%s %q has negative location %d", what, b.Name, b.Location))
			continue
		}
		for loc := b.Location; loc < b.Location+b.Type.LocationCount(); loc++ {
			if other, taken := used[loc]; taken {
				v.addError(fmt.Sprintf("%s %q overlaps location %d of %s %q", what, b.Name, loc, what, other))
				break
			}
			used[loc] = b.Name
		}
	}
}

func (v *Validator) validateUniforms() {
	for _, u := range v.module.Uniforms {
		if u.Name == "" {
			v.addError("uniform with empty name")
			continue
		}
		if _, dup := v.uniforms[u.Name]; dup {
			v.addError(fmt.Sprintf("duplicate uniform %q", u.Name))
			continue
		}
		v.uniforms[u.Name] = u.Type
	}
	// Region uniforms are synthesized for every sampler and may not collide
	// with declared parameters.
	for _, u := range v.module.Uniforms {
		if u.Type != TypeSampler2D {
			continue
		}
		minName, maxName := RegionNames(u.Name)
		for _, name := range []string{minName, maxName} {
			if _, dup := v.uniforms[name]; dup {
				v.addError(fmt.Sprintf("uniform %q collides with a region uniform of sampler %q", name, u.Name))
				continue
			}
			v.uniforms[name] = TypeVec3
		}
	}
}

func (v *Validator) validateBuiltin() {
	name := "vertex position"
	if v.module.Stage == StageFragment {
		name = "fragment color"
	}
	if v.module.Builtin == nil {
		v.addError(name + " not set")
		return
	}
	if t := v.module.Builtin.Type(); t != TypeVec4 {
		v.addError(fmt.Sprintf("%s must be Vec4, found %s", name, t))
	}
	v.output = name
	v.validateExpression(v.module.Builtin)
	v.output = ""
}

func (v *Validator) validateAssignments() {
	for _, a := range v.module.Assignments {
		out, ok := v.outputs[a.Output]
		if !ok {
			v.addError(fmt.Sprintf("assignment to undeclared output %q", a.Output))
			continue
		}
		v.output = a.Output
		if a.Value == nil {
			v.addErrorInOutput("assignment of nil expression")
			continue
		}
		if t := a.Value.Type(); t != out.Type {
			v.addErrorInOutput(fmt.Sprintf("expression of type %s assigned to output of type %s", t, out.Type))
		}
		v.validateExpression(a.Value)
	}
	v.output = ""
}

// validateExpression checks references once per shared node.
func (v *Validator) validateExpression(e *Expression) {
	if _, seen := v.visited[e]; seen {
		return
	}
	v.visited[e] = struct{}{}

	switch kind := e.Kind.(type) {
	case ExprInput:
		in, ok := v.inputs[kind.Name]
		switch {
		case !ok:
			v.addErrorInOutput(fmt.Sprintf("reference to undeclared input %q", kind.Name))
		case in.Type != kind.Type:
			v.addErrorInOutput(fmt.Sprintf("input %q referenced as %s, declared as %s", kind.Name, kind.Type, in.Type))
		}
	case ExprUniform:
		t, ok := v.uniforms[kind.Name]
		switch {
		case !ok:
			v.addErrorInOutput(fmt.Sprintf("reference to undeclared uniform %q", kind.Name))
		case t != kind.Type:
			v.addErrorInOutput(fmt.Sprintf("uniform %q referenced as %s, declared as %s", kind.Name, kind.Type, t))
		}
	case ExprCompose:
		for _, c := range kind.Components {
			v.validateExpression(c)
		}
	case ExprAppend:
		v.validateExpression(kind.Left)
		v.validateExpression(kind.Right)
	case ExprUnary:
		v.validateExpression(kind.Operand)
	case ExprBinary:
		v.validateExpression(kind.Left)
		v.validateExpression(kind.Right)
	case ExprMath:
		for _, arg := range []*Expression{kind.Arg, kind.Arg1, kind.Arg2} {
			if arg != nil {
				v.validateExpression(arg)
			}
		}
	case ExprImageSample:
		v.validateExpression(kind.Image)
		v.validateExpression(kind.Coordinate)
		v.validateExpression(kind.Level)
	}
}

func (v *Validator) addError(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message: msg,
		Stage:   v.module.Stage,
	})
}

func (v *Validator) addErrorInOutput(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message: msg,
		Stage:   v.module.Stage,
		Output:  v.output,
	})
}
