package shader

import (
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/ir"
)

// Built-in parameter names. The resource layer binds the current model, view
// and projection matrices to these uniforms.
const (
	ModelMatrixName      = "builtin_model_matrix"
	ViewMatrixName       = "builtin_view_matrix"
	ProjectionMatrixName = "builtin_projection_matrix"
)

// Parameter is a named, typed uniform parameter.
type Parameter struct {
	Name string
	Type ir.ValueType
}

// Expression returns an expression reading the parameter.
func (p Parameter) Expression() *ir.Expression {
	return ir.NewUniform(p.Name, p.Type)
}

// Parameters is the uniform parameter registry of a stage. Parameters are
// created on first request and keep their type for the lifetime of the
// registry.
type Parameters struct {
	params []Parameter
	byName map[string]int
}

// NewParameters returns an empty registry.
func NewParameters() *Parameters {
	return &Parameters{byName: make(map[string]int)}
}

// Get returns an expression reading the named parameter, creating the
// parameter on first request. Repeated requests return equivalent
// expressions. It panics with *ir.ContractViolation when name is not an
// identifier or was first requested with another type.
func (p *Parameters) Get(name string, typ ir.ValueType) *ir.Expression {
	if i, ok := p.byName[name]; ok {
		existing := p.params[i]
		if existing.Type != typ {
			panic(ir.Contractf("parameter", "parameter %q was previously requested as %s, now requested as %s",
				name, existing.Type, typ))
		}
		return existing.Expression()
	}
	if !glsl.IsIdentifier(name) {
		panic(ir.Contractf("parameter", "parameter name %q is not an identifier", name))
	}
	param := Parameter{Name: name, Type: typ}
	p.byName[name] = len(p.params)
	p.params = append(p.params, param)
	return param.Expression()
}

// Int returns the named Int parameter.
func (p *Parameters) Int(name string) *ir.Expression { return p.Get(name, ir.TypeInt) }

// Float returns the named Float parameter.
func (p *Parameters) Float(name string) *ir.Expression { return p.Get(name, ir.TypeFloat) }

// Vec2 returns the named Vec2 parameter.
func (p *Parameters) Vec2(name string) *ir.Expression { return p.Get(name, ir.TypeVec2) }

// Vec3 returns the named Vec3 parameter.
func (p *Parameters) Vec3(name string) *ir.Expression { return p.Get(name, ir.TypeVec3) }

// Vec4 returns the named Vec4 parameter.
func (p *Parameters) Vec4(name string) *ir.Expression { return p.Get(name, ir.TypeVec4) }

// Mat4 returns the named Mat4 parameter.
func (p *Parameters) Mat4(name string) *ir.Expression { return p.Get(name, ir.TypeMat4) }

// Sampler2D returns the named Sampler2D parameter.
func (p *Parameters) Sampler2D(name string) *ir.Expression { return p.Get(name, ir.TypeSampler2D) }

// ModelMatrix returns the built-in model matrix.
func (p *Parameters) ModelMatrix() *ir.Expression { return p.Mat4(ModelMatrixName) }

// ViewMatrix returns the built-in view matrix.
func (p *Parameters) ViewMatrix() *ir.Expression { return p.Mat4(ViewMatrixName) }

// ProjectionMatrix returns the built-in projection matrix.
func (p *Parameters) ProjectionMatrix() *ir.Expression { return p.Mat4(ProjectionMatrixName) }

// Parameter returns the parameter with the given name.
func (p *Parameters) Parameter(name string) (Parameter, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Parameter{}, false
	}
	return p.params[i], true
}

// All returns the parameters in request order.
func (p *Parameters) All() []Parameter {
	return append([]Parameter(nil), p.params...)
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	return len(p.params)
}

// Append merges other into p. Parameters present in both must have the same
// type; on a conflict p is left unchanged.
func (p *Parameters) Append(other *Parameters) error {
	if other == nil {
		return nil
	}
	for _, param := range other.params {
		if existing, ok := p.Parameter(param.Name); ok && existing.Type != param.Type {
			return newError(ErrTypeConflict, param.Name, "parameter has type %s in one registry and %s in the other",
				existing.Type, param.Type)
		}
	}
	for _, param := range other.params {
		if _, ok := p.byName[param.Name]; ok {
			continue
		}
		p.byName[param.Name] = len(p.params)
		p.params = append(p.params, param)
	}
	return nil
}

// Uniforms returns every uniform the stage declares: each parameter,
// followed for samplers by the Vec3 region uniforms <name>_min and
// <name>_max. A region uniform colliding with a parameter is an error.
func (p *Parameters) Uniforms() ([]Parameter, error) {
	uniforms := make([]Parameter, 0, len(p.params))
	for _, param := range p.params {
		uniforms = append(uniforms, param)
		if param.Type != ir.TypeSampler2D {
			continue
		}
		minName, maxName := ir.RegionNames(param.Name)
		for _, name := range []string{minName, maxName} {
			if _, ok := p.byName[name]; ok {
				return nil, newError(ErrDuplicateName, name, "parameter collides with a region uniform of sampler %q", param.Name)
			}
			uniforms = append(uniforms, Parameter{Name: name, Type: ir.TypeVec3})
		}
	}
	return uniforms, nil
}

// Bindings returns the parameters as stage module uniforms. Region uniforms
// are implied by their samplers and not listed.
func (p *Parameters) Bindings() []ir.Uniform {
	uniforms := make([]ir.Uniform, len(p.params))
	for i, param := range p.params {
		uniforms[i] = ir.Uniform{Name: param.Name, Type: param.Type}
	}
	return uniforms
}
