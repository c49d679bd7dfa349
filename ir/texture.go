package ir

// Region uniform suffixes. Every sampler parameter is accompanied by two Vec3
// uniforms describing the sub-rectangle (xy) and level-of-detail range (z)
// of the texture that sampling is remapped into.
const (
	RegionMinSuffix = "_min"
	RegionMaxSuffix = "_max"
)

// Texture is the capability of sampler-typed values.
// Only *Expression satisfies it; the receiver type is validated per call.
type Texture interface {
	Value
	Sample(uv, level Value) (*Expression, error)
	MinRegion() (*Expression, error)
	MaxRegion() (*Expression, error)
}

var _ Texture = (*Expression)(nil)

// Sample samples a sampler uniform at uv and an explicit level of detail.
// Both are nominal values in [0, 1] that the generated code remaps into the
// texture's region.
func Sample(texture, uv, level Value) (*Expression, error) {
	args, err := operands("sample", []string{"argument 'self'", "argument 'uv'", "argument 'level'"}, texture, uv, level)
	if err != nil {
		return nil, err
	}
	if err := ensureType("sample", "argument 'self'", args[0].Type(), TypeSampler2D); err != nil {
		return nil, err
	}
	if _, ok := args[0].IsUniform(); !ok {
		panic(Contractf("sample", "sampler must be a uniform reference, found %T", args[0].Kind))
	}
	if err := ensureType("sample", "argument 'uv'", args[1].Type(), TypeVec2); err != nil {
		return nil, err
	}
	if err := ensureType("sample", "argument 'level'", args[2].Type(), TypeFloat); err != nil {
		return nil, err
	}
	return &Expression{Kind: ExprImageSample{Image: args[0], Coordinate: args[1], Level: args[2]}}, nil
}

// MinRegion returns the region minimum uniform of a sampler uniform.
func MinRegion(texture Value) (*Expression, error) {
	return region("min_region", texture, RegionMinSuffix)
}

// MaxRegion returns the region maximum uniform of a sampler uniform.
func MaxRegion(texture Value) (*Expression, error) {
	return region("max_region", texture, RegionMaxSuffix)
}

func region(op string, texture Value, suffix string) (*Expression, error) {
	e, err := operand(op, side("argument 'self'", op), texture)
	if err != nil {
		return nil, err
	}
	u, ok := e.Kind.(ExprUniform)
	if !ok {
		panic(Contractf(op, "expected a uniform, found %T", e.Kind))
	}
	if err := ensureType(op, "argument 'self'", u.Type, TypeSampler2D); err != nil {
		return nil, err
	}
	return NewUniform(u.Name+suffix, TypeVec3), nil
}

// RegionNames returns the names of the region uniforms of a sampler.
func RegionNames(sampler string) (minName, maxName string) {
	return sampler + RegionMinSuffix, sampler + RegionMaxSuffix
}

// Sample samples the sampler e at uv and level.
func (e *Expression) Sample(uv, level Value) (*Expression, error) { return Sample(e, uv, level) }

// MinRegion returns the region minimum uniform of the sampler e.
func (e *Expression) MinRegion() (*Expression, error) { return MinRegion(e) }

// MaxRegion returns the region maximum uniform of the sampler e.
func (e *Expression) MaxRegion() (*Expression, error) { return MaxRegion(e) }
