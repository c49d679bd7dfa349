package shader

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/ir"
)

// Attribute is one slot of an interleaved vertex.
type Attribute struct {
	Name string
	Type ir.ValueType
}

// Standard vertex attributes.
var (
	Position = Attribute{Name: "Position", Type: ir.TypeVec3}
	Normal   = Attribute{Name: "Normal", Type: ir.TypeVec3}
	Color    = Attribute{Name: "Color", Type: ir.TypeVec4}
	TexCoord = Attribute{Name: "TexCoord", Type: ir.TypeVec2}
)

// Layout is the ordered attribute layout of interleaved vertex data.
// A Layout is immutable; With returns an extended copy.
type Layout struct {
	attributes []Attribute
}

// NewLayout returns a layout with the given attributes in order.
func NewLayout(attributes ...Attribute) *Layout {
	return &Layout{attributes: append([]Attribute(nil), attributes...)}
}

// DefaultLayout returns the layout of the standard vertex:
// Position, Normal, Color and TexCoord.
func DefaultLayout() *Layout {
	return NewLayout(Position, Normal, Color, TexCoord)
}

// With returns a copy of the layout with one more attribute appended.
func (l *Layout) With(name string, typ ir.ValueType) *Layout {
	attributes := make([]Attribute, len(l.attributes), len(l.attributes)+1)
	copy(attributes, l.attributes)
	return &Layout{attributes: append(attributes, Attribute{Name: name, Type: typ})}
}

// Attributes returns the attributes in order.
func (l *Layout) Attributes() []Attribute {
	return append([]Attribute(nil), l.attributes...)
}

// Len returns the number of attributes.
func (l *Layout) Len() int {
	return len(l.attributes)
}

// Validate checks that the layout is non-empty, that names are unique
// identifiers and that every attribute can be read from a vertex buffer.
func (l *Layout) Validate() error {
	if len(l.attributes) == 0 {
		return newError(ErrEmptyInputs, "", "layout has no attributes")
	}
	seen := make(map[string]struct{}, len(l.attributes))
	for _, a := range l.attributes {
		if !glsl.IsIdentifier(a.Name) {
			return newError(ErrInvalidName, a.Name, "attribute name is not an identifier")
		}
		if _, dup := seen[a.Name]; dup {
			return newError(ErrDuplicateName, a.Name, "duplicate attribute")
		}
		seen[a.Name] = struct{}{}
		if componentCount(a.Type) == 0 {
			return newError(ErrInvalidLayout, a.Name, "attribute type %s cannot be read from a vertex buffer", a.Type)
		}
	}
	return nil
}

// componentCount returns the number of 32-bit components of an attribute
// type, or 0 for types that cannot be vertex attributes.
func componentCount(t ir.ValueType) int {
	if t == ir.TypeMat4 {
		return 16
	}
	if n, ok := t.ComponentCount(); ok {
		return n
	}
	return 0
}

// ComponentStride returns the number of 32-bit components per vertex.
func (l *Layout) ComponentStride() int {
	stride := 0
	for _, a := range l.attributes {
		stride += componentCount(a.Type)
	}
	return stride
}

// ByteStride returns the size of one vertex in bytes.
func (l *Layout) ByteStride() int {
	return l.ComponentStride() * 4
}

// ValidateData checks that data holds a whole number of vertices.
func (l *Layout) ValidateData(data []float32) error {
	_, err := l.VertexCount(data)
	return err
}

// VertexCount returns the number of vertices in data.
func (l *Layout) VertexCount(data []float32) (int, error) {
	stride := l.ComponentStride()
	if stride == 0 {
		return 0, newError(ErrInvalidLayout, "", "layout has a zero stride")
	}
	if len(data)%stride != 0 {
		return 0, newError(ErrInvalidLayout, "",
			"vertex data length %d is not a multiple of the stride %d", len(data), stride)
	}
	return len(data) / stride, nil
}

// BufferLayout describes the layout as a vertex buffer for the resource
// layer. Shader locations match the inputs generated from the layout; a Mat4
// attribute occupies four consecutive vec4 locations.
func (l *Layout) BufferLayout() (gputypes.VertexBufferLayout, error) {
	if err := l.Validate(); err != nil {
		return gputypes.VertexBufferLayout{}, err
	}

	attributes := make([]gputypes.VertexAttribute, 0, len(l.attributes))
	var offset uint64
	var location uint32
	for _, a := range l.attributes {
		if a.Type == ir.TypeMat4 {
			for column := 0; column < 4; column++ {
				attributes = append(attributes, gputypes.VertexAttribute{
					Format:         gputypes.VertexFormatFloat32x4,
					Offset:         offset,
					ShaderLocation: location,
				})
				offset += 16
				location++
			}
			continue
		}
		attributes = append(attributes, gputypes.VertexAttribute{
			Format:         vertexFormat(a.Type),
			Offset:         offset,
			ShaderLocation: location,
		})
		offset += uint64(componentCount(a.Type)) * 4 //nolint:gosec // G115: component counts are small
		location++
	}

	return gputypes.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attributes,
	}, nil
}

// vertexFormat returns the buffer format of a scalar or vector attribute.
func vertexFormat(t ir.ValueType) gputypes.VertexFormat {
	switch t {
	case ir.TypeInt:
		return gputypes.VertexFormatSint32
	case ir.TypeFloat:
		return gputypes.VertexFormatFloat32
	case ir.TypeVec2:
		return gputypes.VertexFormatFloat32x2
	case ir.TypeVec3:
		return gputypes.VertexFormatFloat32x3
	default:
		return gputypes.VertexFormatFloat32x4
	}
}
