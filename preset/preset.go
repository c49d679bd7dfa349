// Package preset provides ready-made stage callbacks for common shaders:
// unlit vertex colours and font atlas text. Each preset pairs a default
// vertex layout with its vertex and fragment callbacks.
package preset

import (
	"sort"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/shader"
)

// Output names shared by the preset stages.
const (
	ColorOutput    = "color"
	TexCoordOutput = "tex_coord"
)

// FontTextureName is the sampler parameter the text preset reads glyphs from.
const FontTextureName = "font_texture"

// White is the colour used when the layout has no Color attribute.
var White = ir.Vec4{1, 1, 1, 1}

// Preset is a named vertex/fragment callback pair.
type Preset struct {
	Name        string
	Description string

	// Layout returns the default vertex layout of the preset.
	Layout func() *shader.Layout

	Vertex   shadergen.StageFunc
	Fragment shadergen.StageFunc
}

// Generate generates the preset for layout, or for its default layout when
// layout is nil.
func (p Preset) Generate(layout *shader.Layout, opts shadergen.Options) (*shadergen.Program, error) {
	if layout == nil {
		layout = p.Layout()
	}
	return shadergen.GenerateWithOptions(layout, p.Vertex, p.Fragment, opts)
}

var presets = map[string]Preset{
	"unlit": {
		Name:        "unlit",
		Description: "vertex colour without lighting or transform",
		Layout:      UnlitLayout,
		Vertex:      UnlitVertex,
		Fragment:    UnlitFragment,
	},
	"text": {
		Name:        "text",
		Description: "font atlas glyphs tinted by vertex colour",
		Layout:      TextLayout,
		Vertex:      TextVertex,
		Fragment:    TextFragment,
	},
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// optional returns the named input, or fallback when the stage has no such
// input.
func optional(in *shader.Inputs, name string, fallback ir.Value) *ir.Expression {
	if _, ok := in.Input(name); ok {
		e, _ := in.Get(name)
		return e
	}
	return fallback.Expression()
}
