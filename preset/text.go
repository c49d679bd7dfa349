package preset

import (
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/shader"
)

// TextLayout returns the Position, Color and TexCoord layout of the text
// preset.
func TextLayout() *shader.Layout {
	return shader.NewLayout(shader.Position, shader.Color, shader.TexCoord)
}

// MVP transforms a Vec3 model-space position into clip space with the
// built-in model, view and projection matrices.
func MVP(params *shader.Parameters, position ir.Value) (*ir.Expression, error) {
	pos, err := ir.Append(position, ir.Float(1))
	if err != nil {
		return nil, err
	}
	if pos, err = params.ModelMatrix().Mul(pos); err != nil {
		return nil, err
	}
	if pos, err = params.ViewMatrix().Mul(pos); err != nil {
		return nil, err
	}
	return params.ProjectionMatrix().Mul(pos)
}

// TextVertex transforms glyph quads into clip space and forwards their
// atlas coordinates and colour.
func TextVertex(in *shader.Inputs, params *shader.Parameters, out *shader.Outputs) error {
	pos, err := in.Get(shader.Position.Name)
	if err != nil {
		return err
	}
	uv, err := in.Get(shader.TexCoord.Name)
	if err != nil {
		return err
	}
	clip, err := MVP(params, pos)
	if err != nil {
		return err
	}
	out.SetVertexPosition(clip)

	if err := out.Set(TexCoordOutput, uv); err != nil {
		return err
	}
	return out.Set(ColorOutput, optional(in, shader.Color.Name, White))
}

// TextFragment samples the font atlas at the base level and tints the glyph
// by the vertex colour.
func TextFragment(in *shader.Inputs, params *shader.Parameters, out *shader.Outputs) error {
	uv, err := in.Get(TexCoordOutput)
	if err != nil {
		return err
	}
	color, err := in.Get(ColorOutput)
	if err != nil {
		return err
	}
	glyph, err := params.Sampler2D(FontTextureName).Sample(uv, ir.Float(0))
	if err != nil {
		return err
	}
	tinted, err := glyph.Mul(color)
	if err != nil {
		return err
	}
	out.SetFragmentColor(tinted)
	return nil
}
