package preset

import (
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/shader"
)

// UnlitLayout returns the Position and Color layout of the unlit preset.
func UnlitLayout() *shader.Layout {
	return shader.NewLayout(shader.Position, shader.Color)
}

// UnlitVertex passes the position through with w = 1 and forwards the
// vertex colour, or white when the layout has none.
func UnlitVertex(in *shader.Inputs, _ *shader.Parameters, out *shader.Outputs) error {
	pos, err := in.Get(shader.Position.Name)
	if err != nil {
		return err
	}
	clip, err := pos.Append(ir.Float(1))
	if err != nil {
		return err
	}
	out.SetVertexPosition(clip)
	return out.Set(ColorOutput, optional(in, shader.Color.Name, White))
}

// UnlitFragment writes the interpolated colour.
func UnlitFragment(in *shader.Inputs, _ *shader.Parameters, out *shader.Outputs) error {
	color, err := in.Get(ColorOutput)
	if err != nil {
		return err
	}
	out.SetFragmentColor(color)
	return nil
}
