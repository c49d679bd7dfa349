package shadergen

import (
	"runtime"
	"testing"

	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/shader"
)

// ---------------------------------------------------------------------------
// Stage callbacks at different complexity levels
// ---------------------------------------------------------------------------

// mvpVertex transforms the position by the model, view and projection
// matrices and forwards the texture coordinate, normal and colour.
func mvpVertex(in *shader.Inputs, params *shader.Parameters, out *shader.Outputs) error {
	pos, err := in.Get("Position")
	if err != nil {
		return err
	}
	world, err := pos.Append(ir.Float(1))
	if err != nil {
		return err
	}
	mvp, err := params.ProjectionMatrix().Mul(params.ViewMatrix())
	if err != nil {
		return err
	}
	if mvp, err = mvp.Mul(params.ModelMatrix()); err != nil {
		return err
	}
	clip, err := mvp.Mul(world)
	if err != nil {
		return err
	}
	out.SetVertexPosition(clip)

	for _, name := range []string{"Normal", "Color", "TexCoord"} {
		v, err := in.Get(name)
		if err != nil {
			return err
		}
		if err := out.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// atlasFragment samples a texture atlas and tints it by the vertex colour.
func atlasFragment(in *shader.Inputs, params *shader.Parameters, out *shader.Outputs) error {
	uv, err := in.Get("TexCoord")
	if err != nil {
		return err
	}
	color, err := in.Get("Color")
	if err != nil {
		return err
	}
	texel, err := params.Sampler2D("font_texture").Sample(uv, ir.Float(0))
	if err != nil {
		return err
	}
	tinted, err := texel.Mul(color)
	if err != nil {
		return err
	}
	out.SetFragmentColor(tinted)
	return nil
}

// lambertFragment shades with a single directional light.
func lambertFragment(in *shader.Inputs, params *shader.Parameters, out *shader.Outputs) error {
	normal, err := in.Get("Normal")
	if err != nil {
		return err
	}
	n, err := normal.Normalize()
	if err != nil {
		return err
	}
	l, err := params.Vec3("light_dir").Normalize()
	if err != nil {
		return err
	}
	ndotl, err := n.Dot(l)
	if err != nil {
		return err
	}
	if ndotl, err = ndotl.Clamp(ir.Float(0), ir.Float(1)); err != nil {
		return err
	}
	color, err := in.Get("Color")
	if err != nil {
		return err
	}
	lit, err := color.Mul(ndotl)
	if err != nil {
		return err
	}
	ambient, err := params.Vec4("ambient").Add(lit)
	if err != nil {
		return err
	}
	out.SetFragmentColor(ambient)
	return nil
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

var generateCases = []struct {
	name     string
	vertex   StageFunc
	fragment StageFunc
}{
	{"small", passthroughVertex, colorFragment},
	{"medium", mvpVertex, atlasFragment},
	{"large", mvpVertex, lambertFragment},
}

// BenchmarkGenerate measures the full pipeline: both callbacks, interface
// linking and rendering.
func BenchmarkGenerate(b *testing.B) {
	layout := shader.DefaultLayout()
	for _, gc := range generateCases {
		b.Run(gc.name, func(b *testing.B) {
			b.ReportAllocs()

			b.ResetTimer()
			var result *Program
			for i := 0; i < b.N; i++ {
				program, err := Generate(layout, gc.vertex, gc.fragment)
				if err != nil {
					b.Fatal(err)
				}
				result = program
			}
			runtime.KeepAlive(result)
		})
	}
}

// BenchmarkGenerateES measures generation for a GLSL ES target.
func BenchmarkGenerateES(b *testing.B) {
	layout := shader.DefaultLayout()
	opts := DefaultOptions()
	opts.GLSL.LangVersion = glsl.VersionES310
	b.ReportAllocs()

	b.ResetTimer()
	var result *Program
	for i := 0; i < b.N; i++ {
		program, err := GenerateWithOptions(layout, mvpVertex, atlasFragment, opts)
		if err != nil {
			b.Fatal(err)
		}
		result = program
	}
	runtime.KeepAlive(result)
}
