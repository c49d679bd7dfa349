package glsl

import (
	"runtime"
	"testing"

	"github.com/gogpu/shadergen/ir"
)

// ---------------------------------------------------------------------------
// Stage modules for GLSL backend benchmarks
// ---------------------------------------------------------------------------

// benchOK unwraps a builder result.
func benchOK(b *testing.B) func(*ir.Expression, error) *ir.Expression {
	return func(e *ir.Expression, err error) *ir.Expression {
		if err != nil {
			b.Fatalf("build failed: %v", err)
		}
		return e
	}
}

// glslBenchSmall is a vertex stage forwarding its colour.
func glslBenchSmall(b *testing.B) *ir.Module {
	ok := benchOK(b)
	pos := ir.NewInput("Position", ir.TypeVec3)
	return &ir.Module{
		Stage: ir.StageVertex,
		Inputs: []ir.Binding{
			{Name: "Position", Type: ir.TypeVec3, Location: 0},
			{Name: "Color", Type: ir.TypeVec4, Location: 1},
		},
		Outputs:     []ir.Binding{{Name: "Color", Type: ir.TypeVec4, Location: 0}},
		Builtin:     ok(pos.Append(ir.Float(1))),
		Assignments: []ir.Assignment{{Output: "Color", Value: ir.NewInput("Color", ir.TypeVec4)}},
	}
}

// glslBenchMedium is a fragment stage sampling an atlas and tinting it.
func glslBenchMedium(b *testing.B) *ir.Module {
	ok := benchOK(b)
	tex := ir.NewUniform("font_texture", ir.TypeSampler2D)
	uv := ir.NewInput("TexCoord", ir.TypeVec2)
	color := ir.NewInput("Color", ir.TypeVec4)
	return &ir.Module{
		Stage: ir.StageFragment,
		Inputs: []ir.Binding{
			{Name: "TexCoord", Type: ir.TypeVec2, Location: 0},
			{Name: "Color", Type: ir.TypeVec4, Location: 1},
		},
		Uniforms: []ir.Uniform{{Name: "font_texture", Type: ir.TypeSampler2D}},
		Builtin:  ok(ok(tex.Sample(uv, ir.Float(0))).Mul(color)),
	}
}

// glslBenchLarge is a Blinn-Phong lighting fragment stage.
func glslBenchLarge(b *testing.B) *ir.Module {
	ok := benchOK(b)
	normal := ir.NewInput("Normal", ir.TypeVec3)
	worldPos := ir.NewInput("WorldPos", ir.TypeVec3)
	lightPos := ir.NewUniform("light_pos", ir.TypeVec3)
	lightColor := ir.Vec3{1, 1, 1}

	n := ok(normal.Normalize())
	l := ok(ok(lightPos.Sub(worldPos)).Normalize())
	diffuse := ok(lightColor.Expression().Mul(ok(ok(n.Dot(l)).Max(ir.Float(0)))))
	view := ok(ok(ir.Vec3{0, 0, 5}.Expression().Sub(worldPos)).Normalize())
	half := ok(ok(l.Add(view)).Normalize())
	spec := ok(ok(ok(n.Dot(half)).Max(ir.Float(0))).Pow(ir.Float(32)))
	specular := ok(lightColor.Expression().Mul(spec))
	base := ok(ir.Vec3{0.8, 0.2, 0.2}.Expression().Mul(diffuse))
	final := ok(ok(ok(ir.Vec3{0.05, 0.05, 0.05}.Expression().Add(base)).Add(ok(specular.Mul(ir.Float(0.5))))).Append(ir.Float(1)))

	return &ir.Module{
		Stage: ir.StageFragment,
		Inputs: []ir.Binding{
			{Name: "WorldPos", Type: ir.TypeVec3, Location: 0},
			{Name: "Normal", Type: ir.TypeVec3, Location: 1},
		},
		Uniforms: []ir.Uniform{{Name: "light_pos", Type: ir.TypeVec3}},
		Builtin:  final,
	}
}

type glslBenchCase struct {
	name   string
	module func(b *testing.B) *ir.Module
}

var glslBenchModules = []glslBenchCase{
	{"small", glslBenchSmall},
	{"medium", glslBenchMedium},
	{"large", glslBenchLarge},
}

// ---------------------------------------------------------------------------
// GLSL emit benchmarks
// ---------------------------------------------------------------------------

// BenchmarkGLSLEmit benchmarks GLSL code generation (IR to string)
// for stages of different complexity.
func BenchmarkGLSLEmit(b *testing.B) {
	for _, bc := range glslBenchModules {
		b.Run(bc.name, func(b *testing.B) {
			module := bc.module(b)
			opts := DefaultOptions()

			b.ReportAllocs()
			b.ResetTimer()

			var result string
			for i := 0; i < b.N; i++ {
				var err error
				result, _, err = Compile(module, opts)
				if err != nil {
					b.Fatalf("glsl emit failed: %v", err)
				}
			}
			runtime.KeepAlive(result)
		})
	}
}

// BenchmarkGLSLVersions benchmarks GLSL generation across different
// target versions (410 core, 450 core, ES 310) for the same stage.
func BenchmarkGLSLVersions(b *testing.B) {
	module := glslBenchMedium(b)

	versions := []struct {
		name    string
		version Version
	}{
		{"410_core", Version410},
		{"450_core", Version450},
		{"ES_310", VersionES310},
	}

	for _, vv := range versions {
		b.Run(vv.name, func(b *testing.B) {
			opts := DefaultOptions()
			opts.LangVersion = vv.version

			b.ReportAllocs()
			b.ResetTimer()

			var result string
			for i := 0; i < b.N; i++ {
				var err error
				result, _, err = Compile(module, opts)
				if err != nil {
					b.Fatalf("glsl %s emit failed: %v", vv.name, err)
				}
			}
			runtime.KeepAlive(result)
		})
	}
}
