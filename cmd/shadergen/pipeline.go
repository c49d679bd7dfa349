package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/preset"
	"github.com/gogpu/shadergen/shader"
)

// Pipeline is a pipeline file: the preset to generate, the vertex layout it
// reads, the GLSL target and where the results go.
type Pipeline struct {
	Preset     string      `toml:"preset" yaml:"preset"`
	Version    string      `toml:"version" yaml:"version"`
	Minify     bool        `toml:"minify" yaml:"minify"`
	Debug      bool        `toml:"debug" yaml:"debug"`
	Prefixes   Prefixes    `toml:"prefixes" yaml:"prefixes"`
	Attributes []Attribute `toml:"attributes" yaml:"attributes"`
	Output     Output      `toml:"output" yaml:"output"`

	// dir is the directory relative output paths are resolved against.
	dir string
}

// Prefixes overrides the identifier prefixes of the generated source.
type Prefixes struct {
	Input   string `toml:"input" yaml:"input"`
	Output  string `toml:"output" yaml:"output"`
	Uniform string `toml:"uniform" yaml:"uniform"`
}

// Attribute is a vertex layout attribute. Type is a type name such as
// "Vec3" or "vec3".
type Attribute struct {
	Name string `toml:"name" yaml:"name"`
	Type string `toml:"type" yaml:"type"`
}

// Output names the generated files. Empty vertex and fragment paths default
// to <preset>.vert and <preset>.frag; an empty manifest path writes no
// manifest.
type Output struct {
	Vertex   string `toml:"vertex" yaml:"vertex"`
	Fragment string `toml:"fragment" yaml:"fragment"`
	Manifest string `toml:"manifest" yaml:"manifest"`
}

// LoadPipeline reads a TOML or YAML pipeline file, chosen by extension.
// Unknown keys are rejected.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := ParsePipeline(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.dir = filepath.Dir(path)
	return p, nil
}

// ParsePipeline decodes a pipeline in the format named by ext and checks it.
func ParsePipeline(data []byte, ext string) (*Pipeline, error) {
	p := &Pipeline{}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(p); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(p); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported pipeline format %q (want .toml, .yaml or .yml)", ext)
	}
	if err := p.check(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pipeline) check() error {
	if p.Preset == "" {
		return fmt.Errorf("preset is required (one of %s)", strings.Join(preset.Names(), ", "))
	}
	if _, ok := preset.Lookup(p.Preset); !ok {
		return fmt.Errorf("unknown preset %q (one of %s)", p.Preset, strings.Join(preset.Names(), ", "))
	}
	if p.Output.Vertex == "" {
		p.Output.Vertex = p.Preset + ".vert"
	}
	if p.Output.Fragment == "" {
		p.Output.Fragment = p.Preset + ".frag"
	}
	return nil
}

// Layout returns the vertex layout of the pipeline, or nil when it lists no
// attributes and the preset's default layout applies.
func (p *Pipeline) Layout() (*shader.Layout, error) {
	if len(p.Attributes) == 0 {
		return nil, nil
	}
	attrs := make([]shader.Attribute, len(p.Attributes))
	for i, a := range p.Attributes {
		t, ok := ir.ParseValueType(a.Type)
		if !ok {
			return nil, fmt.Errorf("attribute %q: unknown type %q", a.Name, a.Type)
		}
		attrs[i] = shader.Attribute{Name: a.Name, Type: t}
	}
	return shader.NewLayout(attrs...), nil
}

// Options returns the generation options of the pipeline.
func (p *Pipeline) Options() (shadergen.Options, error) {
	opts := shadergen.DefaultOptions()
	if p.Version != "" {
		v, err := glsl.ParseVersion(p.Version)
		if err != nil {
			return shadergen.Options{}, err
		}
		opts.GLSL.LangVersion = v
	}
	if p.Minify {
		opts.GLSL.WriterFlags |= glsl.WriterFlagMinify
	}
	if p.Debug {
		opts.GLSL.WriterFlags |= glsl.WriterFlagDebugInfo
	}
	if p.Prefixes.Input != "" {
		opts.GLSL.InputPrefix = p.Prefixes.Input
	}
	if p.Prefixes.Output != "" {
		opts.GLSL.OutputPrefix = p.Prefixes.Output
	}
	if p.Prefixes.Uniform != "" {
		opts.GLSL.UniformPrefix = p.Prefixes.Uniform
	}
	return opts, nil
}

// resolve returns path relative to dir, or to the pipeline file when dir is
// empty. Absolute paths are kept.
func (p *Pipeline) resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if dir == "" {
		dir = p.dir
	}
	return filepath.Join(dir, path)
}
