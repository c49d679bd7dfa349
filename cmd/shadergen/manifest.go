package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/shader"
)

// Manifest describes a generated program to the code that binds it: the
// vertex buffer it reads and the uniforms it expects.
type Manifest struct {
	Preset     string              `toml:"preset" yaml:"preset"`
	Version    string              `toml:"version" yaml:"version"`
	Stride     uint64              `toml:"stride" yaml:"stride"`
	Attributes []ManifestAttribute `toml:"attribute" yaml:"attributes"`
	Uniforms   []ManifestUniform   `toml:"uniform,omitempty" yaml:"uniforms,omitempty"`
}

// ManifestAttribute is one vertex input.
type ManifestAttribute struct {
	Name       string `toml:"name" yaml:"name"`
	Type       string `toml:"type" yaml:"type"`
	Identifier string `toml:"identifier" yaml:"identifier"`
	Location   uint32 `toml:"location" yaml:"location"`
	Offset     uint64 `toml:"offset" yaml:"offset"`
	Format     string `toml:"format" yaml:"format"`
}

// ManifestUniform is one uniform, including the region uniforms of samplers.
type ManifestUniform struct {
	Name       string   `toml:"name" yaml:"name"`
	Type       string   `toml:"type" yaml:"type"`
	Identifier string   `toml:"identifier" yaml:"identifier"`
	Stages     []string `toml:"stages" yaml:"stages"`
}

// NewManifest describes program, generated from layout.
func NewManifest(presetName, version string, layout *shader.Layout, program *shadergen.Program) (*Manifest, error) {
	inputs, err := shader.InputsFromLayout(layout)
	if err != nil {
		return nil, err
	}
	buffer := program.BufferLayout
	m := &Manifest{
		Preset:  presetName,
		Version: version,
		Stride:  buffer.ArrayStride,
	}

	// Buffer attributes cover each vector slot; an attribute starts at the
	// slot whose location matches its input.
	for _, in := range inputs.All() {
		a := ManifestAttribute{
			Name:       in.Name,
			Type:       in.Type.String(),
			Identifier: program.VertexInfo.InputNames[in.Name],
			Location:   uint32(in.Location), //nolint:gosec // G115: locations are small and non-negative
		}
		for _, slot := range buffer.Attributes {
			if slot.ShaderLocation == a.Location {
				a.Offset = slot.Offset
				a.Format = slot.Format.String()
				break
			}
		}
		m.Attributes = append(m.Attributes, a)
	}

	params, err := program.Parameters()
	if err != nil {
		return nil, err
	}
	uniforms, err := params.Uniforms()
	if err != nil {
		return nil, err
	}
	for _, u := range uniforms {
		mu := ManifestUniform{Name: u.Name, Type: u.Type.String()}
		if id, ok := program.VertexInfo.UniformNames[u.Name]; ok {
			mu.Identifier = id
			mu.Stages = append(mu.Stages, "vertex")
		}
		if id, ok := program.FragmentInfo.UniformNames[u.Name]; ok {
			mu.Identifier = id
			mu.Stages = append(mu.Stages, "fragment")
		}
		m.Uniforms = append(m.Uniforms, mu)
	}
	return m, nil
}

// Encode renders the manifest as TOML or YAML, chosen by the extension of
// path.
func (m *Manifest) Encode(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Marshal(m)
	case ".yaml", ".yml":
		return yaml.Marshal(m)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
}
