// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shadergen/ir"
)

// Writer generates GLSL source code from a stage module.
type Writer struct {
	module  *ir.Module
	options *Options

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int

	// Identifiers already declared, mapped to a description of their owner
	declared map[string]string

	// Output tracking
	inputNames   map[string]string
	outputNames  map[string]string
	uniformNames map[string]string
}

// newWriter creates a new GLSL writer.
func newWriter(module *ir.Module, options *Options) *Writer {
	return &Writer{
		module:       module,
		options:      options,
		declared:     make(map[string]string),
		inputNames:   make(map[string]string, len(module.Inputs)),
		outputNames:  make(map[string]string, len(module.Outputs)),
		uniformNames: make(map[string]string, len(module.Uniforms)),
	}
}

// String returns the generated GLSL source code.
func (w *Writer) String() string {
	return w.out.String()
}

// writeModule generates GLSL code for the entire stage.
func (w *Writer) writeModule() error {
	// 1. Write version directive
	w.writeVersionDirective()

	// 2. Write precision qualifiers (ES only)
	w.writePrecisionQualifiers()

	// 3. Register all names
	if err := w.registerNames(); err != nil {
		return err
	}

	// 4. Write inputs
	if err := w.writeInputs(); err != nil {
		return err
	}

	// 5. Write uniforms
	if err := w.writeUniforms(); err != nil {
		return err
	}

	// 6. Write outputs, including the stage's built-in output
	if err := w.writeOutputs(); err != nil {
		return err
	}

	// 7. Write main
	return w.writeMain()
}

// writeVersionDirective writes the #version directive.
func (w *Writer) writeVersionDirective() {
	w.writeLine("#version %s", w.options.LangVersion.String())
	if w.options.WriterFlags&WriterFlagDebugInfo != 0 {
		w.writeLine("// %s stage", w.module.Stage)
	}
	w.writeBlankLine()
}

// writePrecisionQualifiers writes precision qualifiers for ES.
func (w *Writer) writePrecisionQualifiers() {
	if !w.options.LangVersion.ES || !w.options.ForceHighPrecision {
		return
	}

	// ES requires precision qualifiers
	w.writeLine("precision highp float;")
	w.writeLine("precision highp int;")
	w.writeLine("precision highp sampler2D;")
	w.writeBlankLine()
}

// registerNames assigns identifiers to all declared names and rejects
// identifiers that are reserved or collide after prefixing.
func (w *Writer) registerNames() error {
	if w.module.Stage == ir.StageFragment {
		// The colour output is not user-named but still claims its identifier.
		w.declared[FragmentColorName] = "the fragment color output"
	}

	for _, in := range w.module.Inputs {
		ident := w.options.InputName(in.Name)
		if err := w.declare(ident, fmt.Sprintf("input %q", in.Name)); err != nil {
			return err
		}
		w.inputNames[in.Name] = ident
	}

	for _, u := range w.module.Uniforms {
		ident := w.options.UniformName(u.Name)
		if err := w.declare(ident, fmt.Sprintf("uniform %q", u.Name)); err != nil {
			return err
		}
		w.uniformNames[u.Name] = ident
		if u.Type != ir.TypeSampler2D {
			continue
		}
		minName, maxName := ir.RegionNames(u.Name)
		for _, name := range []string{minName, maxName} {
			ident := w.options.UniformName(name)
			if err := w.declare(ident, fmt.Sprintf("region uniform %q of sampler %q", name, u.Name)); err != nil {
				return err
			}
			w.uniformNames[name] = ident
		}
	}

	for _, out := range w.module.Outputs {
		ident := w.options.OutputName(out.Name)
		if err := w.declare(ident, fmt.Sprintf("output %q", out.Name)); err != nil {
			return err
		}
		w.outputNames[out.Name] = ident
	}

	return nil
}

// declare claims an identifier for a named entity.
func (w *Writer) declare(ident, owner string) error {
	if err := checkIdentifier(ident); err != nil {
		return fmt.Errorf("%s: %w", owner, err)
	}
	if other, ok := w.declared[ident]; ok {
		return fmt.Errorf("%s: identifier %q already declared for %s", owner, ident, other)
	}
	w.declared[ident] = owner
	return nil
}

// writeInputs writes the stage input declarations.
func (w *Writer) writeInputs() error {
	fragment := w.module.Stage == ir.StageFragment
	for _, in := range w.module.Inputs {
		typeName, err := typeToGLSL(in.Type)
		if err != nil {
			return fmt.Errorf("input %q: %w", in.Name, err)
		}
		qualifier := ""
		if fragment {
			qualifier = interpolationQualifier(in.Type)
		}
		w.writeLine("layout(location = %d) %sin %s %s;", in.Location, qualifier, typeName, w.inputNames[in.Name])
	}
	if len(w.module.Inputs) > 0 {
		w.writeBlankLine()
	}
	return nil
}

// writeUniforms writes uniform declarations, followed for every sampler by
// the declarations of its region uniforms.
func (w *Writer) writeUniforms() error {
	for _, u := range w.module.Uniforms {
		typeName, err := typeToGLSL(u.Type)
		if err != nil {
			return fmt.Errorf("uniform %q: %w", u.Name, err)
		}
		w.writeLine("uniform %s %s;", typeName, w.uniformNames[u.Name])
		if u.Type == ir.TypeSampler2D {
			minName, maxName := ir.RegionNames(u.Name)
			w.writeLine("uniform vec3 %s;", w.uniformNames[minName])
			w.writeLine("uniform vec3 %s;", w.uniformNames[maxName])
		}
	}
	if len(w.module.Uniforms) > 0 {
		w.writeBlankLine()
	}
	return nil
}

// writeOutputs writes the built-in output and the user output declarations.
func (w *Writer) writeOutputs() error {
	switch w.module.Stage {
	case ir.StageFragment:
		w.writeLine("layout(location = 0) out vec4 %s;", FragmentColorName)
		if len(w.module.Outputs) == 0 {
			w.writeBlankLine()
		}
	case ir.StageVertex:
		// GLSL ES cannot redeclare gl_PerVertex without an extension.
		if !w.options.LangVersion.ES {
			w.writeLine("out gl_PerVertex {")
			w.pushIndent()
			w.writeLine("vec4 gl_Position;")
			w.popIndent()
			w.writeLine("};")
			w.writeBlankLine()
		}
	}

	vertex := w.module.Stage == ir.StageVertex
	for _, out := range w.module.Outputs {
		typeName, err := typeToGLSL(out.Type)
		if err != nil {
			return fmt.Errorf("output %q: %w", out.Name, err)
		}
		qualifier := ""
		if vertex {
			qualifier = interpolationQualifier(out.Type)
		} else if out.Type == ir.TypeMat4 {
			return fmt.Errorf("output %q: fragment outputs cannot have type %s", out.Name, out.Type)
		}
		w.writeLine("layout(location = %d) %sout %s %s;", out.Location, qualifier, typeName, w.outputNames[out.Name])
	}
	if len(w.module.Outputs) > 0 {
		w.writeBlankLine()
	}
	return nil
}

// writeMain writes the stage entry point: the built-in output first, then
// one assignment per user output.
func (w *Writer) writeMain() error {
	builtin, err := w.writeExpression(w.module.Builtin)
	if err != nil {
		return fmt.Errorf("built-in output: %w", err)
	}

	w.writeLine("void main() {")
	w.pushIndent()

	if w.module.Stage == ir.StageVertex {
		w.writeLine("gl_Position = %s;", builtin)
	} else {
		w.writeLine("%s = %s;", FragmentColorName, builtin)
	}

	for _, a := range w.module.Assignments {
		value, err := w.writeExpression(a.Value)
		if err != nil {
			return fmt.Errorf("output %q: %w", a.Output, err)
		}
		if w.options.WriterFlags&WriterFlagDebugInfo != 0 {
			w.writeLine("// %s: %s", a.Output, a.Value.Type())
		}
		w.writeLine("%s = %s;", w.outputNames[a.Output], value)
	}

	w.popIndent()
	w.writeLine("}")
	return nil
}

// Output helpers

// writeLine writes a line with indentation and newline.
//
//nolint:goprintffuncname
func (w *Writer) writeLine(format string, args ...any) {
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeBlankLine separates sections unless minifying.
func (w *Writer) writeBlankLine() {
	if w.options.WriterFlags&WriterFlagMinify != 0 {
		return
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	if w.options.WriterFlags&WriterFlagMinify != 0 {
		return
	}
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// formatFloat formats a float32 for GLSL output.
func formatFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	// Ensure it has a decimal point or exponent
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
