// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/shadergen/ir"
)

// Version represents a GLSL version.
type Version struct {
	Major uint8
	Minor uint8
	ES    bool // true for GLSL ES (OpenGL ES / WebGL)
}

// Common GLSL versions.
var (
	// Desktop OpenGL versions
	Version330 = Version{Major: 3, Minor: 30, ES: false} // OpenGL 3.3 Core
	Version400 = Version{Major: 4, Minor: 0, ES: false}  // OpenGL 4.0
	Version410 = Version{Major: 4, Minor: 10, ES: false} // OpenGL 4.1 (interface locations)
	Version420 = Version{Major: 4, Minor: 20, ES: false} // OpenGL 4.2
	Version430 = Version{Major: 4, Minor: 30, ES: false} // OpenGL 4.3
	Version450 = Version{Major: 4, Minor: 50, ES: false} // OpenGL 4.5
	Version460 = Version{Major: 4, Minor: 60, ES: false} // OpenGL 4.6

	// OpenGL ES / WebGL versions
	VersionES300 = Version{Major: 3, Minor: 0, ES: true}  // ES 3.0 / WebGL 2.0
	VersionES310 = Version{Major: 3, Minor: 10, ES: true} // ES 3.1 (interface locations)
	VersionES320 = Version{Major: 3, Minor: 20, ES: true} // ES 3.2
)

// String returns the version as a GLSL version directive value.
func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("%d%02d es", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d%02d core", v.Major, v.Minor)
}

// VersionNumber returns just the numeric version (e.g., "330", "300").
func (v Version) VersionNumber() string {
	return fmt.Sprintf("%d%02d", v.Major, v.Minor)
}

// versionLessThan returns true if the numeric version (Major*100+Minor) is
// less than the given number. For example, versionLessThan(410) returns true
// for GLSL 330 (3*100+30=330 < 410) and false for GLSL 410 (4*100+10=410).
func (v Version) versionLessThan(number int) bool {
	return int(v.Major)*100+int(v.Minor) < number
}

// SupportsInterfaceLocations returns true if stage outputs and inputs may
// carry explicit layout locations, so the two stages link by location rather
// than by name.
func (v Version) SupportsInterfaceLocations() bool {
	if v.ES {
		return !v.versionLessThan(310)
	}
	return !v.versionLessThan(410)
}

// minimumVersion returns the oldest version of the same flavour that can
// express a generated shader.
func (v Version) minimumVersion() Version {
	if v.ES {
		return VersionES310
	}
	return Version410
}

// ParseVersion parses a version as written after #version, with or without
// a profile: "450", "450 core", "310 es".
func ParseVersion(s string) (Version, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Version{}, fmt.Errorf("invalid GLSL version %q", s)
	}
	number, err := strconv.Atoi(fields[0])
	if err != nil || number < 100 || number > 999 {
		return Version{}, fmt.Errorf("invalid GLSL version %q", s)
	}
	v := Version{Major: uint8(number / 100), Minor: uint8(number % 100)} //nolint:gosec // G115: number is in [100, 999]
	if len(fields) == 2 {
		switch fields[1] {
		case "core":
		case "es":
			v.ES = true
		default:
			return Version{}, fmt.Errorf("invalid GLSL profile %q in version %q", fields[1], s)
		}
	}
	return v, nil
}

// WriterFlags control output formatting.
type WriterFlags uint32

const (
	// WriterFlagNone uses default settings.
	WriterFlagNone WriterFlags = 0

	// WriterFlagDebugInfo adds source comments for debugging.
	WriterFlagDebugInfo WriterFlags = 1 << iota

	// WriterFlagMinify removes unnecessary whitespace.
	WriterFlagMinify
)

// Default identifier prefixes. Prefixes keep user names apart from GLSL
// keywords and from each other across declaration kinds.
const (
	DefaultInputPrefix   = "input_"
	DefaultOutputPrefix  = "_output_"
	DefaultUniformPrefix = "_uniform_"
)

// FragmentColorName is the identifier of the fragment stage's colour output.
// It always occupies location 0.
const FragmentColorName = "out_fragment_color"

// Options configures GLSL code generation.
type Options struct {
	// LangVersion is the target GLSL version.
	// Defaults to Version450 if zero.
	LangVersion Version

	// InputPrefix is prepended to input names.
	InputPrefix string

	// OutputPrefix is prepended to user output names.
	OutputPrefix string

	// UniformPrefix is prepended to uniform names.
	UniformPrefix string

	// WriterFlags control output formatting.
	WriterFlags WriterFlags

	// ForceHighPrecision forces highp precision for all float types (ES only).
	// If false, uses default precision qualifiers.
	ForceHighPrecision bool
}

// DefaultOptions returns sensible default options for GLSL generation.
func DefaultOptions() Options {
	return Options{
		LangVersion:        Version450,
		InputPrefix:        DefaultInputPrefix,
		OutputPrefix:       DefaultOutputPrefix,
		UniformPrefix:      DefaultUniformPrefix,
		ForceHighPrecision: true,
	}
}

// InputName returns the identifier emitted for the input name.
func (o Options) InputName(name string) string { return o.InputPrefix + name }

// OutputName returns the identifier emitted for the output name.
func (o Options) OutputName(name string) string { return o.OutputPrefix + name }

// UniformName returns the identifier emitted for the uniform name.
func (o Options) UniformName(name string) string { return o.UniformPrefix + name }

// TranslationInfo contains metadata about the translation.
type TranslationInfo struct {
	// InputNames maps input names to generated GLSL identifiers.
	InputNames map[string]string

	// OutputNames maps user output names to generated GLSL identifiers.
	OutputNames map[string]string

	// UniformNames maps uniform names, including the synthesized region
	// uniforms of samplers, to generated GLSL identifiers.
	UniformNames map[string]string

	// RequiredVersion is the minimum GLSL version needed for this shader.
	RequiredVersion Version
}

// Compile generates GLSL source code from a stage module.
// Returns the GLSL source as a string, translation info, or an error.
func Compile(module *ir.Module, options Options) (string, TranslationInfo, error) {
	// Apply defaults for zero values
	if options.LangVersion.Major == 0 {
		options.LangVersion = Version450
	}
	if !options.LangVersion.SupportsInterfaceLocations() {
		return "", TranslationInfo{}, fmt.Errorf("glsl: version %s does not support explicit interface locations (requires %s)",
			options.LangVersion, options.LangVersion.minimumVersion())
	}

	validationErrors, err := ir.Validate(module)
	if err != nil {
		return "", TranslationInfo{}, fmt.Errorf("glsl: %w", err)
	}
	if len(validationErrors) > 0 {
		errs := make([]error, len(validationErrors))
		for i, ve := range validationErrors {
			errs[i] = ve
		}
		return "", TranslationInfo{}, fmt.Errorf("glsl: invalid module: %w", errors.Join(errs...))
	}

	// Create writer
	w := newWriter(module, &options)

	// Generate GLSL code
	if err := w.writeModule(); err != nil {
		return "", TranslationInfo{}, fmt.Errorf("glsl: %w", err)
	}

	info := TranslationInfo{
		InputNames:      w.inputNames,
		OutputNames:     w.outputNames,
		UniformNames:    w.uniformNames,
		RequiredVersion: options.LangVersion.minimumVersion(),
	}

	return w.String(), info, nil
}
