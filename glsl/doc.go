// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl provides a GLSL (OpenGL Shading Language) backend for shadergen.
//
// This package generates GLSL source code for one shader stage described by
// an ir.Module. Stages link by explicit interface locations, so the target
// must support layout locations on stage inputs and outputs:
//
//   - GLSL 4.10 Core and later: Desktop OpenGL 4.1+
//   - GLSL ES 3.10 and later: OpenGL ES 3.1+
//
// # Basic Usage
//
//	source, info, err := glsl.Compile(module, glsl.DefaultOptions())
//
// # Generated Layout
//
// A stage is written as a version directive, one input declaration per
// input, one uniform declaration per uniform, the output declarations and a
// main function. Every sampler uniform is accompanied by two vec3 region
// uniforms, <name>_min and <name>_max, and sampling folds the region remap
// into a single textureLod call.
//
// # Reserved Words
//
// GLSL has over 500 reserved words (including future reserved).
// Identifiers are prefixed per declaration kind (see Options), and a
// prefixed identifier that is still reserved is rejected rather than
// renamed, because host code binds uniforms by name.
package glsl
