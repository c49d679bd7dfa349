// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// typeToGLSL returns the GLSL type name for a value type.
func typeToGLSL(t ir.ValueType) (string, error) {
	switch t {
	case ir.TypeInt, ir.TypeFloat, ir.TypeVec2, ir.TypeVec3, ir.TypeVec4, ir.TypeMat4, ir.TypeSampler2D:
		return t.SourceName(), nil
	default:
		return "", fmt.Errorf("unsupported value type %d", t)
	}
}

// interpolationQualifier returns the qualifier required on a stage interface
// variable of the given type. Integer varyings cannot be interpolated and
// must be flat on both sides of the interface.
func interpolationQualifier(t ir.ValueType) string {
	if t == ir.TypeInt {
		return "flat "
	}
	return ""
}

// splat widens a rendered scalar to the given vector type. Functions such as
// pow and mod only accept a scalar in some argument positions, so mixed
// scalar/vector operands are widened explicitly.
func splat(value string, from, to ir.ValueType) string {
	if from == to || to == ir.TypeInt || to == ir.TypeFloat {
		return value
	}
	return fmt.Sprintf("%s(%s)", to.SourceName(), value)
}
