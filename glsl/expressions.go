// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/shadergen/ir"
)

// writeExpression writes an expression and returns its GLSL representation.
// Shared nodes are rendered at every use.
func (w *Writer) writeExpression(e *ir.Expression) (string, error) {
	if e == nil || e.Kind == nil {
		return "", fmt.Errorf("missing expression")
	}
	return w.writeExpressionKind(e.Kind)
}

// writeExpressionKind writes the expression based on its kind.
//
//nolint:gocyclo,cyclop // Expression handling requires many cases
func (w *Writer) writeExpressionKind(kind ir.ExpressionKind) (string, error) {
	switch k := kind.(type) {
	case ir.LiteralI32:
		return writeInt(int32(k)), nil
	case ir.LiteralF32:
		return w.writeFloat(float32(k))
	case ir.ExprInput:
		return w.writeInput(k)
	case ir.ExprUniform:
		return w.writeUniform(k)
	case ir.ExprCompose:
		return w.writeCompose(k)
	case ir.ExprAppend:
		return w.writeAppend(k)
	case ir.ExprUnary:
		return w.writeUnary(k)
	case ir.ExprBinary:
		return w.writeBinary(k)
	case ir.ExprMath:
		return w.writeMath(k)
	case ir.ExprImageSample:
		return w.writeImageSample(k)
	default:
		return "", fmt.Errorf("unsupported expression kind: %T", kind)
	}
}

// writeInt writes an integer literal. The most negative value has no
// positive counterpart in GLSL and is written as a subtraction.
func writeInt(v int32) string {
	if v == math.MinInt32 {
		return "(-2147483647 - 1)"
	}
	return fmt.Sprintf("%d", v)
}

// writeFloat writes a float literal.
func (w *Writer) writeFloat(v float32) (string, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("non-finite float literal %v", v)
	}
	return formatFloat(v), nil
}

func (w *Writer) writeInput(in ir.ExprInput) (string, error) {
	name, ok := w.inputNames[in.Name]
	if !ok {
		return "", fmt.Errorf("reference to undeclared input %q", in.Name)
	}
	return name, nil
}

func (w *Writer) writeUniform(u ir.ExprUniform) (string, error) {
	name, ok := w.uniformNames[u.Name]
	if !ok {
		return "", fmt.Errorf("reference to undeclared uniform %q", u.Name)
	}
	return name, nil
}

// writeArgs writes each expression in order.
func (w *Writer) writeArgs(exprs ...*ir.Expression) ([]string, error) {
	args := make([]string, 0, len(exprs))
	for _, e := range exprs {
		s, err := w.writeExpression(e)
		if err != nil {
			return nil, err
		}
		args = append(args, s)
	}
	return args, nil
}

// writeCompose writes a vector constructor.
func (w *Writer) writeCompose(c ir.ExprCompose) (string, error) {
	t, ok := ir.VectorOf(len(c.Components))
	if !ok || t == ir.TypeFloat {
		return "", fmt.Errorf("cannot construct a vector from %d components", len(c.Components))
	}
	args, err := w.writeArgs(c.Components...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", t.SourceName(), strings.Join(args, ", ")), nil
}

// writeAppend writes the concatenation of two values as a vector constructor.
func (w *Writer) writeAppend(a ir.ExprAppend) (string, error) {
	t := ir.ResolveType(&ir.Expression{Kind: a})
	args, err := w.writeArgs(a.Left, a.Right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s, %s)", t.SourceName(), args[0], args[1]), nil
}

// writeUnary writes a unary expression.
func (w *Writer) writeUnary(u ir.ExprUnary) (string, error) {
	operand, err := w.writeExpression(u.Operand)
	if err != nil {
		return "", err
	}

	switch u.Op {
	case ir.UnaryNegate:
		return fmt.Sprintf("-(%s)", operand), nil
	default:
		return "", fmt.Errorf("unsupported unary operator: %v", u.Op)
	}
}

// writeBinary writes a binary expression.
func (w *Writer) writeBinary(b ir.ExprBinary) (string, error) {
	left, err := w.writeExpression(b.Left)
	if err != nil {
		return "", err
	}
	right, err := w.writeExpression(b.Right)
	if err != nil {
		return "", err
	}

	switch b.Op {
	case ir.BinaryAdd:
		return fmt.Sprintf("(%s + %s)", left, right), nil
	case ir.BinarySubtract:
		return fmt.Sprintf("(%s - %s)", left, right), nil
	case ir.BinaryMultiply:
		return fmt.Sprintf("(%s * %s)", left, right), nil
	case ir.BinaryDivide:
		return fmt.Sprintf("(%s / %s)", left, right), nil
	case ir.BinaryModulo:
		lt, rt := b.Left.Type(), b.Right.Type()
		if lt == ir.TypeInt && rt == ir.TypeInt {
			return fmt.Sprintf("(%s %% %s)", left, right), nil
		}
		// mod only accepts a scalar as its second argument.
		t, _ := lt.BroadcastCompatible(rt)
		return fmt.Sprintf("mod(%s, %s)", splat(left, lt, t), right), nil
	default:
		return "", fmt.Errorf("unsupported binary operator: %v", b.Op)
	}
}

// writeMath writes a math function call.
//
//nolint:gocyclo,cyclop // Math functions require many cases
func (w *Writer) writeMath(m ir.ExprMath) (string, error) {
	// Collect arguments
	exprs := []*ir.Expression{m.Arg}
	if m.Arg1 != nil {
		exprs = append(exprs, m.Arg1)
	}
	if m.Arg2 != nil {
		exprs = append(exprs, m.Arg2)
	}
	args, err := w.writeArgs(exprs...)
	if err != nil {
		return "", err
	}

	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("math function %v expects %d arguments, found %d", m.Fun, n, len(args))
		}
		return nil
	}

	switch m.Fun {
	case ir.MathAbs, ir.MathSign, ir.MathFloor, ir.MathCeil, ir.MathRound, ir.MathLength, ir.MathNormalize:
		if err := want(1); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", mathFunctionName(m.Fun), args[0]), nil

	case ir.MathPow:
		if err := want(2); err != nil {
			return "", err
		}
		// pow takes two arguments of the same type.
		at, bt := m.Arg.Type(), m.Arg1.Type()
		t, _ := at.BroadcastCompatible(bt)
		return fmt.Sprintf("pow(%s, %s)", splat(args[0], at, t), splat(args[1], bt, t)), nil

	case ir.MathMin, ir.MathMax:
		if err := want(2); err != nil {
			return "", err
		}
		// min and max accept a scalar only as the second argument.
		at, bt := m.Arg.Type(), m.Arg1.Type()
		t, _ := at.BroadcastCompatible(bt)
		return fmt.Sprintf("%s(%s, %s)", mathFunctionName(m.Fun), splat(args[0], at, t), args[1]), nil

	case ir.MathDot, ir.MathCross:
		if err := want(2); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s, %s)", mathFunctionName(m.Fun), args[0], args[1]), nil

	case ir.MathClamp, ir.MathMix:
		if err := want(3); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s, %s, %s)", mathFunctionName(m.Fun), args[0], args[1], args[2]), nil

	default:
		return "", fmt.Errorf("unsupported math function: %v", m.Fun)
	}
}

// mathFunctionName returns the GLSL built-in implementing a math function.
func mathFunctionName(fun ir.MathFunction) string {
	switch fun {
	case ir.MathAbs:
		return "abs"
	case ir.MathSign:
		return "sign"
	case ir.MathFloor:
		return "floor"
	case ir.MathCeil:
		return "ceil"
	case ir.MathRound:
		return "round"
	case ir.MathMin:
		return "min"
	case ir.MathMax:
		return "max"
	case ir.MathClamp:
		return "clamp"
	case ir.MathMix:
		return "mix"
	case ir.MathPow:
		return "pow"
	case ir.MathDot:
		return "dot"
	case ir.MathCross:
		return "cross"
	case ir.MathLength:
		return "length"
	case ir.MathNormalize:
		return "normalize"
	default:
		return fmt.Sprintf("math_%d", fun)
	}
}

// writeImageSample writes a texture sample with the sampler's region remap
// folded in. The nominal coordinate is mapped into the xy rectangle of the
// region and the nominal level into its z range, rounded down to a whole
// level:
//
//	textureLod(tex, tex_min.xy + (tex_max.xy - tex_min.xy) * uv,
//	    floor(tex_min.z + (tex_max.z - tex_min.z) * level))
func (w *Writer) writeImageSample(s ir.ExprImageSample) (string, error) {
	u, ok := s.Image.Kind.(ir.ExprUniform)
	if !ok {
		return "", fmt.Errorf("sampled image must be a uniform, found %T", s.Image.Kind)
	}
	image, err := w.writeUniform(u)
	if err != nil {
		return "", err
	}
	minName, maxName := ir.RegionNames(u.Name)
	lo, ok := w.uniformNames[minName]
	if !ok {
		return "", fmt.Errorf("missing region uniform %q", minName)
	}
	hi, ok := w.uniformNames[maxName]
	if !ok {
		return "", fmt.Errorf("missing region uniform %q", maxName)
	}

	args, err := w.writeArgs(s.Coordinate, s.Level)
	if err != nil {
		return "", err
	}
	coordinate, level := args[0], args[1]

	return fmt.Sprintf("textureLod(%s, %s.xy + (%s.xy - %s.xy) * %s, floor(%s.z + (%s.z - %s.z) * %s))",
		image, lo, hi, lo, coordinate, lo, hi, lo, level), nil
}
