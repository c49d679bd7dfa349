// Package ir defines the typed expression tree used to author shaders.
//
// The tree is built bottom-up by host code through builder functions and
// capability interfaces, and every builder type-checks its operands eagerly:
//
//	pos, _ := inputs.Get("Position")
//	clip, err := pos.Append(ir.Float(1))
//
// # Structure
//
// The package is organized around a few small pieces:
//   - ValueType: the closed set of shader value types and their broadcast rules
//   - Expression: an immutable node whose type is derived from its children
//   - Arithmetic, VectorMath, Texture: capability interfaces exposing builders
//   - Module: the linked description of one stage handed to a backend
//
// # Errors
//
// Type violations are data errors and are returned as *TypeError. Misuse of
// the authoring contract (for example asking a non-uniform for its region
// sub-uniform) panics with *ContractViolation.
package ir
