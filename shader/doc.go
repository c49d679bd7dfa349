// Package shader holds the per-stage registries a shader callback works
// with: the read-only Inputs, the Outputs it assigns, and the uniform
// Parameters it requests. Layout describes the interleaved vertex data the
// vertex stage inputs are derived from.
//
// Registry lookups that depend on shader data return *Error. Misuse of the
// authoring contract, such as setting the vertex position from a fragment
// callback or requesting a parameter with two different types, panics with
// *ir.ContractViolation.
package shader
