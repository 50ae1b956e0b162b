// Package locokit is the shared utility layer of a legged-robot control
// codebase — small, stateless, type-generic helpers for numbers, strings
// and fixed-shape matrices.
//
// 🚀 What is locokit?
//
//	A dependency-light collection of pure leaf functions used across
//	control loops and configuration loaders:
//		• Comparison: tolerance equality, exact slice equality, sign
//		• Ranges: clamp, deadband (scalar & matrix), linear remap
//		• Containers: map key membership
//		• Conversion: float↔string, bool→string, printf-style formatting
//		• Matrices: fixed-shape row-major Dense, bracketed-literal parsing
//
// ✨ Why locokit?
//
//   - Deterministic – every call depends only on its arguments
//   - Reentrant – no global state, no locks, no I/O, no logging
//   - Type-safe – float-only operations rejected at compile time via
//     generic constraints, never by a runtime branch
//   - Explicit failures – sentinel errors matched with errors.Is;
//     panics reserved for programmer errors (violated preconditions)
//
// Everything is organized under three subpackages:
//
//	numeric/ — tolerance equality, clamp, deadband, sign, remap, membership
//	convert/ — number/bool/string conversion, formatting, shape checks
//	matrix/  — generic row-major Dense matrix + "[a, b, c, d]" literal parser
//
// Quick example:
//
//	m, err := matrix.Parse[float64]("[1, 2, 3, 4]", 2, 2)
//	if err != nil { ... }
//	m.ApplyDeadband(0.5)
//
//	go get github.com/locokit/locokit
package locokit
