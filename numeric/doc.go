// Package numeric provides type-generic comparison and range transforms
// for control-loop code: tolerance equality, exact slice equality, range
// clamping, deadband filtering, sign extraction, linear remapping and map
// key membership.
//
// Every function is a pure leaf: it reads only its arguments, allocates
// nothing, holds no state and may be called from any number of goroutines
// concurrently. Failure policy follows one uniform discipline:
//
//   - user-facing operations cannot fail — they are total over their
//     (constrained) input types;
//   - violated preconditions are programmer errors and panic
//     (Clamp with lo > hi).
//
// Type restrictions are expressed as generic constraints, so passing an
// unsupported type is rejected at compile time, never at run time.
package numeric
