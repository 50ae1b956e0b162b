// Package matrix provides a generic fixed-shape dense matrix for control
// code: row-major storage, bounds-checked access, a parser for the
// bracketed literal form used in configuration values, and element-wise
// deadband filtering.
//
// 🚀 What you get:
//
//	• Dense[T]      — rows×cols matrix of any float type, flat row-major slice
//	• Parse         — "[1, 2, 3, 4]" → 2×2 matrix, a small explicit-state
//	                  tokenizer with bounds checks at every transition
//	• String        — the matching literal rendering (Parse of String is identity)
//	• ApplyDeadband — per-element zero zone, applied in place
//
// The shape is fixed at construction and every accessor validates its
// indices: misuse returns ErrOutOfRange, malformed literals return typed
// parse errors matched via errors.Is. No method panics on user input and
// no method touches state outside its receiver, so distinct matrices may
// be used from distinct goroutines without coordination; sharing one
// matrix between goroutines is the caller's synchronization problem.
package matrix
