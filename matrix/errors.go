// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors, of which this
// package currently has none.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across
// logs. Context (method, indices, offsets) is attached at the return site
// with fmt.Errorf("...: %w", ErrX); callers still match via errors.Is.

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	// Constructors validate shape before allocating.
	ErrBadShape = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNoOpenBracket is returned by Parse when the literal does not
	// start with '[' (after optional leading spaces).
	ErrNoOpenBracket = errors.New("matrix: literal missing open bracket")

	// ErrUnexpectedEnd is returned by Parse when the input ends before
	// rows×cols tokens and their separators have been consumed — an
	// under-supplied literal is a reported parse failure, not a fault.
	ErrUnexpectedEnd = errors.New("matrix: literal ended unexpectedly")
)
