// Package convert: sentinel error set.
// This file defines ONLY package-level sentinel errors. Callers match
// them via errors.Is; context (the offending input) is attached with
// fmt.Errorf at the return site.

package convert

import "errors"

var (
	// ErrParseNumber indicates that a string could not be parsed as a
	// floating-point value.
	ErrParseNumber = errors.New("convert: malformed numeric literal")

	// ErrFormat indicates that a format string could not be satisfied by
	// its arguments (bad verb, wrong type or missing operand).
	ErrFormat = errors.New("convert: formatting failed")
)
