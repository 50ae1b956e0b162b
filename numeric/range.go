package numeric

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Clamp constrains v to the inclusive interval [lo, hi].
//
// Precondition: lo <= hi. Violating it is a programmer error and panics;
// the bounds are never silently swapped, because a swapped call site is a
// bug the caller must see, not a request to reinterpret.
//
// Complexity: O(1).
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		panic(fmt.Sprintf("numeric: Clamp called with lo > hi (%v > %v)", lo, hi))
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Deadband forces x to zero inside the open interval (-band, band) and
// returns it unchanged otherwise. The operation is idempotent:
// Deadband(Deadband(x, b), b) == Deadband(x, b) for every x and b >= 0.
//
// Complexity: O(1).
func Deadband[T Number](x, band T) T {
	if x < band && x > -band {
		return 0
	}

	return x
}

// DeadbandClamp applies Deadband first, then clamps the result into
// [lo, hi]. The order matters: a value inside the band becomes zero even
// when zero lies outside [lo, hi], and is then pulled to the nearer bound.
//
// Precondition: lo <= hi (same panic contract as Clamp).
//
// Complexity: O(1).
func DeadbandClamp[T Number](x, band, lo, hi T) T {
	return Clamp(Deadband(x, band), lo, hi)
}

// MapToRange remaps x from the interval [inLo, inHi] onto [outLo, outHi]
// linearly:
//
//	outLo + (x-inLo)·(outHi-outLo)/(inHi-inLo)
//
// x outside the input interval extrapolates along the same line. When
// inLo == inHi the division yields ±Inf or NaN by ordinary IEEE-754
// arithmetic; the degenerate interval is deliberately not guarded.
//
// Complexity: O(1).
func MapToRange[T Float](x, inLo, inHi, outLo, outHi T) T {
	return outLo + (x-inLo)*(outHi-outLo)/(inHi-inLo)
}
