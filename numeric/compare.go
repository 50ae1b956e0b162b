package numeric

// EqualWithin reports whether a and b differ by at most tol.
// The tolerance is inclusive: EqualWithin(x, x+tol, tol) is true.
//
// tol is expected to be non-negative but is not validated — a negative
// tolerance simply makes the predicate unsatisfiable, which is accepted
// behavior, not an error.
//
// Complexity: O(1).
func EqualWithin[T Number](a, b, tol T) bool {
	return abs(a-b) <= tol
}

// EqualSlices reports whether a and b have the same length and all
// corresponding elements compare equal with the native == operator.
// No tolerance is applied; use EqualWithin per element when approximate
// comparison is wanted.
//
// Complexity: O(n).
func EqualSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Sign returns +1 when v > 0, -1 when v < 0 and 0 when v == 0.
//
// Complexity: O(1).
func Sign[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// abs returns the absolute value of x. math.Abs is float64-only, so the
// generic form is open-coded here.
func abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
