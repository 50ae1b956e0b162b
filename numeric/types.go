// Package numeric: shared generic constraints.
// This file defines ONLY the type sets used across the package so that
// signatures stay short and the accepted types are documented in one place.

package numeric

import "golang.org/x/exp/constraints"

// Number is any signed numeric type: signed integers and floats.
// Unsigned integers are excluded on purpose — deadband and sign logic
// negate their argument, which is meaningless for unsigned values.
type Number interface {
	constraints.Signed | constraints.Float
}

// Float is any floating-point type. Operations that divide or carry a
// tolerance are restricted to Float so that integer truncation can never
// silently change a result.
type Float interface {
	constraints.Float
}
