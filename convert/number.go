package convert

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Float is any floating-point type. FormatNumber and ParseNumber are
// deliberately not defined for integers: the %g rendering and the
// round-trip guarantee below are float semantics.
type Float interface {
	constraints.Float
}

// bitSizeOf reports the strconv bit size for the instantiated float type.
func bitSizeOf[T Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}

	return 64
}

// FormatNumber renders n in %g style: the shortest decimal or scientific
// form that parses back to exactly the same value. Unlike a fixed-decimal
// formatter it never truncates very small or very large magnitudes
// (1e-12 stays "1e-12", not "0.000000").
//
// Complexity: O(1).
func FormatNumber[T Float](n T) string {
	return strconv.FormatFloat(float64(n), 'g', -1, bitSizeOf[T]())
}

// ParseNumber parses s as a floating-point value of type T using
// locale-independent syntax (strconv: decimal, scientific, hex floats,
// "Inf", "NaN"). Malformed input returns an error matching ErrParseNumber;
// no partial value is produced.
//
// Complexity: O(len(s)).
func ParseNumber[T Float](s string) (T, error) {
	f, err := strconv.ParseFloat(s, bitSizeOf[T]())
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrParseNumber, s, err)
	}

	return T(f), nil
}

// FormatBool renders b as exactly "true" or "false", lower-case.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}
