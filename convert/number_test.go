package convert_test

import (
	"math"
	"testing"

	"github.com/locokit/locokit/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatNumber_NoTruncation verifies that very small and very large
// magnitudes keep their value instead of collapsing to fixed decimals.
func TestFormatNumber_NoTruncation(t *testing.T) {
	assert.Equal(t, "1e-12", convert.FormatNumber(1e-12), "tiny magnitudes must not truncate to 0")
	assert.Equal(t, "3.5e+20", convert.FormatNumber(3.5e20), "large magnitudes use scientific form")
	assert.Equal(t, "0.25", convert.FormatNumber(0.25), "ordinary values stay in decimal form")
	assert.Equal(t, "0", convert.FormatNumber(0.0), "zero renders as 0")
	assert.Equal(t, "-1.5", convert.FormatNumber(-1.5), "sign is preserved")
}

// TestFormatNumber_Float32 exercises the 32-bit instantiation: the
// rendering is shortest-form for float32, not for its float64 widening.
func TestFormatNumber_Float32(t *testing.T) {
	assert.Equal(t, "0.1", convert.FormatNumber(float32(0.1)), "float32 renders at float32 precision")
}

// TestParseNumber_Basic covers plain, scientific and signed input.
func TestParseNumber_Basic(t *testing.T) {
	got, err := convert.ParseNumber[float64]("3.25")
	require.NoError(t, err, "well-formed decimal must parse")
	assert.Equal(t, 3.25, got)

	got, err = convert.ParseNumber[float64]("-2e3")
	require.NoError(t, err, "scientific notation must parse")
	assert.Equal(t, -2000.0, got)
}

// TestParseNumber_Malformed verifies the typed failure: no partial value,
// error matches ErrParseNumber.
func TestParseNumber_Malformed(t *testing.T) {
	_, err := convert.ParseNumber[float64]("12.3.4")
	assert.ErrorIs(t, err, convert.ErrParseNumber, "malformed literal must report ErrParseNumber")

	_, err = convert.ParseNumber[float64]("")
	assert.ErrorIs(t, err, convert.ErrParseNumber, "empty input must report ErrParseNumber")

	_, err = convert.ParseNumber[float32]("not-a-number")
	assert.ErrorIs(t, err, convert.ErrParseNumber, "float32 instantiation reports the same sentinel")
}

// TestParseNumber_RoundTrip checks ParseNumber(FormatNumber(v)) == v for
// values across the representable range; %g shortest form makes the
// round trip exact, not merely approximate.
func TestParseNumber_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1, 3.141592653589793, 1e-300, 7.5e250, -2.2250738585072014e-308} {
		s := convert.FormatNumber(v)
		got, err := convert.ParseNumber[float64](s)
		require.NoError(t, err, "formatted value must parse back")
		assert.Equal(t, v, got, "round trip must be exact for %v", v)
	}
}

// TestParseNumber_SpecialValues documents that Inf parses (strconv syntax).
func TestParseNumber_SpecialValues(t *testing.T) {
	got, err := convert.ParseNumber[float64]("+Inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1), "+Inf parses to positive infinity")
}

// TestFormatBool_Exact verifies the exact lower-case renderings.
func TestFormatBool_Exact(t *testing.T) {
	assert.Equal(t, "true", convert.FormatBool(true))
	assert.Equal(t, "false", convert.FormatBool(false))
}
