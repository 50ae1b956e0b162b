// Package convert provides the string-conversion half of the utility
// layer: float↔string, bool→string, printf-style formatting and 2-D
// shape validation.
//
// All functions are stateless and locale-independent. Operations that
// only make sense for floating-point values (FormatNumber, ParseNumber)
// are restricted to float types by their generic constraint, so a wrong
// instantiation fails to compile instead of misbehaving at run time.
//
// Failures are typed: malformed numeric input surfaces as ErrParseNumber
// and a broken format string as ErrFormat, both matchable with errors.Is.
// Nothing here retries, logs or falls back to a default value.
package convert
