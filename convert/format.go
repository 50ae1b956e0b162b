package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// printfVerbs is the set of conversion verbs fmt's printf family accepts.
const printfVerbs = "vTtbcdoOqxXUeEfFgGsp"

// Sprintf formats args according to a printf-style format string and
// returns the result, or an error matching ErrFormat when the format
// cannot be satisfied by its operands.
//
// Go's fmt reports bad verbs, mismatched types and wrong operand counts
// by embedding "%!" fault marks in the output rather than by returning
// an error. Sprintf instead validates the directives against the
// operands up front — unknown verbs, operand count mismatches and
// verb/kind mismatches (the checks go vet's printf analysis applies) —
// so a broken call is an explicit error and a valid call returns fmt's
// output untouched. Operand data is never inspected: it may contain any
// text, including the "%!" sequence itself.
//
// Complexity: O(len(format) + len of formatted output).
func Sprintf(format string, args ...any) (string, error) {
	if err := checkFormat(format, args); err != nil {
		return "", fmt.Errorf("%w: format %q with %d operand(s): %v", ErrFormat, format, len(args), err)
	}

	return fmt.Sprintf(format, args...), nil
}

// checkFormat walks the format's directives (flags, explicit [n] index,
// width, precision, verb) and verifies each consumed operand exists and
// has a kind the verb can render. It reports the first violation found.
func checkFormat(format string, args []any) error {
	var (
		next    int  // index of the next operand to consume
		indexed bool // an explicit [n] operand index was seen
	)

	// take consumes one operand for verb and validates its kind.
	take := func(verb byte) error {
		if next >= len(args) {
			return fmt.Errorf("missing operand for %%%c", verb)
		}
		arg := args[next]
		next++
		if !operandMatches(verb, arg) {
			return fmt.Errorf("operand %d (%T) does not match %%%c", next, arg, verb)
		}

		return nil
	}

	i := 0
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		i++
		// %% is a literal percent and consumes nothing.
		if i < len(format) && format[i] == '%' {
			i++
			continue
		}
		// flags
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		// explicit operand index: %[n]verb
		if i < len(format) && format[i] == '[' {
			j, n := i+1, 0
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				n = n*10 + int(format[j]-'0')
				j++
			}
			if j >= len(format) || format[j] != ']' || n == 0 {
				return errors.New("malformed operand index")
			}
			indexed = true
			next = n - 1
			i = j + 1
		}
		// width: '*' consumes an int operand, digits consume nothing
		if i < len(format) && format[i] == '*' {
			if err := take('*'); err != nil {
				return err
			}
			i++
		} else {
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}
		// precision
		if i < len(format) && format[i] == '.' {
			i++
			if i < len(format) && format[i] == '*' {
				if err := take('*'); err != nil {
					return err
				}
				i++
			} else {
				for i < len(format) && format[i] >= '0' && format[i] <= '9' {
					i++
				}
			}
		}
		if i >= len(format) {
			return errors.New("format ends without a verb")
		}
		verb := format[i]
		i++
		if strings.IndexByte(printfVerbs, verb) < 0 {
			return fmt.Errorf("unknown verb %%%c", verb)
		}
		if err := take(verb); err != nil {
			return err
		}
	}
	// With explicit indexes operands may legitimately be reused or
	// skipped, so the trailing-extra check only applies without them.
	if !indexed && next < len(args) {
		return fmt.Errorf("%d extra operand(s)", len(args)-next)
	}

	return nil
}

// operandMatches reports whether arg's kind is renderable by verb
// ('*' stands for a width/precision operand, which must be an int).
func operandMatches(verb byte, arg any) bool {
	if _, ok := arg.(fmt.Formatter); ok {
		return true // a Formatter handles every verb itself
	}
	v := reflect.ValueOf(arg)
	if !v.IsValid() {
		return verb == 'v' // untyped nil renders only under %v
	}
	k := v.Kind()
	switch verb {
	case 'v', 'T':
		return true
	case 't':
		return k == reflect.Bool
	case 'd', 'b', 'o', 'O', 'c', 'U', '*':
		return isIntKind(k)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return isFloatKind(k)
	case 'x', 'X':
		return isIntKind(k) || isFloatKind(k) || k == reflect.String || isByteSlice(v) || isTextual(arg)
	case 'q':
		return isIntKind(k) || k == reflect.String || isTextual(arg)
	case 's':
		if isTextual(arg) || k == reflect.String || isByteSlice(v) {
			return true
		}
		// composites format their elements recursively under %s
		return k == reflect.Slice || k == reflect.Array || k == reflect.Map ||
			k == reflect.Struct || k == reflect.Ptr
	case 'p':
		return k == reflect.Ptr || k == reflect.UnsafePointer || k == reflect.Slice ||
			k == reflect.Map || k == reflect.Chan || k == reflect.Func
	default:
		return false
	}
}

// isIntKind reports whether k is any integer kind, signed or unsigned.
func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Uintptr
}

// isFloatKind reports whether k is a float or complex kind.
func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64 ||
		k == reflect.Complex64 || k == reflect.Complex128
}

// isByteSlice reports whether v is a []byte (or a type based on it).
func isByteSlice(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8
}

// isTextual reports whether arg renders itself as text via the
// interfaces fmt consults for string verbs.
func isTextual(arg any) bool {
	switch arg.(type) {
	case fmt.Stringer, error:
		return true
	default:
		return false
	}
}
