package matrix

import (
	"fmt"
	"strings"

	"github.com/locokit/locokit/convert"
)

// Parse reads a bracketed, comma-separated, row-major matrix literal such
// as "[1, 2, 3, 4]" into a rows×cols Dense. The grammar is deliberately
// tiny:
//
//	literal = space* '[' entry{rows×cols}
//	entry   = space* number ( ',' | ']' )
//
// Exactly rows×cols entries are consumed, filling the matrix row by row
// (column index varies fastest). Characters after the final entry's
// separator are ignored, matching the configuration files this format
// comes from.
//
// The scan is an explicit-state tokenizer (skip-space, expect-open-bracket,
// scan-number, expect-separator) over an index into s, with a bounds check
// at every state transition, so malformed or short input is always a
// reported error:
//
//   - no '[' after leading spaces      → ErrNoOpenBracket
//   - input ends before all entries    → ErrUnexpectedEnd
//   - entry not a number               → convert.ErrParseNumber (wrapped)
//   - rows <= 0 or cols <= 0           → ErrBadShape
//
// Complexity: O(len(s)).
func Parse[T Float](s string, rows, cols int) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", ErrBadShape)
	}

	sc := scanner{src: s}

	// State: skip-space, then expect-open-bracket.
	if !sc.skipSpaces() {
		return nil, fmt.Errorf("Parse: at offset %d: %w", sc.pos, ErrUnexpectedEnd)
	}
	if sc.src[sc.pos] != '[' {
		return nil, fmt.Errorf("Parse: at offset %d: %w", sc.pos, ErrNoOpenBracket)
	}
	sc.pos++

	// One scan-number + expect-separator round per entry, row-major.
	for i := 0; i < rows*cols; i++ {
		if !sc.skipSpaces() {
			return nil, fmt.Errorf("Parse: entry %d: %w", i, ErrUnexpectedEnd)
		}
		tok, ok := sc.scanToken()
		if !ok {
			return nil, fmt.Errorf("Parse: entry %d: %w", i, ErrUnexpectedEnd)
		}
		v, err := convert.ParseNumber[T](tok)
		if err != nil {
			return nil, fmt.Errorf("Parse: entry %d: %w", i, err)
		}
		m.data[i] = v
		sc.pos++ // step past the ',' or ']' that ended the token
	}

	return m, nil
}

// scanner is the tokenizer state: the source text and a cursor into it.
type scanner struct {
	src string
	pos int
}

// skipSpaces advances past ' ' runes and reports whether a character
// remains at the cursor afterwards.
func (sc *scanner) skipSpaces() bool {
	for sc.pos < len(sc.src) && sc.src[sc.pos] == ' ' {
		sc.pos++
	}

	return sc.pos < len(sc.src)
}

// scanToken advances the cursor to the next ',' or ']' and returns the
// text in between, with surrounding spaces trimmed. ok is false when the
// input ends before a separator is found.
func (sc *scanner) scanToken() (tok string, ok bool) {
	start := sc.pos
	for sc.pos < len(sc.src) {
		if c := sc.src[sc.pos]; c == ',' || c == ']' {
			return strings.Trim(sc.src[start:sc.pos], " "), true
		}
		sc.pos++
	}

	return "", false
}
