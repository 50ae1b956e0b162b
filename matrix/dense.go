package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/locokit/locokit/convert"
)

// Float is any floating-point element type. Dense is float-only: the
// literal parser and the deadband filter are float semantics, so an
// integer instantiation is rejected at compile time.
type Float interface {
	constraints.Float
}

// Dense is a rows×cols matrix of T stored in a single flat slice in
// row-major order (the column index varies fastest). The shape is fixed
// at construction; only element values change afterwards.
type Dense[T Float] struct {
	r, c int // number of rows and columns, both > 0
	data []T // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to zeros.
// Non-positive dimensions return ErrBadShape before any allocation.
//
// Complexity: O(r·c) time and memory.
func New[T Float](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), or ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy: same shape, independent storage.
//
// Complexity: O(r·c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders the matrix in the single-bracket row-major literal form
// accepted by Parse: "[1, 2, 3, 4]". Elements use the same %g rendering
// as convert.FormatNumber, so Parse(m.String(), m.Rows(), m.Cols())
// reconstructs m exactly.
//
// Complexity: O(r·c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range m.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(convert.FormatNumber(v))
	}
	sb.WriteByte(']')

	return sb.String()
}
