package convert

// CheckShape reports whether arr is an exactly rows×cols rectangle: the
// outer slice has length rows and every inner slice has length cols.
// Any mismatch — wrong row count, a ragged row, or negative expectations —
// yields false; CheckShape never panics and never mutates arr.
//
// Complexity: O(rows).
func CheckShape[T any](arr [][]T, rows, cols int) bool {
	if len(arr) != rows {
		return false
	}
	for i := range arr {
		if len(arr[i]) != cols {
			return false
		}
	}

	return true
}
