package matrix

import "github.com/locokit/locokit/numeric"

// ApplyDeadband forces every element inside the open interval
// (-band, band) to zero, in place. Elements are independent, so the
// traversal order cannot affect the result, and the operation is
// idempotent like its scalar counterpart numeric.Deadband.
//
// The receiver is the only state touched; concurrent use of the same
// matrix is the caller's synchronization responsibility.
//
// Complexity: O(r·c).
func (m *Dense[T]) ApplyDeadband(band T) {
	for i, v := range m.data {
		m.data[i] = numeric.Deadband(v, band)
	}
}
