// SPDX-License-Identifier: MIT

package matrix

// Test bridge for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED helpers (index math, option resolution) to the
//     external matrix_test package ONLY, without widening the prod API.
//   - This file compiles solely during `go test` by Go's _test.go rules.
//
// Risks & Maintenance:
//   - Keep the bridged signatures in sync with the private helpers; tests
//     will catch drift at compile time.

// DenseIndexOf exposes Dense.indexOf for white-box index-math tests.
func DenseIndexOf(m *Dense[float64], row, col int) (int, error) {
	return m.indexOf(row, col)
}

// ColDenseIndexOf exposes ColDense.indexOf for white-box index-math tests.
func ColDenseIndexOf(m *ColDense[float64], row, col int) (int, error) {
	return m.indexOf(row, col)
}

// ResolvedOrder exposes the effective storage order after option resolution.
func ResolvedOrder(opts ...Option) StorageOrder {
	return gatherOptions(opts...).order
}
