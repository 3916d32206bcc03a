// SPDX-License-Identifier: MIT

// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is the concrete, row-major strategy behind the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Compile-time conformance checks: Dense must satisfy the capability
// interface and fmt.Stringer for every admissible element kind.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// String rendering constants shared by the dense strategies.
const (
	_fmtRowOpen  = "["  // opening bracket of a rendered row
	_fmtRowClose = "]\n" // closing bracket plus row terminator
	_fmtSep      = ", " // separator between row elements
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zero values.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}
	// Allocate flat slice
	data := make([]T, rows*cols)

	// Return initialized Dense
	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewDenseFrom creates an r×c Dense matrix loaded from a row-major slice.
// Stage 1 (Validate): shape via NewDense, then len(src) == rows*cols.
// Stage 2 (Execute): copy src into the fresh backing slice.
// Complexity: O(r*c) time and memory. src is copied, never aliased.
func NewDenseFrom[T Number](rows, cols int, src []T) (*Dense[T], error) {
	// Allocate through the strict constructor
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	// Bulk-load with length validation
	if err = m.FillFrom(src); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// Shape returns (rows, cols) in a single call.
// Complexity: O(1).
func (m *Dense[T]) Shape() (int, int) {
	return m.r, m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// The sentinel is returned bare; At/Set add their method context.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Stage 3 (Finalize): return value or wrapped error.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf("At", row, col, err)
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Stage 3 (Finalize): return error or nil. On failure no element changes.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// FillFrom loads every element from src, interpreted row-major.
// Stage 1 (Validate): len(src) == r*c via the central validator.
// Stage 2 (Execute): single copy into the backing slice.
// All-or-nothing: a failed validation writes nothing.
// Complexity: O(r*c).
func (m *Dense[T]) FillFrom(src []T) error {
	// Validate the payload length before any write
	if err := ValidateFillLen(src, m.r*m.c); err != nil {
		return fmt.Errorf("Dense.FillFrom: %w", err)
	}
	// Row-major source onto row-major storage: one flat copy
	copy(m.data, src)

	return nil
}

// Fill assigns v to every element of the matrix.
// Complexity: O(r*c). Deterministic flat order.
func (m *Dense[T]) Fill(v T) {
	for idx := 0; idx < len(m.data); idx++ { // deterministic 0..n-1
		m.data[idx] = v
	}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() Matrix[T] {
	// Allocate new slice for data copy
	copyData := make([]T, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// Do calls f for every element in row-major order and stops early
// when f returns false.
// Complexity: O(r*c) worst case; early exit honors f's verdict.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[i*m.c+j]) {
				return // visitor asked to stop
			}
		}
	}
}

// Apply replaces every element with f(i, j, v) in row-major order.
// The transform runs in place; shape never changes.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int // loop iterators and row offset
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen) // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(fmt.Sprintf("%v", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep) // separate values with comma
			}
		}
		sb.WriteString(_fmtRowClose) // close row
	}

	return sb.String()
}
