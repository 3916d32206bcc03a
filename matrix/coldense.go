// SPDX-License-Identifier: MIT

// Package matrix: ColDense is the column-major strategy behind the Matrix
// interface. It mirrors Dense element-for-element while keeping columns
// contiguous, which suits column-walking consumers. Kernels reach it through
// the generic interface path and must produce results identical to Dense.
package matrix

import (
	"fmt"
	"strings"
)

// Compile-time conformance checks for the column-major strategy.
var (
	_ Matrix[float64] = (*ColDense[float64])(nil)
	_ Matrix[int32]   = (*ColDense[int32])(nil)
	_ fmt.Stringer    = (*ColDense[float64])(nil)
)

// colDenseErrorf wraps an underlying error with ColDense method context.
func colDenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("ColDense.%s(%d,%d): %w", method, row, col, err)
}

// ColDense is a column-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements column by column.
type ColDense[T Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c, offset j*r + i
}

// NewColDense creates an r×c ColDense matrix initialized to zero values.
// Same contract as NewDense: non-positive dimensions yield ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewColDense[T Number](rows, cols int) (*ColDense[T], error) {
	// Validate dimensions
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewColDense: %w", err)
	}
	// Allocate flat slice
	data := make([]T, rows*cols)

	// Return initialized ColDense
	return &ColDense[T]{r: rows, c: cols, data: data}, nil
}

// NewColDenseFrom creates an r×c ColDense matrix loaded from a row-major slice.
// The source stays row-major by contract; loading transposes into the
// column-contiguous buffer.
// Complexity: O(r*c).
func NewColDenseFrom[T Number](rows, cols int, src []T) (*ColDense[T], error) {
	m, err := NewColDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.FillFrom(src); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *ColDense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *ColDense[T]) Cols() int {
	return m.c
}

// Shape returns (rows, cols) in a single call.
// Complexity: O(1).
func (m *ColDense[T]) Shape() (int, int) {
	return m.r, m.c
}

// indexOf computes the flat column-major index for (row, col) or returns
// ErrOutOfRange bare; At/Set add their method context.
// Complexity: O(1).
func (m *ColDense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Columns are contiguous: stride is the row count.
	return col*m.r + row, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *ColDense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, colDenseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). On failure no element changes.
// Complexity: O(1).
func (m *ColDense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return colDenseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// FillFrom loads every element from src, interpreted row-major.
// Stage 1 (Validate): len(src) == r*c via the central validator.
// Stage 2 (Execute): transposing walk src[i*c+j] → data[j*r+i].
// All-or-nothing: a failed validation writes nothing.
// Complexity: O(r*c).
func (m *ColDense[T]) FillFrom(src []T) error {
	// Validate the payload length before any write
	if err := ValidateFillLen(src, m.r*m.c); err != nil {
		return fmt.Errorf("ColDense.FillFrom: %w", err)
	}
	// Transpose row-major source into column-contiguous storage
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.data[j*m.r+i] = src[i*m.c+j]
		}
	}

	return nil
}

// Fill assigns v to every element of the matrix.
// Complexity: O(r*c).
func (m *ColDense[T]) Fill(v T) {
	for idx := 0; idx < len(m.data); idx++ {
		m.data[idx] = v
	}
}

// Clone returns a deep copy of the ColDense matrix.
// Complexity: O(r*c).
func (m *ColDense[T]) Clone() Matrix[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &ColDense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer; rows render top-to-bottom exactly as
// Dense renders them, so the two strategies print identically.
// Complexity: O(r*c).
func (m *ColDense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%v", m.data[j*m.r+i]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
