// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage strategies and kernels.
// This file intentionally contains ONLY domain-facing types (the element
// constraint, the capability interface, the storage-order enum). Errors and
// options live in dedicated files (errors.go, options.go) per the global
// conventions.
package matrix

// Number is the element constraint for every matrix in this package:
// the builtin integer and floating-point kinds, including named types
// whose underlying type is one of them.
//
// Arithmetic inside kernels follows the element type exactly: integer
// instantiations keep wrap-around semantics, float instantiations keep
// IEEE-754 semantics. No implicit widening is performed anywhere.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// StorageOrder selects the memory layout of a dense strategy.
//
//   - RowMajor — elements of one row are adjacent (offset i*cols + j).
//     The default; unlocks the flat fast-paths in kernels.
//
//   - ColMajor — elements of one column are adjacent (offset j*rows + i).
//     Useful when a consumer walks columns; kernels fall back to the
//     interface path and still produce identical results.
type StorageOrder int

const (
	// RowMajor order: row-contiguous flat buffer, kernel fast-path eligible.
	RowMajor StorageOrder = iota

	// ColMajor order: column-contiguous flat buffer, served via the generic path.
	ColMajor
)

// Matrix is the capability surface every storage strategy provides.
// Shape is fixed at construction; all mutation is element-wise and
// bounds-checked. Implementations must never panic on user input:
// every failure is reported through a sentinel from errors.go.
//
// Complexity notes: all methods are expected O(1) except FillFrom and
// Clone (O(rows*cols)).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid; the matrix is
	// left unchanged on failure.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// FillFrom loads every element from src, interpreted in row-major
	// order regardless of the receiver's internal layout.
	// Returns ErrLengthMismatch when len(src) != Rows()*Cols(); no
	// element is written on failure (all-or-nothing).
	// Complexity: O(rows*cols).
	FillFrom(src []T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
