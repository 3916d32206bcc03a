// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication, the
// fused multiply-add (GEMM), transpose, and scalar scaling. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared helpers for determinism and error reporting.
//
// Notes:
//   - Element-wise loops are shared through the private ew* engines (elementwise.go).
//   - All kernels use central validators and wrap failures via matrixErrorf.
//   - Results are always freshly allocated *Dense; operands are never mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opGEMM      = "GEMM"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - a: left matrix operand (any Matrix).
//   - b: right matrix operand (any Matrix) with the same shape as a.
//
// Returns:
//   - Matrix: a new Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete types
//     (e.g., via wrappers) to force the fallback path in tests or when needed.
func Add[T Number](a, b Matrix[T]) (Matrix[T], error) {
	return ewBinary(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same validation, loop orders, and error surface as Add. For unsigned element
// types the subtraction wraps exactly as the element type does.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Number](a, b Matrix[T]) (Matrix[T], error) {
	return ewBinary(a, b, opSub, func(x, y T) T { return x - y })
}

// Hadamard computes the element-wise product C = A ⊙ B and returns a fresh Dense result.
// Same validation, loop orders, and error surface as Add.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[T Number](a, b Matrix[T]) (Matrix[T], error) {
	return ewBinary(a, b, opHadamard, func(x, y T) T { return x * y })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order and a T-typed accumulator.
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//   - Accumulation starts from the additive identity of T and stays in T.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c); the computed product is always
//     handed back to the caller on success.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - If you can keep A and B as *Dense and cache-friendly by rows, you unlock
//     the best path here.
func Mul[T Number](a, b Matrix[T]) (Matrix[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int // loop iterators
		av, bv  T   // element temporaries
		acc     T   // running dot-product accumulator
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0 // additive identity of T
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv // accumulate product
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// GEMM computes the fused multiply-add D = A × B + C in one call.
// Implementation:
//   - Stage 1: Validate the whole pipeline via ValidateGEMMCompatible
//     (A,B,C non-nil; A.Cols == B.Rows; C shaped A.Rows × B.Cols).
//   - Stage 2: If A, B and C are all *Dense, seed the result with C's data and
//     accumulate the product into it (single fused triple loop).
//   - Stage 3: Otherwise compose the canonical kernels: Mul then Add.
//
// Behavior highlights:
//   - One validation covers every failure mode up front; the fused path
//     allocates exactly one result and touches each operand once.
//   - Both paths produce bit-identical results for identical inputs.
//
// Inputs:
//   - a: left factor (r × n).
//   - b: right factor (n × c).
//   - c: addend (r × c).
//
// Returns:
//   - Matrix: new Dense D with D[i,j] = Σ_k A[i,k]*B[k,j] + C[i,j].
//
// Errors:
//   - ErrNilMatrix (any nil input), ErrDimensionMismatch (inner or addend mismatch).
//
// Determinism:
//   - Fixed loop orders; accumulation order matches Mul exactly.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer the all-Dense form: it skips the intermediate product allocation.
func GEMM[T Number](a, b, c Matrix[T]) (Matrix[T], error) {
	// Validate the full pipeline in one place
	if err := ValidateGEMMCompatible(a, b, c); err != nil {
		return nil, matrixErrorf(opGEMM, err)
	}

	// Fused fast-path: all three operands are *Dense.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			if dc, okC := c.(*Dense[T]); okC {
				aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
				res, err := NewDense[T](aRows, bCols)
				if err != nil {
					return nil, matrixErrorf(opGEMM, err)
				}
				// Seed the accumulators with the addend, then accumulate the product.
				copy(res.data, dc.data)
				var (
					i, j, k                           int // loop iterators
					rowOffsetA, rowOffsetB, rowOffsetR int // hoisted row offsets
					av                                T   // A[i,k] temporary
				)
				for i = 0; i < aRows; i++ {
					rowOffsetA = i * aCols
					rowOffsetR = i * bCols
					for k = 0; k < aCols; k++ {
						av = da.data[rowOffsetA+k]
						rowOffsetB = k * bCols
						for j = 0; j < bCols; j++ {
							res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
						}
					}
				}

				return res, nil
			}
		}
	}

	// Composed path: canonical product, then canonical sum.
	prod, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opGEMM, err)
	}
	sum, err := Add(prod, c)
	if err != nil {
		return nil, matrixErrorf(opGEMM, err)
	}

	// Return result
	return sum, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - If you only need Aᵀ*x, prefer MatVec on A with indices swapped instead of forming Aᵀ.
func Transpose[T Number](m Matrix[T]) (Matrix[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense[T]); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Delegates to the unary element-wise engine (flat fast-path for *Dense).
//
// Errors: ErrNilMatrix (nil input).
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - For integer T the product wraps exactly as the element type does.
func Scale[T Number](m Matrix[T], alpha T) (Matrix[T], error) {
	return ewUnary(m, opScale, func(v T) T { return alpha * v })
}

// MatVec computes the matrix-vector product y = m · x.
// Implementation:
//   - Stage 1: ValidateNotNil(m), then ValidateVecLen(x, m.Cols()).
//   - Stage 2: Fast row-walk over *Dense data or generic At fallback.
//
// Inputs:
//   - m: non-nil matrix (r × c).
//   - x: vector of length c (nil is rejected).
//
// Returns:
//   - []T: freshly allocated result of length r.
//
// Errors:
//   - ErrNilMatrix (nil matrix or nil vector), ErrDimensionMismatch (length).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T Number](m Matrix[T], x []T) ([]T, error) {
	// Validate matrix presence
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate vector length against the column count
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Allocate the result vector
	y := make([]T, rows)
	var (
		i, j int // loop iterators
		acc  T   // running dot-product accumulator
	)

	// Fast-path: contiguous row walk on *Dense.
	if dm, ok := m.(*Dense[T]); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			acc = 0 // additive identity of T
			for j = 0; j < cols; j++ {
				acc += dm.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: generic interface row walk.
	var v T
	var err error
	for i = 0; i < rows; i++ {
		acc = 0 // additive identity of T
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	// Return result
	return y, nil
}
