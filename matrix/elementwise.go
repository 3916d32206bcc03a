// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise engines (ew*) to avoid duplicating
//     tight loops across the public kernels (Add/Sub/Hadamard/Scale).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED by design (internal micro-kernels).
//   - Public API uses these via thin wrappers in linear_algebra.go.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 in fast-path, i→j in fallback).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.
//   - The combiner f must be pure; it runs once per element in a fixed order.

package matrix

import "fmt"

// ewBinary computes out[i,j] = f(a[i,j], b[i,j]) for same-shaped operands.
// Time: O(r*c). Space: O(r*c). Deterministic flat or i→j loops.
func ewBinary[T Number](a, b Matrix[T], opTag string, f func(x, y T) T) (Matrix[T], error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// direct element-wise combine on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int // loop iterators (deterministic order)
	var av, bv T // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, f(av, bv)); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// ewUnary computes out[i,j] = f(m[i,j]) with a fresh Dense result.
// Time: O(r*c). Space: O(r*c). Deterministic flat or i→j loops.
func ewUnary[T Number](m Matrix[T], opTag string, f func(v T) T) (Matrix[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense → single flat loop.
	if dm, ok := m.(*Dense[T]); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ { // deterministic 0..n-1
			res.data[idx] = f(dm.data[idx])
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int // loop iterators (deterministic order)
	var v T      // element temporary
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, f(v)); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}
