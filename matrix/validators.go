// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/length checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape – Ensures a requested shape is positive in both dimensions.
//
// Inputs: rows, cols as requested by a constructor.
// Returns ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	// Reject non-positive dimensions before any allocation happens.
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T Number](m Matrix[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub/Hadamard kernels and compatibility guards.
func ValidateSameShape[T Number](a, b Matrix[T]) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: Matrix value.
// Errors: ErrNonSquare if rows and columns differ.
// Complexity: O(1).
// AI-Hints: Use before Trace/IdentityLike and similar diagonal-centric calls.
func ValidateSquare[T Number](m Matrix[T]) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen[T Number](x []T, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch) // vector length must match the number of columns
	}

	return nil
}

// ValidateFillLen ensures a bulk source slice holds exactly want elements.
// Used by FillFrom implementations before any element is written, so a
// failed fill is guaranteed to leave the receiver untouched.
// Time: O(1). Space: O(1).
func ValidateFillLen[T Number](src []T, want int) error {
	// nil source is treated as a length violation, not a nil-matrix one:
	// the receiver exists, the payload does not fit it.
	if len(src) != want {
		return validatorErrorf("ValidateFillLen", ErrLengthMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil[T Number](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → inner dimensions.
//
// The product a×b requires a.Cols() == b.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Mul and as the first stage of fused-kernel validation.
func ValidateMulCompatible[T Number](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	// Inner dimensions must agree for the product to exist.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateGEMMCompatible – Composite guard for the fused product-accumulate:
// NotNil(a,b,c) → a.Cols == b.Rows → c shaped as the product (a.Rows × b.Cols).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: One call validates the whole a×b + c pipeline; kernels stay branch-light.
func ValidateGEMMCompatible[T Number](a, b, c Matrix[T]) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return validatorErrorf("ValidateGEMMCompatible", err)
	}
	if err := ValidateNotNil(c); err != nil {
		return validatorErrorf("ValidateGEMMCompatible", err)
	}
	// The addend must match the product shape exactly.
	if c.Rows() != a.Rows() {
		return validatorErrorf("ValidateGEMMCompatible: Rows", ErrDimensionMismatch)
	}
	if c.Cols() != b.Cols() {
		return validatorErrorf("ValidateGEMMCompatible: Columns", ErrDimensionMismatch)
	}

	return nil
}
