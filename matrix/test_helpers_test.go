// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for strategies/kernels.
//   • Keep all data finite and well-formed so tests compare exactly where possible.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix[T] to forward all methods.
//   - Stage 2: Use hide[T]{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type assertion in code under test.
//
// Notes:
//   - Useful to assert fast-path == fallback exactly.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one
//     *Dense to isolate path differences.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.NewDense[T](r,c).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
//
// AI-Hints:
//   - When you need non-zero data, pair with RandomFill or manual Set.
func MustDense[T matrix.Number](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustColDense ALLOCATES an r×c *ColDense or fails the test (fatal on error).
// Same contract as MustDense with the column-major strategy.
func MustColDense[T matrix.Number](t *testing.T, r, c int) *matrix.ColDense[T] {
	t.Helper()
	m, err := matrix.NewColDense[T](r, c)
	if err != nil {
		t.Fatalf("NewColDense(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity Matrix (main diagonal = 1, else 0).
// Implementation:
//   - Stage 1: matrix.NewIdentity[T](n).
//   - Stage 2: t.Fatalf on error.
//
// Complexity:
//   - Time O(n^2) (initialization), Space O(n^2).
//
// AI-Hints:
//   - Great as a baseline for perturbations and property tests.
func IdentityDense[T matrix.Number](t *testing.T, n int) matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewIdentity[T](n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
//
// Behavior highlights:
//   - Deterministic fixture creation with explicit values; fills through Set
//     on purpose so fixtures do not depend on FillFrom correctness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use with CompareExact for integer-like matrices.
func NewFilledDense[T matrix.Number](t *testing.T, r, c int, vals []T) *matrix.Dense[T] {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense[T](t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// NewFilledColDense BUILDS r×c *ColDense from a row-major flat slice.
// Mirror of NewFilledDense for the column-major strategy; same Set-based fill.
func NewFilledColDense[T matrix.Number](t *testing.T, r, c int, vals []T) *matrix.ColDense[T] {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledColDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustColDense[T](t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandomFill FILLS a float64 Matrix with deterministic U(-1,1) values by seed.
// Implementation:
//   - Stage 1: rng := rand.New(rand.NewSource(seed)).
//   - Stage 2: For each cell, Set(i,j, rng.Float64()*2-1).
//
// Behavior highlights:
//   - Reproducible randomness for property tests.
//
// Complexity:
//   - Time O(r*c), Space O(1) extra.
//
// AI-Hints:
//   - Sweep multiple seeds in table-driven tests to increase coverage.
func RandomFill(t *testing.T, m matrix.Matrix[float64], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var (
		i, j int     // loop iterators
		v    float64 // random value
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
			if err = m.Set(i, j, v); err != nil {
				t.Fatalf("Set RandomFill(%d,%d): %v", i, j, err)
			}
		}
	}
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Implementation:
//   - Stage 1: Allocate Dense.
//   - Stage 2: Fill via seeded RNG, row-major.
//
// AI-Hints:
//   - Use identical seeds across fast vs fallback to isolate path differences.
func RandFilledDense(t *testing.T, r, c int, seed int64) matrix.Matrix[float64] {
	t.Helper()
	m := MustDense[float64](t, r, c)
	RandomFill(t, m, seed)

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
// Provides concise error text with indices; avoids boilerplate in tests.
// Complexity: O(1) per call.
func MustSet[T matrix.Number](t *testing.T, m matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
// Clear failure site on bounds/impl errors; pair with CompareExact.
// Complexity: O(1) per call.
func MustAt[T matrix.Number](t *testing.T, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustFillFrom LOADS src into m or fails the test.
// Complexity: O(r*c) per call.
func MustFillFrom[T matrix.Number](t *testing.T, m matrix.Matrix[T], src []T) {
	t.Helper()
	if err := m.FillFrom(src); err != nil {
		t.Fatalf("FillFrom(len=%d): %v", len(src), err)
	}
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate and compare with == (no tolerances).
//
// Behavior highlights:
//   - Fails with exact mismatch location.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use only for integer-like or carefully crafted small matrices.
func CompareExact[T matrix.Number](t *testing.T, want [][]T, m matrix.Matrix[T]) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v T
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareMatrices ASSERTS two matrices agree element-for-element (exact ==).
// Used to pin fast-path results against fallback-path results.
// Complexity: O(r*c).
func CompareMatrices[T matrix.Number](t *testing.T, want, got matrix.Matrix[T]) {
	t.Helper()
	if want.Rows() != got.Rows() || want.Cols() != got.Cols() {
		t.Fatalf("shape: got %dx%d; want %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	var i, j int // loop iterators
	var a, b T
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			a = MustAt(t, want, i, j)
			b = MustAt(t, got, i, j)
			if a != b {
				t.Fatalf("mismatch at [%d,%d]: got %v; want %v", i, j, b, a)
			}
		}
	}
}

// AssertErrorIs ASSERTS errors.Is(err, target); fatal with both values otherwise.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
// Implementation:
//   - Stage 1: defer recover().
//   - Stage 2: t.Fatalf if recover()==nil.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// ---------- benchmark helpers (testing.B flavor) ----------

// mustDense ALLOCATES an n×m float64 Dense or aborts the benchmark.
func mustDense(b *testing.B, r, c int) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.NewDense[float64](r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fillDenseRand FILLS a Dense with deterministic U(-1,1) values by seed.
func fillDenseRand(b *testing.B, m *matrix.Dense[float64], seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
