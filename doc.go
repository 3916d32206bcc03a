// Package lvlmat is a compact, generics-first toolkit for dense matrices —
// one flat buffer, explicit errors, and the handful of kernels you reach
// for every day: add, multiply, fused multiply-add.
//
// 🚀 What is lvlmat?
//
//	A small, deterministic library that brings together:
//		• Element-type freedom: one Matrix[T] surface for ints and floats alike
//		• Dense storage: row-major and column-major strategies, O(1) addressing
//		• Safe access: bounds-checked At/Set that return sentinels, never panic
//		• Bulk loading: FillFrom with strict length validation (all-or-nothing)
//		• Kernels: Add, Sub, Mul, fused GEMM, Hadamard, Transpose, Scale, MatVec
//		• Facades: NewZeros, NewIdentity, Trace, RowSums, ColSums and friends
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, errors.Is-matching, no panics on data
//   - Deterministic – fixed loop orders, reproducible results on every run
//   - Extensible – implement Matrix[T] once and every kernel accepts your type
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/   — Matrix[T] interface, Dense/ColDense storage, kernels & facades
//	examples/ — runnable end-to-end scenarios
//
// Quick ASCII example:
//
//	    ⎡1 2⎤   ⎡5 6⎤   ⎡1 1⎤   ⎡20 23⎤
//	    ⎣3 4⎦ × ⎣7 8⎦ + ⎣1 1⎦ = ⎣44 51⎦
//
//	one GEMM call: multiply, then accumulate, one result.
//
// Next up: sparse strategies, views, and in-place kernel variants.
// Dive into README.md for full examples and the roadmap.
//
//	go get github.com/katalvlaran/lvlmat/matrix
package lvlmat
