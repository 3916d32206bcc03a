// Package matrix offers generic dense matrices and the core kernels over them.
//
// The matrix package provides:
//
//   - One Matrix[T] capability surface (Rows, Cols, At, Set, FillFrom, Clone)
//     shared by every storage strategy.
//   - Dense (row-major) and ColDense (column-major) flat-buffer strategies
//     with O(1) element addressing and bounds-checked access.
//   - Kernels: Add, Sub, Mul, fused GEMM, Hadamard, Transpose, Scale, MatVec,
//     each with a *Dense fast path and a generic interface fallback.
//   - Facades and compositions: NewZeros, NewIdentity, Trace, RowSums, ColSums.
//
// Every failure is a sentinel from errors.go, matched with errors.Is; no
// operation panics on user input. Results are deterministic: fixed loop
// orders, no hidden randomness.
//
// See the examples in this package and the examples/ directory for usage
// patterns.
package matrix
