// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// New returns a zero-initialized Matrix of size rows×cols with the storage
// strategy resolved from opts (row-major by default).
// Stage 1: gather options. Stage 2: dispatch to the strategy constructor.
// Complexity: O(r*c) zero-init.
//
// AI-Hints: Reach for New only when the layout is a runtime decision;
// otherwise NewDense/NewColDense keep the concrete type visible.
func New[T Number](rows, cols int, opts ...Option) (Matrix[T], error) {
	// Resolve the effective configuration once.
	o := gatherOptions(opts...)
	// Dispatch on the validated storage order.
	if o.order == ColMajor {
		return NewColDense[T](rows, cols)
	}

	return NewDense[T](rows, cols)
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zero-init.
//
// Note: Returns (*Dense, error) to surface ErrBadShape.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the neutral element for products and for property tests.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	ident, err := NewDense[T](n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = ident.Set(i, i, 1) // Set is bounds-safe; error is not expected after shape validation
	}

	// Return the identity matrix.
	return ident, nil
}

// CloneMatrix returns a structural clone of m (same concrete type).
// Thin wrapper over Matrix.Clone for API discoverability; a nil input
// clones to nil rather than panicking.
// Complexity: O(r*c).
func CloneMatrix[T Number](m Matrix[T]) Matrix[T] {
	// nil clones to nil; every non-nil strategy clones itself.
	if m == nil {
		return nil
	}

	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero *Dense with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike[T Number](m Matrix[T]) (*Dense[T], error) {
	// Guard the shape source before reading dimensions.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	// Read shape once and call NewDense with the same dimensions.
	return NewDense[T](m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
//
// AI-Hints: Handy to build neutral operands matching an existing system.
func IdentityLike[T Number](m Matrix[T]) (*Dense[T], error) {
	// Ensure the input is non-nil and square using the centralized validator.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}

	// Construct the identity of matching dimension.
	return NewIdentity[T](m.Rows()) // returns (*Dense, error)
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
// AI-Hints: Prefer passing *Dense operands for single flat-loop fast-path.
func Sum[T Number](a, b Matrix[T]) (Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff[T Number](a, b Matrix[T]) (Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
//
// AI-Hints: Prefer Dense to unlock the cache-friendly fast path.
func Product[T Number](a, b Matrix[T]) (Matrix[T], error) { return Mul(a, b) }

// ProductAdd is an alias for GEMM: fused a × b + c.
// Complexity: O(r*n*c).
func ProductAdd[T Number](a, b, c Matrix[T]) (Matrix[T], error) { return GEMM(a, b, c) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
// Complexity: O(rc).
func HadamardProd[T Number](a, b Matrix[T]) (Matrix[T], error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
//
// AI-Hints: Good for small helpers and chaining.
func T[E Number](m Matrix[E]) (Matrix[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy[T Number](m Matrix[T], alpha T) (Matrix[T], error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
// Complexity: O(rc).
//
// AI-Hints: For repeated calls with the same shape, reuse x outside.
func MatVecMul[T Number](m Matrix[T], x []T) ([]T, error) { return MatVec(m, x) }

// ---------- Compositions (built on the kernels above) ----------

// Trace returns the sum of the main diagonal of a square matrix.
// Stage 1: ValidateSquareNonNil. Stage 2: fast diagonal walk on *Dense,
// generic At fallback otherwise.
// Complexity: O(n). Errors: ErrNilMatrix, ErrNonSquare.
func Trace[T Number](m Matrix[T]) (T, error) {
	var tr T // running diagonal sum (additive identity)

	// Validate structure before touching elements.
	if err := ValidateSquareNonNil(m); err != nil {
		return tr, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	// Fast-path: stride walk over the flat buffer.
	if dm, ok := m.(*Dense[T]); ok {
		for i := 0; i < n; i++ {
			tr += dm.data[i*n+i]
		}

		return tr, nil
	}

	// Fallback: generic diagonal reads.
	var (
		i   int
		v   T
		err error
	)
	for i = 0; i < n; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return tr, matrixErrorf(opTrace, err)
		}
		tr += v
	}

	return tr, nil
}

// onesVec returns a length-n vector of multiplicative identities.
// Internal building block for the *Sums facades.
// Complexity: O(n).
func onesVec[T Number](n int) []T {
	ones := make([]T, n)
	for i := 0; i < n; i++ {
		ones[i] = 1
	}

	return ones
}

// RowSums returns the per-row sums of m, computed as m · 1.
// Complexity: O(rc). Errors: ErrNilMatrix.
//
// AI-Hints: Cheap structural summary; pairs well with ColSums for marginals.
func RowSums[T Number](m Matrix[T]) ([]T, error) {
	// Guard before reading the shape for the ones vector.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	// m · 1 collapses columns into per-row sums.
	return MatVec(m, onesVec[T](m.Cols()))
}

// ColSums returns the per-column sums of m, computed as mᵀ · 1.
// Complexity: O(rc) plus one transpose materialization. Errors: ErrNilMatrix.
func ColSums[T Number](m Matrix[T]) ([]T, error) {
	// Transpose validates m; its error carries the sentinel through.
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	// mᵀ · 1 collapses rows of the transpose, i.e. columns of m.
	return MatVec(mt, onesVec[T](mt.Cols()))
}
