// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Storage order applies at construction only; an existing matrix never
//     changes layout. New(...) resolves the order and picks the strategy.
//   - Both layouts expose the same Matrix[T] surface; results of every kernel
//     are layout-independent (covered by tests).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the layout used when no storage option is supplied.
	// Row-major keeps kernels on the flat fast-path.
	DefaultOrder = RowMajor
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOrderInvalid = "matrix: WithOrder: unknown storage order"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	order StorageOrder // DefaultOrder
}

// ---------- Constructors (WithX) ----------

// WithOrder selects the storage layout for a matrix under construction.
// Implementation:
//   - Stage 1: validate order is a known StorageOrder value.
//   - Stage 2: return a setter that writes order into Options.
//
// Inputs:
//   - order: RowMajor or ColMajor.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when order is unknown.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithOrder(order StorageOrder) Option {
	if order != RowMajor && order != ColMajor {
		panic(panicOrderInvalid)
	}

	// Assign validated order
	return func(o *Options) { o.order = order }
}

// WithRowMajor selects the row-major layout (the default, made explicit).
// Complexity: O(1).
func WithRowMajor() Option {
	return func(o *Options) { o.order = RowMajor }
}

// WithColMajor selects the column-major layout.
// Kernels serve column-major operands through the generic interface path;
// results are identical to the row-major ones.
// Complexity: O(1).
func WithColMajor() Option {
	return func(o *Options) { o.order = ColMajor }
}

// ---------- Internal resolution ----------

// defaultOptions returns the zero-configuration state mirroring the Default*
// constants above. Kept as a function so defaults stay in one place.
func defaultOptions() Options {
	return Options{order: DefaultOrder}
}

// gatherOptions applies opts over the defaults and returns the effective
// configuration. Deterministic: later options win.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
