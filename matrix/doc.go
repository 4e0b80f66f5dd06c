// Package matrix provides the small dense linear-algebra kernels used by
// the agreement engine: a row-major float64 matrix plus the handful of
// deterministic operations the kappa pipeline needs (product, transpose,
// scaling, matrix-vector product, row/column sums).
//
// The matrices involved in reliability studies are tiny (items, raters and
// categories all bounded by practical study sizes), so the package favors a
// minimal, bounds-checked surface over a full linear-algebra dependency.
//
// Conventions:
//   - All operations are fail-fast: shapes are validated before any
//     allocation, and every misuse returns a package sentinel error
//     (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix)
//     matched via errors.Is.
//   - Operands are never mutated; every kernel allocates a fresh result.
//   - Traversal orders are fixed (row-major, i→j→k), so results are
//     bit-for-bit reproducible across runs.
//
// Complexity: At/Set are O(1); Mul is O(r·n·c); everything else is O(r·c).
package matrix
