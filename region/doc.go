// Package region measures 4-connected regions of equal-valued cells in a
// grid.Grid, reporting the largest region size per value and globally.
//
// What:
//
//   - Largest(g, opts...) returns the size of the single largest region of
//     any value, or 0 for an empty grid.
//   - LargestByValue(g, opts...) returns, for every distinct value present,
//     the size of its largest region. Sizes only — cell membership is never
//     reported.
//   - Connectivity is strictly orthogonal (N, E, S, W); diagonal adjacency
//     never joins regions.
//   - The scan is read-only: visited state lives in a separate flag slice,
//     so the same Grid can be scanned repeatedly with identical results.
//
// Why:
//
//   - Image analysis: largest blob of a pixel value.
//   - Map/board analysis: biggest territory, flood-fill sizing.
//   - Data quality: detecting dominant constant runs in dense 2D fields.
//
// Algorithm:
//
//   - Outer pass seeds at every unvisited cell in row-major order, then an
//     explicit work-list stack (iterative DFS) consumes the whole region.
//     Auxiliary memory is bounded by the region size on the heap — no
//     call-stack recursion, no platform depth limit.
//   - Per-value running maxima live in a map keyed by observed value, sized
//     to the values actually present.
//
// Complexity:
//
//   - Time: O(rows×cols×4). Memory: O(rows×cols) for visited flags and the
//     work list.
//
// Options:
//
//   - WithContext(ctx): cooperative cancellation, checked once per seed.
//   - WithValueBound(max): widen the accepted value domain above 255.
//   - WithUnboundedValues(): accept any int value.
//
// Errors:
//
//   - ErrNilGrid: nil grid pointer.
//   - ErrValueDomain: a cell value outside the accepted domain (default
//     [0,255]); the call aborts before any counting.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - context.Canceled / context.DeadlineExceeded via WithContext.
package region
