// Package grid provides a bounds-checked rectangular container of integer
// cells over a flat row-major buffer.
//
// What:
//
//   - Grid stores rows×cols cells contiguously (offset = row*cols + col).
//   - At/Set return errors instead of panicking; there is no clamping or
//     wraparound on out-of-range coordinates.
//   - Dimensions are fixed at construction; cell values are mutable.
//   - Zero-sized grids (0 rows and/or 0 cols) are legal and iterate to nothing.
//
// Why:
//
//   - Pixel rasters, game boards, occupancy maps: any dense 2D integer field
//     that downstream analysis (see package region) walks deterministically.
//
// Complexity:
//
//   - New/NewFromValues/From2D/Clone: O(rows×cols); At/Set/Shape: O(1);
//     Do/String: O(rows×cols).
//
// Errors:
//
//   - ErrInvalidDimensions: negative row or column count.
//   - ErrDataLength: initial values length does not equal rows×cols.
//   - ErrRagged: From2D input rows have differing lengths.
//   - ErrOutOfRange: At/Set coordinates outside [0,rows)×[0,cols).
package grid
