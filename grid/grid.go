// Package grid - dense row-major storage and safe accessors.
//
// Design notes:
//   - One contiguous buffer with the explicit index formula row*cols + col.
//   - Safety lives at the public surface: At/Set return errors, never panic.
//   - Fixed loop orders everywhere; no map iteration, fully deterministic.
package grid

import (
	"fmt"
	"strings"
)

// Method tags used in error wrappers, kept as constants for grep-ability.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Grid is a fixed-shape 2D container of integer cells.
//   - r, c hold dimensions (both >= 0).
//   - data is a flat buffer of length r*c in row-major order.
type Grid struct {
	r, c int
	data []int
}

var _ fmt.Stringer = (*Grid)(nil)

// gridErrorf attaches method context and coordinates to a sentinel error.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// New creates a rows×cols grid with every cell initialized to zero.
// rows and cols may be zero (empty grid); negative dimensions are rejected
// with ErrInvalidDimensions.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer; len == rows*cols holds by construction.
	return &Grid{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewFromValues creates a rows×cols grid initialized from values, which must
// hold exactly rows×cols elements in row-major order. The slice is copied, so
// the caller retains ownership of values.
// Returns ErrInvalidDimensions for negative dimensions,
// ErrDataLength when len(values) != rows×cols.
// Complexity: O(rows×cols) time and memory.
func NewFromValues(rows, cols int, values []int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("grid: got %d values for %d×%d: %w",
			len(values), rows, cols, ErrDataLength)
	}
	buf := make([]int, len(values))
	copy(buf, values)

	return &Grid{r: rows, c: cols, data: buf}, nil
}

// From2D creates a grid from a rectangular 2D slice, copying every row.
// A nil or empty outer slice yields a legal 0×0 grid.
// Returns ErrRagged if any row length differs from the first.
// Complexity: O(rows×cols) time and memory.
func From2D(values [][]int) (*Grid, error) {
	rows := len(values)
	if rows == 0 {
		return New(0, 0)
	}
	cols := len(values[0])
	buf := make([]int, 0, rows*cols)
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrRagged
		}
		buf = append(buf, row...)
	}

	return &Grid{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (g *Grid) Rows() int { return g.r }

// Cols returns the column count. Complexity: O(1).
func (g *Grid) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (g *Grid) Shape() (rows, cols int) { return g.r, g.c }

// offsetOf bounds-checks (row, col) and computes the flat row-major offset.
// Returns the bare ErrOutOfRange sentinel; public callers wrap it with
// method context and coordinates.
func (g *Grid) offsetOf(row, col int) (int, error) {
	if row < 0 || row >= g.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	return row*g.c + col, nil
}

// At returns the value stored at (row, col).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	off, err := g.offsetOf(row, col)
	if err != nil {
		return 0, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices;
// there is no other side effect.
// Complexity: O(1).
func (g *Grid) Set(row, col, v int) error {
	off, err := g.offsetOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// Clone returns a deep copy with its own buffer; mutations of the copy never
// affect the original. Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cp := make([]int, len(g.data))
	copy(cp, g.data)

	return &Grid{r: g.r, c: g.c, data: cp}
}

// Values returns a copy of the backing row-major buffer. Analysis code that
// needs bulk read access takes this snapshot once instead of paying the At
// bounds check per cell. Complexity: O(rows×cols).
func (g *Grid) Values() []int {
	cp := make([]int, len(g.data))
	copy(cp, g.data)

	return cp
}

// Do visits each cell in row-major order and calls f(row, col, v); returning
// false from f stops the walk early. Read-only with respect to the callback.
// Complexity: O(rows×cols) time, O(1) memory.
func (g *Grid) Do(f func(row, col, v int) bool) {
	var row, col, base int
	for row = 0; row < g.r; row++ {
		base = row * g.c
		for col = 0; col < g.c; col++ {
			if !f(row, col, g.data[base+col]) {
				return
			}
		}
	}
}

// String renders one bracketed line per row for diagnostics and examples.
// Not intended for hot paths. Complexity: O(rows×cols).
func (g *Grid) String() string {
	var b strings.Builder
	var row, col, base int
	for row = 0; row < g.r; row++ {
		b.WriteString("[")
		base = row * g.c
		for col = 0; col < g.c; col++ {
			fmt.Fprintf(&b, "%d", g.data[base+col])
			if col+1 < g.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
