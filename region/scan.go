// Package region - outer scan and iterative flood fill.
package region

import (
	"fmt"

	"github.com/katalvlaran/gridscan/grid"
)

// neighborOffsets enumerates the 4 orthogonal directions (N, S, W, E) as
// (dRow, dCol) pairs. Used in every traversal to avoid branching.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// scanner encapsulates mutable state for one scan over one grid snapshot.
type scanner struct {
	rows, cols int
	cells      []int  // row-major snapshot of the grid values
	visited    []bool // one flag per cell, set exactly once
	stack      []int  // work list of pending cell indices, reused per region
}

// Largest returns the size of the largest 4-connected region of equal-valued
// cells in g, across all values present. An empty grid yields 0; a single
// cell yields 1. The grid is not mutated.
// Returns ErrNilGrid, ErrOptionViolation, ErrValueDomain, or a context error.
// Complexity: O(rows×cols×4) time, O(rows×cols) memory.
func Largest(g *grid.Grid, opts ...Option) (int, error) {
	best, err := LargestByValue(g, opts...)
	if err != nil {
		return 0, err
	}

	maxSize := 0
	for _, n := range best {
		if n > maxSize {
			maxSize = n
		}
	}

	return maxSize, nil
}

// LargestByValue returns, for every distinct cell value present in g, the
// size of that value's largest 4-connected region. The map is keyed by the
// values actually observed; an empty grid yields an empty map.
// Returns ErrNilGrid, ErrOptionViolation, ErrValueDomain, or a context error.
// Complexity: O(rows×cols×4) time, O(rows×cols) memory.
func LargestByValue(g *grid.Grid, opts ...Option) (map[int]int, error) {
	// 1. Validate input grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2. Build options and surface any invalid one immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Enforce the value-domain policy before any counting, so a violation
	//    aborts with no partial result.
	if !o.Unbounded {
		if err := checkValueDomain(g, o.MaxCellValue); err != nil {
			return nil, err
		}
	}

	// 4. Prepare scanner state over a one-time snapshot of the cells.
	rows, cols := g.Shape()
	total := rows * cols
	s := &scanner{
		rows:    rows,
		cols:    cols,
		cells:   g.Values(),
		visited: make([]bool, total),
	}

	// 5. Outer pass: seed a flood fill at every unvisited cell in row-major
	//    order and fold the region size into the per-value maximum. Seed
	//    order decides only which cell starts a region, never its size.
	best := make(map[int]int)
	for seed := 0; seed < total; seed++ {
		if s.visited[seed] {
			continue
		}
		// Cancellation check, once per seeded region.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		v := s.cells[seed]
		if n := s.flood(seed, v); n > best[v] {
			best[v] = n
		}
	}

	return best, nil
}

// checkValueDomain walks g in row-major order and fails on the first cell
// outside [MinValue, max].
func checkValueDomain(g *grid.Grid, max int) error {
	var badRow, badCol, badVal int
	bad := false
	g.Do(func(row, col, v int) bool {
		if v < MinValue || v > max {
			badRow, badCol, badVal, bad = row, col, v, true
			return false
		}
		return true
	})
	if bad {
		return fmt.Errorf("region: cell (%d,%d) holds %d, want [%d,%d]: %w",
			badRow, badCol, badVal, MinValue, max, ErrValueDomain)
	}

	return nil
}

// flood consumes the whole region of value v reachable from seed and returns
// its size, seed included. Traversal is depth-first over an explicit work
// list; every cell of the region is marked visited exactly once, on push.
func (s *scanner) flood(seed, v int) int {
	s.stack = s.stack[:0]
	s.visited[seed] = true
	s.stack = append(s.stack, seed)

	count := 0
	var u, ur, uc, nr, nc, ni int
	for len(s.stack) > 0 {
		// Pop the most recently discovered cell (DFS order).
		u = s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		count++

		ur, uc = u/s.cols, u%s.cols
		for _, d := range neighborOffsets {
			nr, nc = ur+d[0], uc+d[1]
			// Bounds check before dereferencing the neighbor.
			if nr < 0 || nr >= s.rows || nc < 0 || nc >= s.cols {
				continue
			}
			ni = nr*s.cols + nc
			if s.visited[ni] || s.cells[ni] != v {
				continue
			}
			s.visited[ni] = true
			s.stack = append(s.stack, ni)
		}
	}

	return count
}
