package region_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridscan/grid"
	"github.com/katalvlaran/gridscan/region"
)

// sampleImage is a 5×6 pixel raster with five value classes. The 4-block
// spanning the bottom-left corner is the largest region (9 cells).
var sampleImage = [][]int{
	{1, 1, 2, 2, 3, 3},
	{1, 1, 1, 2, 3, 3},
	{4, 4, 1, 2, 2, 3},
	{4, 4, 4, 5, 5, 5},
	{4, 4, 4, 4, 5, 5},
}

func mustGrid(t *testing.T, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.From2D(values)
	require.NoError(t, err)
	return g
}

func TestLargest_NilGrid(t *testing.T) {
	_, err := region.Largest(nil)
	assert.ErrorIs(t, err, region.ErrNilGrid)
	_, err = region.LargestByValue(nil)
	assert.ErrorIs(t, err, region.ErrNilGrid)
}

func TestLargest_EmptyGrid(t *testing.T) {
	g, err := grid.New(0, 0)
	require.NoError(t, err)

	n, err := region.Largest(g)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	best, err := region.LargestByValue(g)
	require.NoError(t, err)
	assert.Empty(t, best)
}

func TestLargest_ZeroRowsOrCols(t *testing.T) {
	for _, shape := range [][2]int{{0, 5}, {5, 0}} {
		g, err := grid.New(shape[0], shape[1])
		require.NoError(t, err)
		n, err := region.Largest(g)
		require.NoError(t, err)
		assert.Equal(t, 0, n, "shape %v", shape)
	}
}

func TestLargest_SingleCell(t *testing.T) {
	n, err := region.Largest(mustGrid(t, [][]int{{7}}))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLargest_UniformGridIsFullyConnected(t *testing.T) {
	g, err := grid.NewFromValues(3, 4, []int{
		5, 5, 5, 5,
		5, 5, 5, 5,
		5, 5, 5, 5,
	})
	require.NoError(t, err)

	n, err := region.Largest(g)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestLargest_CheckerboardIsAllSingletons(t *testing.T) {
	n, err := region.Largest(mustGrid(t, [][]int{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLargest_SampleImage(t *testing.T) {
	n, err := region.Largest(mustGrid(t, sampleImage))
	require.NoError(t, err)
	assert.Equal(t, 9, n, "the 4-block in rows 2-4 has 9 cells")
}

func TestLargestByValue_SampleImage(t *testing.T) {
	best, err := region.LargestByValue(mustGrid(t, sampleImage))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 6, 2: 5, 3: 5, 4: 9, 5: 5}, best)
}

func TestLargest_DiagonalsDoNotConnect(t *testing.T) {
	// Two 1-cells touch only at a corner; with orthogonal connectivity they
	// stay separate regions of size 1.
	n, err := region.Largest(mustGrid(t, [][]int{
		{1, 0},
		{2, 1},
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLargest_LongSingleRow(t *testing.T) {
	// A 1×5000 uniform strip is one region; the explicit work list must
	// handle it without any recursion depth concerns.
	const cols = 5000
	row := make([]int, cols)
	n, err := region.Largest(mustGrid(t, [][]int{row}))
	require.NoError(t, err)
	assert.Equal(t, cols, n)
}

func TestLargest_DoesNotMutateGrid(t *testing.T) {
	g := mustGrid(t, sampleImage)

	first, err := region.Largest(g)
	require.NoError(t, err)
	second, err := region.Largest(g)
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated scans over one grid must agree")

	for row := range sampleImage {
		for col := range sampleImage[row] {
			v, err := g.At(row, col)
			require.NoError(t, err)
			assert.Equal(t, sampleImage[row][col], v, "cell (%d,%d) changed", row, col)
		}
	}
}

func TestLargest_ValueDomain(t *testing.T) {
	t.Run("AboveDefaultBound", func(t *testing.T) {
		_, err := region.Largest(mustGrid(t, [][]int{{1, 300}}))
		assert.ErrorIs(t, err, region.ErrValueDomain)
	})

	t.Run("NegativeValue", func(t *testing.T) {
		_, err := region.Largest(mustGrid(t, [][]int{{1, -1}}))
		assert.ErrorIs(t, err, region.ErrValueDomain)
	})

	t.Run("WidenedBound", func(t *testing.T) {
		n, err := region.Largest(mustGrid(t, [][]int{{300, 300}}), region.WithValueBound(1000))
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("Unbounded", func(t *testing.T) {
		n, err := region.Largest(mustGrid(t, [][]int{
			{-1, -1},
			{5, -1},
		}), region.WithUnboundedValues())
		require.NoError(t, err)
		assert.Equal(t, 3, n, "negative values form regions of their own")
	})
}

func TestLargest_OptionViolation(t *testing.T) {
	_, err := region.Largest(mustGrid(t, [][]int{{1}}), region.WithValueBound(-2))
	assert.ErrorIs(t, err, region.ErrOptionViolation)
}

func TestLargest_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := region.Largest(mustGrid(t, sampleImage), region.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
