package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWithMines lays mines at the given points and settles the board.
func boardWithMines(t *testing.T, width, height int, mines ...Point) *Board {
	t.Helper()
	b, err := NewBoard(width, height)
	require.NoError(t, err)
	for _, m := range mines {
		require.True(t, b.InBounds(m.X, m.Y), "mine %v out of bounds", m)
		b.status[b.index(m.X, m.Y)] = MineCovered
	}
	b.settle()
	return b
}

func TestNewBoardInvalidDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"negative width", -1, 3},
		{"negative both", -2, -2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBoard(test.width, test.height)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidDimensions)

			var pe *ParamsError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, test.width, pe.Width)
			assert.Equal(t, test.height, pe.Height)
		})
	}
}

func TestNewBoardUnknown(t *testing.T) {
	b, err := NewBoard(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 3, b.Height())
	for y := range 3 {
		for x := range 4 {
			assert.Equal(t, Unknown, b.Status(x, y))
		}
	}
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(5, 4)
	require.NoError(t, err)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3}, {4, 0, 3}, {0, 3, 3}, {4, 3, 3}, // corners
		{2, 0, 5}, {0, 1, 5}, {4, 2, 5}, {1, 3, 5}, // edges
		{1, 1, 8}, {3, 2, 8}, // interior
	}

	for _, test := range tests {
		assert.Len(t, b.Neighbors(test.x, test.y), test.want, "(%d, %d)", test.x, test.y)
	}

	assert.ElementsMatch(t,
		[]Point{{0, 1}, {1, 0}, {1, 1}},
		b.Neighbors(0, 0),
	)
}

func TestNeighborsClipped(t *testing.T) {
	t.Parallel()

	clip := func(v, size int) int {
		n := 0
		for d := -1; d <= 1; d++ {
			if 0 <= v+d && v+d < size {
				n++
			}
		}
		return n
	}

	for _, size := range []Point{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {7, 3}} {
		b, err := NewBoard(size.X, size.Y)
		require.NoError(t, err)
		for y := range size.Y {
			for x := range size.X {
				want := clip(x, size.X)*clip(y, size.Y) - 1
				ns := b.Neighbors(x, y)
				assert.Len(t, ns, want, "%v board at (%d, %d)", size, x, y)
				for _, n := range ns {
					assert.True(t, b.InBounds(n.X, n.Y))
					assert.NotEqual(t, Point{x, y}, n)
				}
			}
		}
	}
}

func TestSettleCounts(t *testing.T) {
	b := boardWithMines(t, 3, 3, Point{0, 0}, Point{2, 2})

	assert.Equal(t, "*10\n121\n01*\n", b.String())
	assert.Equal(t, 2, b.MineCount())
	assert.Equal(t, 7, b.CoveredCount())
	assert.Equal(t, EmptyCovered, b.Status(1, 1))
	assert.Equal(t, 2, b.NeighborMineCount(1, 1))
}
