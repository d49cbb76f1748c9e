package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "1x1(0)", params: GameParams{Width: 1, Height: 1, MineCount: 0}},
		{name: "1x1(1)", params: GameParams{Width: 1, Height: 1, MineCount: 1}},
		{name: "2x2(4)", params: GameParams{Width: 2, Height: 2, MineCount: 4}},
		{name: "3x3(5)", params: GameParams{Width: 3, Height: 3, MineCount: 5}},
		{name: "9x9(10)", params: GameParams{Width: 9, Height: 9, MineCount: 10}},
		{name: "16x16(40)", params: GameParams{Width: 16, Height: 16, MineCount: 40}},
		{name: "30x16(99)", params: GameParams{Width: 30, Height: 16, MineCount: 99}},
		{name: "30x16(480)", params: GameParams{Width: 30, Height: 16, MineCount: 480}},
		{name: "1x40(13)", params: GameParams{Width: 1, Height: 40, MineCount: 13}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			gen := NewGenerator(NewRand(1, 2))
			for range 20 {
				b, err := gen.FromParams(test.params)
				require.NoError(t, err)

				assert.Equal(t, test.params.Width, b.Width())
				assert.Equal(t, test.params.Height, b.Height())
				assert.Equal(t, test.params.MineCount, b.MineCount())
				assert.Equal(t,
					test.params.Width*test.params.Height-test.params.MineCount,
					b.CoveredCount(),
				)

				for y := range b.Height() {
					for x := range b.Width() {
						s := b.Status(x, y)
						assert.Contains(t, []CellStatus{MineCovered, EmptyCovered}, s)

						mines := 0
						for _, n := range b.Neighbors(x, y) {
							if b.Status(n.X, n.Y) == MineCovered {
								mines++
							}
						}
						assert.Equal(t, mines, b.NeighborMineCount(x, y), "(%d, %d)", x, y)
					}
				}
			}
		})
	}
}

func TestGenerateInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		width, height, mineCount int
		want                     error
	}{
		{"3x3(10)", 3, 3, 10, ErrTooManyMines},
		{"1x1(2)", 1, 1, 2, ErrTooManyMines},
		{"negative mines", 4, 4, -1, ErrTooManyMines},
		{"zero width", 0, 4, 0, ErrInvalidDimensions},
		{"zero area", 0, 0, 0, ErrInvalidDimensions},
		{"negative height", 4, -4, 1, ErrInvalidDimensions},
	}

	gen := NewGenerator(NewRand(1, 2))
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := gen.Generate(test.width, test.height, test.mineCount)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, test.want)

			var pe *ParamsError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, test.mineCount, pe.MineCount)
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := NewGenerator(NewRand(7, 11)).Generate(16, 16, 40)
	require.NoError(t, err)
	b, err := NewGenerator(NewRand(7, 11)).Generate(16, 16, 40)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateUniform(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	const trials = 8000
	var hits [4]int

	gen := NewGenerator(NewRand(1, 2))
	for range trials {
		b, err := gen.Generate(2, 2, 1)
		require.NoError(t, err)
		for i, s := range b.status {
			if s == MineCovered {
				hits[i]++
			}
		}
	}

	for i, h := range hits {
		assert.InDelta(t, trials/4, h, trials/20, "cell %d", i)
	}
}

func TestParseSeed(t *testing.T) {
	t.Parallel()

	p, err := ParseSeed("9:8:10")
	require.NoError(t, err)
	assert.Equal(t, GameParams{Width: 9, Height: 8, MineCount: 10}, *p)
	assert.Equal(t, "9:8:10", p.Seed())

	for _, seed := range []string{"", "9:9", "a:b:c", "9:9:10:1", "9 9 10"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, "seed %q", seed)
	}
}

func TestGameParamsValidate(t *testing.T) {
	assert.NoError(t, GameParams{Width: 3, Height: 3, MineCount: 9}.Validate())
	assert.NoError(t, GameParams{Width: 3, Height: 3, MineCount: 0}.Validate())
	assert.ErrorIs(t, GameParams{Width: 3, Height: 3, MineCount: 10}.Validate(), ErrTooManyMines)
	assert.ErrorIs(t, GameParams{Width: 0, Height: 3}.Validate(), ErrInvalidDimensions)
}
