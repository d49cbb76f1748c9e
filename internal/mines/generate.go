package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Generator places mines on new boards. It owns its random source and, like
// the source, must not be shared between goroutines.
type Generator struct {
	r *rand.Rand
}

func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{r: r}
}

// NewRand returns a deterministic source, for tests and replays.
func NewRand(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

func NewRandomRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (g *Generator) FromParams(p GameParams) (*Board, error) {
	return g.Generate(p.Unpack())
}

// Generate returns a board with exactly mineCount mines, placed uniformly at
// random without replacement, and every neighbour count computed.
func (g *Generator) Generate(width, height, mineCount int) (*Board, error) {
	params := GameParams{Width: width, Height: height, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}

	/*
	 * Write down the list of possible mine locations, then pick
	 * mineCount off the list at random.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := g.r.IntN(k)
		board.status[candidates[i]] = MineCovered
		k--
		candidates[i] = candidates[k]
	}

	board.settle()

	return board, nil
}
