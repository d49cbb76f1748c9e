package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// Validate checks the params the same way [Generator.Generate] does.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return &ParamsError{
			Width: p.Width, Height: p.Height, MineCount: p.MineCount,
			err: ErrInvalidDimensions,
		}
	}
	if p.MineCount < 0 || p.MineCount > p.Width*p.Height {
		return &ParamsError{
			Width: p.Width, Height: p.Height, MineCount: p.MineCount,
			err: ErrTooManyMines,
		}
	}
	return nil
}

// Seed encodes the params as "width:height:mines".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	if strings.Count(seed, ":") != 2 {
		return nil, fmt.Errorf(`invalid game params seed (seed = "%s")`, seed)
	}
	return p, nil
}
