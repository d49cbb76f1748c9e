package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minefind/internal/mines"
)

type CellView int8

const (
	Covered      CellView = -2
	ExplodedMine CellView = 65
	Mine         CellView = 67
	// 0-8 for a revealed cell with the given number of mined neighbours
)

func (v CellView) String() string {
	switch v {
	case Covered:
		return "X"
	case Mine:
		return "*"
	case ExplodedMine:
		return "!"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(v))
	default:
		return "?"
	}
}

// Grid is what the player gets to see, row-major like the board.
type Grid []CellView

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String())
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// View returns the board as the player sees it. Once the game is over
// every cell is disclosed.
func (s *Session) View() Grid {
	b := s.Board
	w, h := b.Width(), b.Height()
	grid := make(Grid, w*h)
	for y := range h {
		for x := range w {
			i := y*w + x
			switch b.Status(x, y) {
			case mines.EmptyRevealed:
				grid[i] = CellView(b.NeighborMineCount(x, y))
			case mines.MineCovered:
				grid[i] = Covered
				if s.Over() {
					grid[i] = Mine
					if s.Exploded != nil && *s.Exploded == (mines.Point{X: x, Y: y}) {
						grid[i] = ExplodedMine
					}
				}
			default:
				grid[i] = Covered
				if s.Over() {
					grid[i] = CellView(b.NeighborMineCount(x, y))
				}
			}
		}
	}
	return grid
}
