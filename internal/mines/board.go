package mines

import "fmt"

type CellStatus int8

const (
	Unknown       CellStatus = iota // generation only
	MineCovered                     // mine, not revealed
	EmptyCovered                    // no mine, not revealed
	EmptyRevealed                   // no mine, revealed
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case MineCovered:
		return "mine-covered"
	case EmptyCovered:
		return "empty-covered"
	case EmptyRevealed:
		return "empty-revealed"
	default:
		return fmt.Sprintf("CellStatus(%d)", int8(s))
	}
}

type Point struct {
	X, Y int
}

// Offsets of the eight neighbours of a cell.
var neighborOffsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
	{1, 1}, {1, 0}, {1, -1}, {0, -1},
}

// Board is a width x height grid. Cells are stored row-major: the cell at
// column x and row y lives at index y*width + x.
//
// A Board has a single owner; it is not safe for concurrent use.
type Board struct {
	width, height int
	status        []CellStatus
	counts        []int8
}

// NewBoard returns a board whose cells are all [Unknown].
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, &ParamsError{
			Width: width, Height: height, err: ErrInvalidDimensions,
		}
	}
	return &Board{
		width:  width,
		height: height,
		status: make([]CellStatus, width*height),
		counts: make([]int8, width*height),
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) point(i int) (x, y int) {
	return i % b.width, i / b.width
}

// Status returns the status of the cell at x, y, which must be in bounds.
func (b *Board) Status(x, y int) CellStatus {
	return b.status[b.index(x, y)]
}

// NeighborMineCount returns the number of mines around the cell at x, y,
// which must be in bounds.
func (b *Board) NeighborMineCount(x, y int) int {
	return int(b.counts[b.index(x, y)])
}

// Neighbors returns the cells adjacent to x, y, clipped to the board.
func (b *Board) Neighbors(x, y int) []Point {
	ns := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if b.InBounds(x+d.X, y+d.Y) {
			ns = append(ns, Point{x + d.X, y + d.Y})
		}
	}
	return ns
}

// settle turns every remaining [Unknown] cell into [EmptyCovered] and
// computes the neighbour counts. Mines must already be laid.
func (b *Board) settle() {
	for i, s := range b.status {
		if s == Unknown {
			b.status[i] = EmptyCovered
		}
	}
	for y := range b.height {
		for x := range b.width {
			c := 0
			for _, n := range b.Neighbors(x, y) {
				if b.Status(n.X, n.Y) == MineCovered {
					c++
				}
			}
			b.counts[b.index(x, y)] = int8(c)
		}
	}
}

func (b *Board) MineCount() int {
	return b.countStatus(MineCovered)
}

// CoveredCount returns the number of safe cells still covered.
func (b *Board) CoveredCount() int {
	return b.countStatus(EmptyCovered)
}

func (b *Board) countStatus(s CellStatus) int {
	n := 0
	for _, st := range b.status {
		if st == s {
			n++
		}
	}
	return n
}

// String renders the true content of the board: '*' for mines and the
// neighbour count for every other cell.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for y := range b.height {
		for x := range b.width {
			if b.Status(x, y) == MineCovered {
				buf = append(buf, '*')
			} else {
				buf = append(buf, byte('0'+b.NeighborMineCount(x, y)))
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
