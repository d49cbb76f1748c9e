package mines

import "fmt"

type GameStatus int8

const (
	Continue GameStatus = iota
	Lost
	Won
)

func (s GameStatus) String() string {
	switch s {
	case Continue:
		return "continue"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("GameStatus(%d)", int8(s))
	}
}

// celltodo is a FIFO queue of cell indices threaded through next. A cell
// must not be added while it is still queued.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(size int) *celltodo {
	return &celltodo{next: make([]int, size), head: -1, tail: -1}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return 0, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}

// Reveal opens the cell at x, y.
//
// A revealed cell is left alone and a mine loses the game without touching
// the board. A covered safe cell is revealed together with its covered safe
// neighbours; the reveal keeps spreading breadth-first from every opened cell
// without neighbouring mines and stops at numbered cells.
func Reveal(b *Board, x, y int) (GameStatus, error) {
	if !b.InBounds(x, y) {
		return Continue, &PositionError{X: x, Y: y, Width: b.width, Height: b.height}
	}

	switch b.Status(x, y) {
	case EmptyRevealed:
		return Continue, nil
	case MineCovered:
		return Lost, nil
	case EmptyCovered:
	default:
		return Continue, fmt.Errorf("cell (%d, %d) has status %s", x, y, b.Status(x, y))
	}

	start := b.index(x, y)
	b.status[start] = EmptyRevealed

	std := newCelltodo(len(b.status))
	std.add(start)
	for {
		i, ok := std.pop()
		if !ok {
			break
		}
		for _, n := range b.Neighbors(b.point(i)) {
			j := b.index(n.X, n.Y)
			if b.status[j] != EmptyCovered {
				continue
			}
			b.status[j] = EmptyRevealed
			if b.counts[j] == 0 {
				std.add(j)
			}
		}
	}

	if HasWon(b) {
		return Won, nil
	}
	return Continue, nil
}

// HasWon reports whether no safe cell is left covered.
func HasWon(b *Board) bool {
	for _, s := range b.status {
		if s == EmptyCovered {
			return false
		}
	}
	return true
}
