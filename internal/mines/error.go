package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrTooManyMines      = errors.New("too many mines")
	ErrOutOfBounds       = errors.New("cell out of bounds")
)

// ParamsError reports board parameters rejected before generation.
type ParamsError struct {
	Width, Height, MineCount int
	err                      error
}

// [ParamsError] implements [error]
func (e *ParamsError) Error() string {
	switch {
	case errors.Is(e.err, ErrInvalidDimensions):
		return fmt.Sprintf("%s: %dx%d", e.err, e.Width, e.Height)
	case errors.Is(e.err, ErrTooManyMines):
		return fmt.Sprintf(
			"%s: %d not in [0, %d] for a %dx%d board",
			e.err, e.MineCount, e.Width*e.Height, e.Width, e.Height,
		)
	default:
		return e.err.Error()
	}
}

func (e *ParamsError) Unwrap() error {
	return e.err
}

// PositionError reports a cell outside of the board.
type PositionError struct {
	X, Y          int
	Width, Height int
}

// [PositionError] implements [error]
func (e *PositionError) Error() string {
	return fmt.Sprintf(
		"%s: (%d, %d) on a %dx%d board", ErrOutOfBounds, e.X, e.Y, e.Width, e.Height,
	)
}

func (e *PositionError) Unwrap() error {
	return ErrOutOfBounds
}
