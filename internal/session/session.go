// Package session drives a single game: it owns the board for the whole
// game and records how the game went.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minefind/internal/mines"
)

var ErrGameOver = errors.New("game is over")

type Session struct {
	ID        uuid.UUID
	Params    mines.GameParams
	Board     *mines.Board
	Status    mines.GameStatus
	Moves     int
	Forfeited bool
	Exploded  *mines.Point // the mine that ended the game
	StartedAt time.Time
	EndedAt   *time.Time
}

func New(gen *mines.Generator, params mines.GameParams) (*Session, error) {
	board, err := gen.FromParams(params)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:        uuid.New(),
		Params:    params,
		Board:     board,
		Status:    mines.Continue,
		StartedAt: time.Now().UTC(),
	}
	return s, nil
}

func (s *Session) Over() bool {
	return s.Status != mines.Continue
}

// Open reveals the cell at x, y. Coordinates are checked by the board;
// an out of bounds move is returned as an error and is not counted.
func (s *Session) Open(x, y int) (mines.GameStatus, error) {
	if s.Over() {
		return s.Status, ErrGameOver
	}
	status, err := mines.Reveal(s.Board, x, y)
	if err != nil {
		return s.Status, err
	}
	s.Moves++
	s.Status = status
	if status == mines.Lost {
		s.Exploded = &mines.Point{X: x, Y: y}
	}
	if s.Over() {
		s.end()
	}
	return status, nil
}

// Forfeit gives up an unfinished game. The board is left as it is.
func (s *Session) Forfeit() error {
	if s.Over() {
		return ErrGameOver
	}
	s.Status = mines.Lost
	s.Forfeited = true
	s.end()
	return nil
}

func (s *Session) end() {
	now := time.Now().UTC()
	s.EndedAt = &now
}

// Outcome is one of "playing", "won", "lost" or "forfeit".
func (s *Session) Outcome() string {
	switch {
	case s.Forfeited:
		return "forfeit"
	case s.Status == mines.Won:
		return "won"
	case s.Status == mines.Lost:
		return "lost"
	default:
		return "playing"
	}
}
