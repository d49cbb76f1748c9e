package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
)

type CommandKind int

const (
	Open CommandKind = iota
	Forfeit
	NewGame
	Quit
)

type Command struct {
	Kind CommandKind
	X, Y int
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"r": 0,
	"n": 0,
	"q": 0,
}

var commandKinds = map[string]CommandKind{
	"o": Open,
	"r": Forfeit,
	"n": NewGame,
	"q": Quit,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("%w: x must be an int", ErrInvalidArguments)
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("%w: y must be an int", ErrInvalidArguments)
		return
	}
	return
}

// ParseCommand reads one command line. Besides the lettered commands a bare
// "x y" pair is accepted as an open.
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(strings.ToLower(line))
	if len(parts) == 0 {
		return Command{}, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		if len(parts) == 2 {
			x, y, err := parseXY(parts)
			if err != nil {
				return Command{}, err
			}
			return Command{Kind: Open, X: x, Y: y}, nil
		}
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"%w: %q takes %d arguments", ErrInvalidArguments, parts[0], nargs,
		)
	}
	c := Command{Kind: commandKinds[parts[0]]}
	if c.Kind == Open {
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return Command{}, err
		}
		c.X, c.Y = x, y
	}
	return c, nil
}

// Execute applies an in-game command. [NewGame] and [Quit] belong to the
// driver and are rejected here.
func (s *Session) Execute(c Command) error {
	switch c.Kind {
	case Open:
		_, err := s.Open(c.X, c.Y)
		return err
	case Forfeit:
		return s.Forfeit()
	default:
		return fmt.Errorf("%w: not an in-game command", ErrUnknownCommand)
	}
}
