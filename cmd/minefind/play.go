package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefind/internal/mines"
	"github.com/vancomm/minefind/internal/session"
)

var errQuit = errors.New("quit")

type player struct {
	in     *bufio.Scanner
	out    io.Writer
	gen    *mines.Generator
	log    logrus.FieldLogger
	params *mines.GameParams // set by -board, nil to ask every game
}

func (p *player) play() error {
	for {
		params, err := p.askParams()
		if errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			return err
		}

		s, err := session.New(p.gen, params)
		if err != nil {
			if p.params != nil {
				return err
			}
			fmt.Fprintf(p.out, "\n%v\n", err)
			continue
		}
		p.log.WithFields(logrus.Fields{
			"game_id": s.ID,
			"params":  params.Seed(),
		}).Info("new game")

		if err := p.game(s); errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			return err
		}

		answer, err := p.readLine("Continue? (y/n) ")
		if errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			return err
		}
		if strings.ToLower(answer) != "y" {
			return nil
		}
	}
}

func (p *player) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *player) askInt(prompt, what string) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "\nInvalid %s number was entered.\n", what)
	}
}

func (p *player) askParams() (mines.GameParams, error) {
	if p.params != nil {
		return *p.params, nil
	}

	var (
		params mines.GameParams
		err    error
	)
	fmt.Fprintln(p.out)
	if params.Width, err = p.askInt("Enter an x dimension for the board and press ENTER: ", "x"); err != nil {
		return params, err
	}
	if params.Height, err = p.askInt("Enter a y dimension for the board and press ENTER: ", "y"); err != nil {
		return params, err
	}
	if params.MineCount, err = p.askInt("Enter the number of mines for the board and press ENTER: ", "mine count"); err != nil {
		return params, err
	}
	return params, nil
}

// game runs one game to its end. Invalid moves are reported and asked
// again.
func (p *player) game(s *session.Session) error {
	log := p.log.WithField("game_id", s.ID)

	for !s.Over() {
		p.draw(s)
		line, err := p.readLine("Enter a position to uncover (x then y separated by a space, r to give up, q to quit): ")
		if err != nil {
			return err
		}

		cmd, err := session.ParseCommand(line)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid move: %v. Try again.\n", err)
			continue
		}
		switch cmd.Kind {
		case session.Quit:
			return errQuit
		case session.NewGame:
			fmt.Fprintln(p.out, "Finish the current game or give up with r first.")
			continue
		}

		if err := s.Execute(cmd); err != nil {
			fmt.Fprintf(p.out, "Invalid move: %v. Try again.\n", err)
			continue
		}
		log.WithFields(logrus.Fields{"x": cmd.X, "y": cmd.Y, "status": s.Status}).Debug("move")
	}

	if s.Status == mines.Won {
		fmt.Fprintln(p.out, "You win!!!")
	} else {
		fmt.Fprintln(p.out, "You lose!!!")
	}
	p.draw(s)
	log.WithFields(logrus.Fields{"outcome": s.Outcome(), "moves": s.Moves}).Info("game over")
	return nil
}

func (p *player) draw(s *session.Session) {
	fmt.Fprint(p.out, render(s.View(), s.Board.Width()))
}

// render lays the grid out with column and row numbers.
func render(g session.Grid, width int) string {
	var b strings.Builder
	fmt.Fprint(&b, "   ")
	for x := range width {
		fmt.Fprintf(&b, "%3d", x)
	}
	b.WriteByte('\n')
	for y := range len(g) / width {
		fmt.Fprintf(&b, "%3d", y)
		for x := range width {
			fmt.Fprintf(&b, "%3s", g[y*width+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
