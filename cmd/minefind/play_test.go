package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefind/internal/mines"
	"github.com/vancomm/minefind/internal/session"
)

func TestMain(m *testing.M) {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func runScript(t *testing.T, params *mines.GameParams, script ...string) (string, error) {
	t.Helper()
	log, _ := test.NewNullLogger()
	var out strings.Builder
	p := &player{
		in:     bufio.NewScanner(strings.NewReader(strings.Join(script, "\n") + "\n")),
		out:    &out,
		gen:    mines.NewGenerator(mines.NewRand(1, 2)),
		log:    log,
		params: params,
	}
	err := p.play()
	return out.String(), err
}

func TestPlayWin(t *testing.T) {
	out, err := runScript(t, nil, "1", "1", "0", "0 0", "n")
	require.NoError(t, err)
	assert.Contains(t, out, "You win!!!")
	assert.Contains(t, out, "Continue? (y/n)")
}

func TestPlayInvalidInputReprompts(t *testing.T) {
	out, err := runScript(t, nil,
		"a", "1", "1", "0",
		"foo", "5 5", "n", "o 0 0",
		"n",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid x number was entered.")
	assert.Contains(t, out, "Invalid move: unknown command")
	assert.Contains(t, out, "Invalid move: cell out of bounds")
	assert.Contains(t, out, "Finish the current game")
	assert.Contains(t, out, "You win!!!")
}

func TestPlayTooManyMines(t *testing.T) {
	out, err := runScript(t, nil, "3", "3", "10", "1", "1", "0", "0 0", "n")
	require.NoError(t, err)
	assert.Contains(t, out, "too many mines")
	assert.Contains(t, out, "You win!!!")
}

func TestPlayLoseThenPlayAgain(t *testing.T) {
	out, err := runScript(t, nil,
		"2", "2", "4", "1 1", "y",
		"1", "1", "0", "0 0", "n",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "You lose!!!")
	assert.Contains(t, out, "  1  *  !")
	assert.True(t, strings.Index(out, "You lose!!!") < strings.Index(out, "You win!!!"))
}

func TestPlayFixedBoard(t *testing.T) {
	out, err := runScript(t, &mines.GameParams{Width: 2, Height: 1, MineCount: 0}, "r", "n")
	require.NoError(t, err)
	assert.Contains(t, out, "You lose!!!")
	assert.NotContains(t, out, "Enter an x dimension")

	_, err = runScript(t, &mines.GameParams{Width: 2, Height: 1, MineCount: 3})
	assert.ErrorIs(t, err, mines.ErrTooManyMines)
}

func TestPlayQuitAndEOF(t *testing.T) {
	out, err := runScript(t, nil, "2", "2", "1", "q")
	require.NoError(t, err)
	assert.NotContains(t, out, "You")

	_, err = runScript(t, nil, "2", "2")
	assert.NoError(t, err)
}

func TestRender(t *testing.T) {
	g := session.Grid{session.Covered, 1, session.Mine, 0}
	assert.Equal(t, ""+
		"     0  1\n"+
		"  0  X  1\n"+
		"  1  *  0\n",
		render(g, 2),
	)
}
