package main

import (
	"bufio"
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefind/internal/config"
	"github.com/vancomm/minefind/internal/mines"
)

var (
	boardSeed string
	randSeed  uint64
)

func init() {
	flag.StringVar(&boardSeed, "board", "", "board params as width:height:mines, skips the prompts")
	flag.Uint64Var(&randSeed, "seed", 0, "random seed for reproducible boards (0 picks one)")
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	// The terminal belongs to the game: logs go to the log file, if any,
	// and only warnings reach stderr otherwise.
	if cfg.Log.File != "" {
		log.SetOutput(io.Discard)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	var params *mines.GameParams
	if boardSeed != "" {
		if params, err = mines.ParseSeed(boardSeed); err != nil {
			log.Fatal(err)
		}
	}

	r := mines.NewRandomRand()
	if randSeed != 0 {
		r = mines.NewRand(randSeed, randSeed)
	}

	p := &player{
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
		gen:    mines.NewGenerator(r),
		log:    log,
		params: params,
	}
	if err := p.play(); err != nil {
		log.Fatal(err)
	}
}
