package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefind/internal/app"
	"github.com/vancomm/minefind/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := config.NewLogger(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	if err := app.New(log, cfg).Start(ctx); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}
