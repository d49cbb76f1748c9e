package main

import (
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefind/internal/config"
	"github.com/vancomm/minefind/internal/database"
	"github.com/vancomm/minefind/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := config.NewLogger(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	url, err := cfg.Database.URL()
	if err != nil {
		log.WithError(err).Fatal("no database configured")
	}

	version, dirty, err := database.MigrateUp(url, migrations.FS)
	if err != nil {
		log.WithError(err).Fatal("failed to migrate db")
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}
