package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Log struct {
	// Level defaults to debug in development and info otherwise.
	Level string `env:"LEVEL"`
	// File enables a rotating log file next to stderr output.
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"28"`
}

func NewLogger(cfg *Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := cfg.Log.level(cfg.Development())
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if cfg.Development() {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Level:      level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to create log file hook: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}

func (c Log) level(development bool) (logrus.Level, error) {
	if c.Level == "" {
		if development {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}
