package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Mode     string   `env:"APP_MODE" envDefault:"development"`
	Addr     string   `env:"APP_ADDR" envDefault:":8080"`
	BasePath string   `env:"APP_BASE_PATH"`
	Migrate  bool     `env:"APP_MIGRATE"`
	Log      Log      `envPrefix:"LOG_"`
	Database Database `envPrefix:"POSTGRES_"`

	DatabaseURL string `env:"DATABASE_URL,unset"`
}

// Load reads a .env file when there is one, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	cfg.Database.URLOverride = cfg.DatabaseURL
	return &cfg, nil
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Fields() map[string]any {
	return map[string]any{
		"mode":       c.Mode,
		"addr":       c.Addr,
		"base_path":  c.BasePath,
		"migrate":    c.Migrate,
		"log_level":  c.Log.Level,
		"log_file":   c.Log.File,
		"pg_enabled": c.Database.Enabled(),
		"pg_host":    c.Database.Host,
		"pg_port":    c.Database.Port,
		"pg_db_name": c.Database.DBName,
	}
}
