package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	// URLOverride comes from DATABASE_URL and takes precedence over the
	// separate fields.
	URLOverride  string
	Username     string `env:"USER"`
	Password     string `env:"PASSWORD,unset"`
	PasswordFile string `env:"PASSWORD_FILE"`
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         uint16 `env:"PORT" envDefault:"5432"`
	DBName       string `env:"DB"`
	SSLMode      string `env:"SSLMODE" envDefault:"disable"`
}

// Enabled reports whether a database has been configured at all.
func (c Database) Enabled() bool {
	return c.URLOverride != "" || (c.Username != "" && c.DBName != "")
}

func (c Database) loadPassword() (string, error) {
	if c.Password != "" || c.PasswordFile == "" {
		return c.Password, nil
	}
	data, err := os.ReadFile(c.PasswordFile)
	if err != nil {
		return "", fmt.Errorf("unable to read from password file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (c Database) URL() (string, error) {
	if c.URLOverride != "" {
		return c.URLOverride, nil
	}
	if !c.Enabled() {
		return "", fmt.Errorf("no DATABASE_URL or POSTGRES_USER and POSTGRES_DB set")
	}
	password, err := c.loadPassword()
	if err != nil {
		return "", fmt.Errorf("unable to load password: %w", err)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port))),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String(), nil
}

func (c Database) NewPgxpoolConfig() (*pgxpool.Config, error) {
	dbURL, err := c.URL()
	if err != nil {
		return nil, err
	}
	return pgxpool.ParseConfig(dbURL)
}
