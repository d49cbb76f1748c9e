package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/minefind/internal/config"
)

func Connect(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	poolConfig, err := cfg.NewPgxpoolConfig()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return pool, nil
}

// Migrate applies every pending migration found at the root of migrations.
// The caller must close the returned migrator.
func Migrate(url string, migrations fs.FS) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("unable to create migrations iofs: %w", err)
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return nil, fmt.Errorf("unable to create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		migrator.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return migrator, nil
}

// MigrateUp runs [Migrate], reports the resulting version and closes the
// migrator.
func MigrateUp(url string, migrations fs.FS) (version uint, dirty bool, err error) {
	migrator, err := Migrate(url, migrations)
	if err != nil {
		return 0, false, err
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()
	version, dirty, err = migrator.Version()
	if err != nil {
		return 0, false, fmt.Errorf("failed to check migration version: %w", err)
	}
	return version, dirty, nil
}

// ConnectAndMigrate migrates the database, then connects to it. It returns
// the schema version it left the database at.
func ConnectAndMigrate(
	ctx context.Context, cfg config.Database, migrations fs.FS,
) (*pgxpool.Pool, uint, error) {
	url, err := cfg.URL()
	if err != nil {
		return nil, 0, err
	}
	version, _, err := MigrateUp(url, migrations)
	if err != nil {
		return nil, 0, err
	}
	pool, err := Connect(ctx, cfg)
	if err != nil {
		return nil, version, err
	}
	return pool, version, nil
}
