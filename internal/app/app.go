package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefind/internal/config"
	"github.com/vancomm/minefind/internal/database"
	"github.com/vancomm/minefind/internal/middleware"
	"github.com/vancomm/minefind/internal/repository"
	"github.com/vancomm/minefind/migrations"
)

type App struct {
	log    *logrus.Logger
	cfg    *config.Config
	router *http.ServeMux
	db     *pgxpool.Pool
	repo   *repository.Queries
	ws     *config.WebSocket
	routes sync.Once
}

func New(log *logrus.Logger, cfg *config.Config) *App {
	return &App{
		log:    log,
		cfg:    cfg,
		router: http.NewServeMux(),
		ws:     config.NewWebSocket(),
	}
}

// Handler returns the routed and wrapped handler. Routes are loaded once.
func (a *App) Handler() http.Handler {
	a.routes.Do(a.loadRoutes)
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// Start serves until ctx is done, then shuts down gracefully. Without a
// configured database the journal routes are left out.
func (a *App) Start(ctx context.Context) error {
	if a.cfg.Database.Enabled() {
		db, err := a.connect(ctx)
		if err != nil {
			return fmt.Errorf("unable to connect to db: %w", err)
		}
		defer db.Close()
		a.db = db
		a.repo = repository.New(db)
	} else {
		a.log.Warn("no database configured, finished games will not be recorded")
	}

	server := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", a.cfg.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *App) connect(ctx context.Context) (*pgxpool.Pool, error) {
	if !a.cfg.Migrate {
		return database.Connect(ctx, a.cfg.Database)
	}
	db, version, err := database.ConnectAndMigrate(ctx, a.cfg.Database, migrations.FS)
	if err != nil {
		return nil, err
	}
	a.log.WithField("version", version).Info("migrations applied")
	return db, nil
}
