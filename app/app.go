package app

import (
	"context"
	"log/slog"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/config"
	httpapi "github.com/yasunstudio/toko-oleh-oleh-sub000/internal/api/http"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/apisrv/reports"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/dependency"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/report"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting toko-oleh-oleh reports")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	agg := report.New(&a.c.Reports, a.db.Reports(), nil)
	reportsS := reports.New(agg)

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, reportsS); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
