package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goblog/internal/pkg/pkglog"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgupload"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

type closer struct {
	name string
	fn   func(context.Context) error
}

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// resources
	db      *sql.DB
	uploads *pkgupload.Storage

	// server
	router     *pkgrouter.Router
	handler    http.Handler
	httpServer *http.Server

	// closed in order by Stop
	closers []closer
}

// New builds the application from ./config/config.yaml (LOCAL=true) or
// /config/config.yaml and exits the process when anything fails.
func New() *App {
	pkglog.InitLogging()

	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path, Defaults())
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	app, err := build(cfg)
	if err != nil {
		slog.Error("failed to init application", "error", err)
		os.Exit(1)
	}

	return app
}

func build(cfg pkgconfig.Config) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	steps := []func() error{
		func() error { return app.initConfig(cfg) },
		app.initLibraries,
		app.initResources,
		app.initHTTPServer,
		app.initModules,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			app.Stop(context.Background())
			return nil, err
		}
	}

	return app, nil
}

// Handler returns the assembled request pipeline.
func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) addCloser(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}
