package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goblog/internal/pkg/pkglog"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgsql"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgupload"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

// Defaults are the values used for keys missing from the file and the
// environment.
func Defaults() map[string]any {
	return map[string]any{
		"tz":                           "UTC",
		"log.level":                    "info",
		"server.address.http":          ":3000",
		"server.body.limit":            pkgrouter.DefaultBodyLimit,
		"upload.dir":                   "uploads",
		"upload.max_file_size":         pkgupload.DefaultMaxFileSize,
		"storage.driver":               "memory",
		"storage.sqlite.dsn":           "data/goblog.db",
		"modules.user.enabled":         true,
		"modules.category.enabled":     true,
		"modules.blog.enabled":         true,
		"blog.cleanup.workers":         2,
		"blog.cleanup.max_retries":     3,
		"blog.cleanup.base_backoff_ms": 200,
		"blog.cleanup.dedup_window":    1024,
	}
}

func (a *App) initConfig(cfg pkgconfig.Config) error {
	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.SetLevel(cfg.GetString("log.level"))

	a.config = cfg
	a.addCloser("Config", func(_ context.Context) error {
		return a.config.Close()
	})

	return nil
}

func (a *App) initLibraries() error {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	node, err := pkguid.NewSnowflake()
	if err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}
	a.snowflake = node

	return nil
}

func (a *App) initResources() error {
	uploads, err := pkgupload.New(a.config.GetString("upload.dir"), a.config.GetInt("upload.max_file_size"), pkguid.NewULID())
	if err != nil {
		return err
	}
	a.uploads = uploads
	slog.Info("upload storage ready", "dir", uploads.Dir(), "max_file_size", uploads.MaxFileSize())

	switch driver := a.config.GetString("storage.driver"); driver {
	case "", "memory":
		slog.Info("using in-memory storage")
	case "sqlite":
		dsn := a.config.GetString("storage.sqlite.dsn")
		db, err := pkgsql.OpenSQLite(a.ctx, dsn)
		if err != nil {
			return err
		}
		a.db = db
		a.addCloser("SQLite", func(context.Context) error {
			return a.db.Close()
		})
		slog.Info("using sqlite storage", "dsn", dsn)
	default:
		return fmt.Errorf("unsupported storage driver %q", driver)
	}

	return nil
}

func (a *App) initHTTPServer() error {
	a.router = pkgrouter.NewRouter(a.uuid, pkgrouter.WithBodyLimit(a.config.GetInt("server.body.limit")))
	a.router.Static(pkgupload.PublicPrefix, a.uploads.Dir())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})

	a.handler = corsHandler.Handler(pkgrouter.AllowAnyOrigin(a.router))
	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return nil
}
