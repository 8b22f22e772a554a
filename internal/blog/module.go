package blog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shandysiswandi/goblog/internal/blog/event"
	"github.com/shandysiswandi/goblog/internal/blog/inbound"
	"github.com/shandysiswandi/goblog/internal/blog/store"
	"github.com/shandysiswandi/goblog/internal/blog/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgsql"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgupload"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Uploads   *pkgupload.Storage
	DB        *sql.DB
	Context   context.Context
	ID        pkguid.StringID
}

// New wires the blog module and starts its image cleanup consumer. The
// returned function stops the consumer.
func New(dep Dependency) (func(context.Context) error, error) {
	if dep.Uploads == nil || dep.Goroutine == nil || dep.Router == nil {
		return nil, errors.New("blog: missing dependency")
	}
	if dep.Context == nil {
		dep.Context = context.Background()
	}

	var storage usecase.Store = store.NewInMemoryStore()
	if dep.DB != nil {
		if err := pkgsql.Migrate(dep.Context, dep.DB, store.Migrations...); err != nil {
			return nil, err
		}
		storage = store.NewSQLiteStore(dep.DB)
	}

	cfg := event.ConsumerConfig{Workers: 2, MaxRetries: 3, BaseBackoff: 200 * time.Millisecond}
	if dep.Config != nil {
		cfg = event.ConsumerConfig{
			Workers:     int(dep.Config.GetInt("blog.cleanup.workers")),
			MaxRetries:  int(dep.Config.GetInt("blog.cleanup.max_retries")),
			BaseBackoff: dep.Config.GetMillis("blog.cleanup.base_backoff_ms"),
			DedupWindow: int(dep.Config.GetInt("blog.cleanup.dedup_window")),
		}
	}

	bus := event.NewBus(256)
	consumer := event.NewCleanupConsumer(bus, event.ImageCleaner{Files: dep.Uploads}, cfg)
	consumer.Start()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store:   storage,
		Images:  dep.Uploads,
		Events:  bus,
		Runner:  dep.Goroutine,
		ID:      dep.ID,
		RootCtx: dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return consumer.Stop, nil
}
