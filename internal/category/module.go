package category

import (
	"context"
	"database/sql"

	"github.com/shandysiswandi/goblog/internal/category/inbound"
	"github.com/shandysiswandi/goblog/internal/category/store"
	"github.com/shandysiswandi/goblog/internal/category/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgsql"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

type Dependency struct {
	Context context.Context
	Router  *pkgrouter.Router
	DB      *sql.DB
	ID      pkguid.NumberID
}

func New(dep Dependency) error {
	if dep.Context == nil {
		dep.Context = context.Background()
	}

	var storage usecase.Store = store.NewInMemoryStore()
	if dep.DB != nil {
		if err := pkgsql.Migrate(dep.Context, dep.DB, store.Migrations...); err != nil {
			return err
		}
		storage = store.NewSQLiteStore(dep.DB)
	}

	if dep.ID == nil {
		node, err := pkguid.NewSnowflake()
		if err != nil {
			return err
		}
		dep.ID = node
	}

	uc := usecase.New(usecase.Dependency{
		Store: storage,
		ID:    dep.ID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
