package user

import (
	"context"
	"database/sql"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgsql"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
	"github.com/shandysiswandi/goblog/internal/user/inbound"
	"github.com/shandysiswandi/goblog/internal/user/store"
	"github.com/shandysiswandi/goblog/internal/user/usecase"
)

type Dependency struct {
	Context context.Context
	Router  *pkgrouter.Router
	DB      *sql.DB
	ID      pkguid.StringID
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
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store: storage,
		ID:    dep.ID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
