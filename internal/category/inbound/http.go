package inbound

import (
	"context"

	"github.com/shandysiswandi/goblog/internal/category/entity"
	"github.com/shandysiswandi/goblog/internal/category/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.Category, error)
	Get(ctx context.Context, id int64) (entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, id int64, in usecase.UpdateInput) (entity.Category, error)
	Delete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	g := r.Group("/category")
	g.POST("", end.Create)
	g.GET("", end.List)
	g.GET("/:id", end.Get)
	g.PUT("/:id", end.Update)
	g.DELETE("/:id", end.Delete)
}
