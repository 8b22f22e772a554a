package inbound

import (
	"context"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/user/entity"
	"github.com/shandysiswandi/goblog/internal/user/usecase"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.User, error)
	Get(ctx context.Context, id string) (entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id string, in usecase.UpdateInput) (entity.User, error)
	Delete(ctx context.Context, id string) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	g := r.Group("/user")
	g.POST("", end.Create)
	g.GET("", end.List)
	g.GET("/:id", end.Get)
	g.PUT("/:id", end.Update)
	g.DELETE("/:id", end.Delete)
}
