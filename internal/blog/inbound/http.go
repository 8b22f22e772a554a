package inbound

import (
	"context"
	"io"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/blog/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

type uc interface {
	SaveImage(ctx context.Context, filename string, src io.Reader) (string, error)
	DiscardImage(ctx context.Context, name string)
	Create(ctx context.Context, in usecase.CreateInput) (entity.Blog, error)
	Get(ctx context.Context, id string) (entity.Blog, error)
	List(ctx context.Context, in usecase.ListInput) (usecase.ListResult, error)
	Delete(ctx context.Context, id string) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	g := r.Group("/blog")
	g.POST("", end.Create) // multipart with optional "image" part, or JSON / urlencoded
	g.GET("", end.List)    // ?category_id=&author_id=&page=&page_size=
	g.GET("/:id", end.Get)
	g.DELETE("/:id", end.Delete)
}
