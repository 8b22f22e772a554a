package inbound

import (
	"net/http"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgupload"
)

type CreateRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"author_id"`
	CategoryID string `json:"category_id"`
}

type Blog struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"author_id"`
	CategoryID string `json:"category_id"`
	Image      string `json:"image,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

type CreatedBlog struct {
	Blog
}

func (CreatedBlog) StatusCode() int {
	return http.StatusCreated
}

func (CreatedBlog) Message() string {
	return "blog created"
}

type ListResponse struct {
	Blogs    []Blog `json:"blogs"`
	page     int
	pageSize int
	total    int
}

func (r ListResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}

func toHTTPBlog(b entity.Blog) Blog {
	return Blog{
		ID:         b.ID,
		Title:      b.Title,
		Content:    b.Content,
		AuthorID:   b.AuthorID,
		CategoryID: b.CategoryID,
		Image:      pkgupload.PublicPath(b.Image),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
