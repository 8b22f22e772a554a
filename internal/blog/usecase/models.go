package usecase

import "github.com/shandysiswandi/goblog/internal/blog/entity"

type CreateInput struct {
	Title      string
	Content    string
	AuthorID   string
	CategoryID string
	// Image is a name returned by SaveImage. Create removes it when the
	// post cannot be stored.
	Image string
}

type ListInput struct {
	Filter   entity.Filter
	Page     int
	PageSize int
}

type ListResult struct {
	Blogs    []entity.Blog
	Page     int
	PageSize int
	Total    int
}
