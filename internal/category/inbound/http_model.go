package inbound

import (
	"net/http"
	"strconv"

	"github.com/shandysiswandi/goblog/internal/category/entity"
)

type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Category renders the snowflake id as a string so JavaScript clients keep
// every digit.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

type CreatedCategory struct {
	Category
}

func (CreatedCategory) StatusCode() int {
	return http.StatusCreated
}

func (CreatedCategory) Message() string {
	return "category created"
}

type ListResponse struct {
	Categories []Category `json:"categories"`
}

func (r ListResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.Categories)}
}

func toHTTPCategory(c entity.Category) Category {
	return Category{
		ID:          strconv.FormatInt(c.ID, 10),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
