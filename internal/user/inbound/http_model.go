package inbound

import (
	"net/http"

	"github.com/shandysiswandi/goblog/internal/user/entity"
)

type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type CreatedUser struct {
	User
}

func (CreatedUser) StatusCode() int {
	return http.StatusCreated
}

func (CreatedUser) Message() string {
	return "user created"
}

type ListResponse struct {
	Users []User `json:"users"`
}

func (r ListResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.Users)}
}

func toHTTPUser(u entity.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
