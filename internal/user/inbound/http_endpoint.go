package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/user/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	var req UserRequest
	if err := pkgrouter.Bind(r, &req); err != nil {
		return nil, err
	}

	user, err := h.uc.Create(ctx, usecase.CreateInput{Name: req.Name, Email: req.Email})
	if err != nil {
		return nil, err
	}

	return CreatedUser{User: toHTTPUser(user)}, nil
}

func (h *HTTPEndpoint) List(ctx context.Context, _ *http.Request) (any, error) {
	users, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := ListResponse{Users: make([]User, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, toHTTPUser(user))
	}

	return resp, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, _ *http.Request) (any, error) {
	user, err := h.uc.Get(ctx, pkgrouter.GetTrimmedParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return toHTTPUser(user), nil
}

func (h *HTTPEndpoint) Update(ctx context.Context, r *http.Request) (any, error) {
	var req UserRequest
	if err := pkgrouter.Bind(r, &req); err != nil {
		return nil, err
	}

	user, err := h.uc.Update(ctx, pkgrouter.GetTrimmedParam(ctx, "id"), usecase.UpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return nil, err
	}

	return toHTTPUser(user), nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, _ *http.Request) (any, error) {
	if err := h.uc.Delete(ctx, pkgrouter.GetTrimmedParam(ctx, "id")); err != nil {
		return nil, err
	}

	return nil, nil
}
