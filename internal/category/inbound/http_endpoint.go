package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goblog/internal/category/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	var req CreateRequest
	if err := pkgrouter.Bind(r, &req); err != nil {
		return nil, err
	}

	category, err := h.uc.Create(ctx, usecase.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	return CreatedCategory{Category: toHTTPCategory(category)}, nil
}

func (h *HTTPEndpoint) List(ctx context.Context, _ *http.Request) (any, error) {
	categories, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := ListResponse{Categories: make([]Category, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, toHTTPCategory(c))
	}

	return resp, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, _ *http.Request) (any, error) {
	id, err := usecase.ParseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	category, err := h.uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toHTTPCategory(category), nil
}

func (h *HTTPEndpoint) Update(ctx context.Context, r *http.Request) (any, error) {
	id, err := usecase.ParseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	var req UpdateRequest
	if err := pkgrouter.Bind(r, &req); err != nil {
		return nil, err
	}

	category, err := h.uc.Update(ctx, id, usecase.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	return toHTTPCategory(category), nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, _ *http.Request) (any, error) {
	id, err := usecase.ParseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		return nil, err
	}

	return nil, nil
}
