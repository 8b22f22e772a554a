package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shandysiswandi/goblog/internal/category/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

type Store interface {
	Create(ctx context.Context, category entity.Category) error
	Get(ctx context.Context, id int64) (entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, category entity.Category) error
	Delete(ctx context.Context, id int64) error
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store Store
	Clock Clock
	ID    pkguid.NumberID
}

type Usecase struct {
	store Store
	clock Clock
	id    pkguid.NumberID
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store: dep.Store,
		clock: clock,
		id:    dep.ID,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// ParseID converts a path id into a category id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerror.NewInvalidInput(errors.New("invalid category id"))
	}
	return id, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.Category, error) {
	if u.store == nil || u.id == nil {
		return entity.Category{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Category{}, pkgerror.NewInvalidInput(errors.New("name is required"))
	}

	now := u.clock.Now().Unix()
	category := entity.Category{
		ID:          u.id.Generate(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.store.Create(ctx, category); err != nil {
		return entity.Category{}, mapStoreErr(err)
	}

	return category, nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (entity.Category, error) {
	category, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Category{}, mapStoreErr(err)
	}

	return category, nil
}

func (u *Usecase) List(ctx context.Context) ([]entity.Category, error) {
	categories, err := u.store.List(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	return categories, nil
}

func (u *Usecase) Update(ctx context.Context, id int64, in UpdateInput) (entity.Category, error) {
	category, err := u.Get(ctx, id)
	if err != nil {
		return entity.Category{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entity.Category{}, pkgerror.NewInvalidInput(errors.New("name is required"))
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = strings.TrimSpace(*in.Description)
	}
	category.UpdatedAt = u.clock.Now().Unix()

	if err := u.store.Update(ctx, category); err != nil {
		return entity.Category{}, mapStoreErr(err)
	}

	return category, nil
}

func (u *Usecase) Delete(ctx context.Context, id int64) error {
	if err := u.store.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}

	return nil
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, pkgerror.ErrNotFound):
		return pkgerror.NewNotFound("category not found")
	case errors.Is(err, pkgerror.ErrConflict):
		return pkgerror.NewBusiness("duplicate category", http.StatusConflict)
	}

	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
