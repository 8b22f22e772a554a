package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
	"github.com/shandysiswandi/goblog/internal/user/entity"
)

type Store interface {
	Create(ctx context.Context, user entity.User) error
	Get(ctx context.Context, id string) (entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, user entity.User) error
	Delete(ctx context.Context, id string) error
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store Store
	Clock Clock
	ID    pkguid.StringID
}

type Usecase struct {
	store Store
	clock Clock
	id    pkguid.StringID
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

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.User, error) {
	if u.store == nil || u.id == nil {
		return entity.User{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	name := strings.TrimSpace(in.Name)
	email, err := normalizeEmail(in.Email)
	if name == "" {
		return entity.User{}, pkgerror.NewInvalidInput(errors.New("name is required"))
	}
	if err != nil {
		return entity.User{}, err
	}

	now := u.clock.Now().Unix()
	user := entity.User{
		ID:        u.id.Generate(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.store.Create(ctx, user); err != nil {
		return entity.User{}, mapStoreErr(err)
	}

	return user, nil
}

func (u *Usecase) Get(ctx context.Context, id string) (entity.User, error) {
	if !pkguid.IsUUID(id) {
		return entity.User{}, pkgerror.NewNotFound("user not found")
	}

	user, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.User{}, mapStoreErr(err)
	}

	return user, nil
}

func (u *Usecase) List(ctx context.Context) ([]entity.User, error) {
	users, err := u.store.List(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	return users, nil
}

func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) (entity.User, error) {
	user, err := u.Get(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if strings.TrimSpace(in.Email) != "" {
		email, err := normalizeEmail(in.Email)
		if err != nil {
			return entity.User{}, err
		}
		user.Email = email
	}
	user.UpdatedAt = u.clock.Now().Unix()

	if err := u.store.Update(ctx, user); err != nil {
		return entity.User{}, mapStoreErr(err)
	}

	return user, nil
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	if !pkguid.IsUUID(id) {
		return pkgerror.NewNotFound("user not found")
	}

	if err := u.store.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}

	return nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", pkgerror.NewInvalidInput(errors.New("email is required"))
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return "", pkgerror.NewInvalidInput(errors.New("invalid email"))
	}
	return email, nil
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, pkgerror.ErrNotFound):
		return pkgerror.NewNotFound("user not found")
	case errors.Is(err, pkgerror.ErrConflict):
		return pkgerror.NewBusiness("duplicate user", http.StatusConflict)
	}

	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
