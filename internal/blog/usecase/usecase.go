package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgupload"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

type Store interface {
	Create(ctx context.Context, blog entity.Blog) error
	Get(ctx context.Context, id string) (entity.Blog, error)
	List(ctx context.Context, filter entity.Filter, page, pageSize int) ([]entity.Blog, int, error)
	Delete(ctx context.Context, id string) error
}

type ImageStore interface {
	Save(ctx context.Context, filename string, src io.Reader) (pkgupload.File, error)
	Remove(ctx context.Context, name string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.ImageRemovedEvent) error
}

type Runner interface {
	Go(ctx context.Context, name string, f func(ctx context.Context) error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store   Store
	Images  ImageStore
	Events  EventPublisher
	Runner  Runner
	Clock   Clock
	ID      pkguid.StringID
	RootCtx context.Context
}

type Usecase struct {
	store   Store
	images  ImageStore
	events  EventPublisher
	runner  Runner
	clock   Clock
	id      pkguid.StringID
	rootCtx context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:   dep.Store,
		images:  dep.Images,
		events:  dep.Events,
		runner:  dep.Runner,
		clock:   clock,
		id:      dep.ID,
		rootCtx: root,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// SaveImage stores one uploaded image and returns its stored name.
func (u *Usecase) SaveImage(ctx context.Context, filename string, src io.Reader) (string, error) {
	if u.images == nil {
		return "", pkgerror.NewServer(errors.New("missing image storage"))
	}

	file, err := u.images.Save(ctx, filename, src)
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "blog image stored", "image", file.Name, "size", file.Size)
	return file.Name, nil
}

// DiscardImage removes an image saved by SaveImage that will not be attached
// to any post.
func (u *Usecase) DiscardImage(ctx context.Context, name string) {
	if name == "" || u.images == nil {
		return
	}
	if err := u.images.Remove(ctx, name); err != nil {
		slog.WarnContext(ctx, "failed to discard blog image", "image", name, "error", err)
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.Blog, error) {
	blog, err := u.create(ctx, in)
	if err != nil {
		u.DiscardImage(ctx, in.Image)
		return entity.Blog{}, err
	}
	return blog, nil
}

func (u *Usecase) create(ctx context.Context, in CreateInput) (entity.Blog, error) {
	if u.store == nil || u.id == nil {
		return entity.Blog{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entity.Blog{}, pkgerror.NewInvalidInput(errors.New("title is required"))
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return entity.Blog{}, pkgerror.NewInvalidInput(errors.New("content is required"))
	}

	now := u.clock.Now().Unix()
	blog := entity.Blog{
		ID:         u.id.Generate(),
		Title:      title,
		Content:    content,
		AuthorID:   strings.TrimSpace(in.AuthorID),
		CategoryID: strings.TrimSpace(in.CategoryID),
		Image:      in.Image,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := u.store.Create(ctx, blog); err != nil {
		return entity.Blog{}, mapStoreErr(err)
	}

	return blog, nil
}

func (u *Usecase) Get(ctx context.Context, id string) (entity.Blog, error) {
	if !pkguid.IsUUID(id) {
		return entity.Blog{}, pkgerror.NewNotFound("blog not found")
	}

	blog, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Blog{}, mapStoreErr(err)
	}

	return blog, nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (ListResult, error) {
	blogs, total, err := u.store.List(ctx, in.Filter, in.Page, in.PageSize)
	if err != nil {
		return ListResult{}, mapStoreErr(err)
	}

	return ListResult{
		Blogs:    blogs,
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
	}, nil
}

// Delete removes the post and schedules removal of its image. The image is
// cleaned up after the response; a failed cleanup never fails the request.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	blog, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := u.store.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}

	if blog.Image == "" || u.events == nil || u.runner == nil {
		return nil
	}

	event := entity.ImageRemovedEvent{
		EventID: u.id.Generate(),
		BlogID:  blog.ID,
		Image:   blog.Image,
	}
	u.runner.Go(u.rootCtx, "blog.image_removed", func(ctx context.Context) error {
		if err := u.events.Publish(ctx, event); err != nil {
			slog.ErrorContext(ctx, "failed to publish image removed event", "event_id", event.EventID, "image", event.Image, "error", err)
			return fmt.Errorf("publish image removed: %w", err)
		}
		return nil
	})

	return nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewNotFound("blog not found")
	}

	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
