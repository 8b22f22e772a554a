package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/blog/store"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgupload"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImages struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	saveErr error
}

func (f *fakeImages) Save(ctx context.Context, filename string, src io.Reader) (pkgupload.File, error) {
	if f.saveErr != nil {
		return pkgupload.File{}, f.saveErr
	}
	_, _ = io.Copy(io.Discard, src)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, filename)
	return pkgupload.File{Name: "stored-" + filename, Size: 1}, nil
}

func (f *fakeImages) Remove(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, name)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.ImageRemovedEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event entity.ImageRemovedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type stepClock struct {
	mu  sync.Mutex
	now int64
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now++
	return time.Unix(c.now, 0)
}

type fixture struct {
	uc     *Usecase
	images *fakeImages
	events *recordingPublisher
	runner *pkgroutine.Manager
}

func newFixture() fixture {
	f := fixture{
		images: &fakeImages{},
		events: &recordingPublisher{},
		runner: pkgroutine.NewManager(2),
	}
	f.uc = New(Dependency{
		Store:  store.NewInMemoryStore(),
		Images: f.images,
		Events: f.events,
		Runner: f.runner,
		Clock:  &stepClock{},
		ID:     pkguid.NewUUID(),
	})
	return f
}

func requireFailure(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var perr *pkgerror.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, status, perr.Status())
	assert.Equal(t, msg, perr.Msg())
}

func TestCreateValidationDiscardsImage(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	name, err := f.uc.SaveImage(ctx, "cat.png", bytes.NewBufferString("x"))
	require.NoError(t, err)
	assert.Equal(t, "stored-cat.png", name)

	_, err = f.uc.Create(ctx, CreateInput{Content: "body", Image: name})
	requireFailure(t, err, http.StatusBadRequest, "title is required")

	_, err = f.uc.Create(ctx, CreateInput{Title: "t", Image: name})
	requireFailure(t, err, http.StatusBadRequest, "content is required")

	assert.Equal(t, []string{name, name}, f.images.removed)
}

func TestSaveImagePassesStorageErrors(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.images.saveErr = pkgerror.NewFileTooLarge()

	_, err := f.uc.SaveImage(context.Background(), "big.png", bytes.NewBufferString("x"))
	var perr *pkgerror.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pkgerror.CodeFileTooLarge, perr.Code())
}

func TestCreateGetList(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	first, err := f.uc.Create(ctx, CreateInput{Title: " One ", Content: "a", CategoryID: "7"})
	require.NoError(t, err)
	assert.Equal(t, "One", first.Title)
	assert.True(t, pkguid.IsUUID(first.ID))

	second, err := f.uc.Create(ctx, CreateInput{Title: "Two", Content: "b", AuthorID: "u1"})
	require.NoError(t, err)

	got, err := f.uc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	all, err := f.uc.List(ctx, ListInput{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
	require.Len(t, all.Blogs, 2)
	assert.Equal(t, second.ID, all.Blogs[0].ID, "newest first")

	filtered, err := f.uc.List(ctx, ListInput{Filter: entity.Filter{CategoryID: "7"}, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, filtered.Total)
	assert.Equal(t, first.ID, filtered.Blogs[0].ID)

	paged, err := f.uc.List(ctx, ListInput{Page: 2, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, paged.Total)
	require.Len(t, paged.Blogs, 1)
	assert.Equal(t, first.ID, paged.Blogs[0].ID)

	_, err = f.uc.Get(ctx, "not-a-uuid")
	requireFailure(t, err, http.StatusNotFound, "blog not found")
}

func TestDeletePublishesImageRemoved(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	withImage, err := f.uc.Create(ctx, CreateInput{Title: "t", Content: "c", Image: "a.png"})
	require.NoError(t, err)
	plain, err := f.uc.Create(ctx, CreateInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, withImage.ID))
	require.NoError(t, f.uc.Delete(ctx, plain.ID))
	require.NoError(t, f.runner.Wait())

	require.Len(t, f.events.events, 1)
	assert.Equal(t, withImage.ID, f.events.events[0].BlogID)
	assert.Equal(t, "a.png", f.events.events[0].Image)
	assert.NotEmpty(t, f.events.events[0].EventID)

	requireFailure(t, f.uc.Delete(ctx, withImage.ID), http.StatusNotFound, "blog not found")
}

type failingStore struct {
	store.InMemoryStore
}

func (*failingStore) Create(ctx context.Context, blog entity.Blog) error {
	return errors.New("database is locked")
}

func TestCreateStoreFailureIsServerError(t *testing.T) {
	t.Parallel()

	images := &fakeImages{}
	uc := New(Dependency{Store: &failingStore{}, Images: images, ID: pkguid.NewUUID()})

	_, err := uc.Create(context.Background(), CreateInput{Title: "t", Content: "c", Image: "a.png"})
	requireFailure(t, err, 0, "")
	assert.Equal(t, []string{"a.png"}, images.removed)
}
