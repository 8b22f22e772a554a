package store

import (
	"context"
	"testing"

	"github.com/shandysiswandi/goblog/internal/category/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreNameIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore()

	require.NoError(t, s.Create(ctx, entity.Category{ID: 2, Name: "Go"}))
	require.NoError(t, s.Create(ctx, entity.Category{ID: 1, Name: "Rust"}))
	assert.ErrorIs(t, s.Create(ctx, entity.Category{ID: 3, Name: "GO"}), pkgerror.ErrConflict)
	assert.ErrorIs(t, s.Update(ctx, entity.Category{ID: 1, Name: "go"}), pkgerror.ErrConflict)

	// renaming to a different case of its own name is allowed
	require.NoError(t, s.Update(ctx, entity.Category{ID: 2, Name: "GO"}))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "GO", list[1].Name)

	require.NoError(t, s.Delete(ctx, 2))
	require.NoError(t, s.Create(ctx, entity.Category{ID: 3, Name: "go"}))
	assert.ErrorIs(t, s.Delete(ctx, 2), pkgerror.ErrNotFound)
	_, err = s.Get(ctx, 2)
	assert.ErrorIs(t, err, pkgerror.ErrNotFound)
}
