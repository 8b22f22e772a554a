package store

import (
	"context"
	"testing"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreListFilterAndPaging(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore()

	require.NoError(t, s.Create(ctx, entity.Blog{ID: "b1", AuthorID: "u1", CategoryID: "c1", CreatedAt: 1}))
	require.NoError(t, s.Create(ctx, entity.Blog{ID: "b2", AuthorID: "u1", CategoryID: "c2", CreatedAt: 2}))
	require.NoError(t, s.Create(ctx, entity.Blog{ID: "b3", AuthorID: "u2", CategoryID: "c1", CreatedAt: 3}))
	assert.ErrorIs(t, s.Create(ctx, entity.Blog{ID: "b1"}), pkgerror.ErrConflict)

	tests := []struct {
		name      string
		filter    entity.Filter
		page      int
		size      int
		wantIDs   []string
		wantTotal int
	}{
		{name: "all", page: 1, size: 10, wantIDs: []string{"b3", "b2", "b1"}, wantTotal: 3},
		{name: "author", filter: entity.Filter{AuthorID: "u1"}, page: 1, size: 10, wantIDs: []string{"b2", "b1"}, wantTotal: 2},
		{name: "author and category", filter: entity.Filter{AuthorID: "u1", CategoryID: "c1"}, page: 1, size: 10, wantIDs: []string{"b1"}, wantTotal: 1},
		{name: "second page", page: 2, size: 2, wantIDs: []string{"b1"}, wantTotal: 3},
		{name: "past the end", page: 5, size: 2, wantIDs: []string{}, wantTotal: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blogs, total, err := s.List(ctx, tt.filter, tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			ids := make([]string, 0, len(blogs))
			for _, b := range blogs {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestInMemoryStoreDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore()

	require.NoError(t, s.Create(ctx, entity.Blog{ID: "b1"}))
	require.NoError(t, s.Delete(ctx, "b1"))
	assert.ErrorIs(t, s.Delete(ctx, "b1"), pkgerror.ErrNotFound)

	_, err := s.Get(ctx, "b1")
	assert.ErrorIs(t, err, pkgerror.ErrNotFound)
}
