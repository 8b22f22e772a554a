package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgsql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blogColumns = []string{"id", "title", "content", "author_id", "category_id", "image", "created_at", "updated_at"}

func TestSQLiteStoreListBuildsFilteredQuery(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM blogs WHERE author_id = ? AND category_id = ?")).
		WithArgs("u1", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(selectColumns + " WHERE author_id = ? AND category_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")).
		WithArgs("u1", "c1", 2, 2).
		WillReturnRows(sqlmock.NewRows(blogColumns).AddRow("b1", "t", "c", "u1", "c1", "a.png", 1, 1))

	blogs, total, err := NewSQLiteStore(db).List(context.Background(), entity.Filter{AuthorID: "u1", CategoryID: "c1"}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []entity.Blog{{
		ID: "b1", Title: "t", Content: "c", AuthorID: "u1", CategoryID: "c1", Image: "a.png", CreatedAt: 1, UpdatedAt: 1,
	}}, blogs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStoreListWithoutFilter(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(selectColumns + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(blogColumns))

	blogs, total, err := NewSQLiteStore(db).List(context.Background(), entity.Filter{}, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, blogs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStoreAgainstRealDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := pkgsql.OpenSQLite(ctx, "file:blogs_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, pkgsql.Migrate(ctx, db, Migrations...))

	s := NewSQLiteStore(db)
	blog := entity.Blog{ID: "b1", Title: "t", Content: "c", Image: "a.png", CreatedAt: 5, UpdatedAt: 5}
	require.NoError(t, s.Create(ctx, blog))
	assert.ErrorIs(t, s.Create(ctx, blog), pkgerror.ErrConflict)

	got, err := s.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, blog, got)

	require.NoError(t, s.Delete(ctx, "b1"))
	assert.ErrorIs(t, s.Delete(ctx, "b1"), pkgerror.ErrNotFound)
	_, err = s.Get(ctx, "b1")
	assert.ErrorIs(t, err, pkgerror.ErrNotFound)
}
