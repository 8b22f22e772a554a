package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgsql"
)

//nolint:gochecknoglobals // schema definition
var Migrations = []pkgsql.Migration{
	{
		Name: "create_blogs",
		SQL: `CREATE TABLE IF NOT EXISTS blogs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			author_id TEXT NOT NULL DEFAULT '',
			category_id TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
	},
	{
		Name: "index_blogs_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blogs_created_at ON blogs (created_at DESC, id DESC)`,
	},
}

const selectColumns = "SELECT id, title, content, author_id, category_id, image, created_at, updated_at FROM blogs"

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBlog(row scanner) (entity.Blog, error) {
	var b entity.Blog
	err := row.Scan(&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.CategoryID, &b.Image, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (s *SQLiteStore) Create(ctx context.Context, b entity.Blog) error {
	query := "INSERT INTO blogs (id, title, content, author_id, category_id, image, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query, b.ID, b.Title, b.Content, b.AuthorID, b.CategoryID, b.Image, b.CreatedAt, b.UpdatedAt)
	if pkgsql.IsUniqueViolation(err) {
		return pkgerror.ErrConflict
	}
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (entity.Blog, error) {
	b, err := scanBlog(s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Blog{}, pkgerror.ErrNotFound
	}
	if err != nil {
		return entity.Blog{}, err
	}
	return b, nil
}

func whereClause(filter entity.Filter) (string, []any) {
	var conds []string
	var args []any
	if filter.AuthorID != "" {
		conds = append(conds, "author_id = ?")
		args = append(args, filter.AuthorID)
	}
	if filter.CategoryID != "" {
		conds = append(conds, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *SQLiteStore) List(ctx context.Context, filter entity.Filter, page, pageSize int) ([]entity.Blog, int, error) {
	where, args := whereClause(filter)

	var total int
	//nolint:gosec // where only contains fixed column names
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blogs"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	//nolint:gosec // where only contains fixed column names
	query := selectColumns + where + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := s.db.QueryContext(ctx, query, append(args, pageSize, (page-1)*pageSize)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	blogs := make([]entity.Blog, 0, pageSize)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, 0, err
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM blogs WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pkgerror.ErrNotFound
	}
	return nil
}
