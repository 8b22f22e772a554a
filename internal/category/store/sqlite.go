package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shandysiswandi/goblog/internal/category/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgsql"
)

//nolint:gochecknoglobals // schema definition
var Migrations = []pkgsql.Migration{
	{
		Name: "create_categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE COLLATE NOCASE,
			description TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
	},
}

const selectColumns = "SELECT id, name, description, created_at, updated_at FROM categories"

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *SQLiteStore) Create(ctx context.Context, c entity.Category) error {
	query := "INSERT INTO categories (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)
	if pkgsql.IsUniqueViolation(err) {
		return pkgerror.ErrConflict
	}
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, id int64) (entity.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Category{}, pkgerror.ErrNotFound
	}
	if err != nil {
		return entity.Category{}, err
	}
	return c, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]entity.Category, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+" ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQLiteStore) Update(ctx context.Context, c entity.Category) error {
	query := "UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?"
	res, err := s.db.ExecContext(ctx, query, c.Name, c.Description, c.UpdatedAt, c.ID)
	if pkgsql.IsUniqueViolation(err) {
		return pkgerror.ErrConflict
	}
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pkgerror.ErrNotFound
	}
	return nil
}
