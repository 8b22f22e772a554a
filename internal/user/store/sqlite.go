package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgsql"
	"github.com/shandysiswandi/goblog/internal/user/entity"
)

//nolint:gochecknoglobals // schema definition
var Migrations = []pkgsql.Migration{
	{
		Name: "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
	},
}

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Create(ctx context.Context, user entity.User) error {
	query := "INSERT INTO users (id, name, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.CreatedAt, user.UpdatedAt)
	if pkgsql.IsUniqueViolation(err) {
		return pkgerror.ErrConflict
	}
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (entity.User, error) {
	query := "SELECT id, name, email, created_at, updated_at FROM users WHERE id = ?"
	var user entity.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, pkgerror.ErrNotFound
	}
	if err != nil {
		return entity.User{}, err
	}
	return user, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]entity.User, error) {
	query := "SELECT id, name, email, created_at, updated_at FROM users ORDER BY created_at ASC, id ASC"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) Update(ctx context.Context, user entity.User) error {
	query := "UPDATE users SET name = ?, email = ?, updated_at = ? WHERE id = ?"
	res, err := s.db.ExecContext(ctx, query, user.Name, user.Email, user.UpdatedAt, user.ID)
	if pkgsql.IsUniqueViolation(err) {
		return pkgerror.ErrConflict
	}
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
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
