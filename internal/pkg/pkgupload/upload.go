package pkgupload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

// PublicPrefix is the URL prefix the uploads directory is served under.
const PublicPrefix = "/uploads"

// DefaultMaxFileSize is used when New receives a non-positive limit.
const DefaultMaxFileSize int64 = 2 << 20

//nolint:gochecknoglobals // read-only lookup table
var allowedExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// File describes a stored upload.
type File struct {
	Name string
	Size int64
}

// Storage writes uploads to a local directory.
type Storage struct {
	dir         string
	maxFileSize int64
	id          pkguid.StringID
}

// New creates the upload directory when needed and returns a Storage for it.
func New(dir string, maxFileSize int64, id pkguid.StringID) (*Storage, error) {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	if id == nil {
		id = pkguid.NewULID()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Storage{dir: dir, maxFileSize: maxFileSize, id: id}, nil
}

// Dir returns the directory uploads are written to.
func (s *Storage) Dir() string {
	return s.dir
}

// MaxFileSize returns the per-file limit in bytes.
func (s *Storage) MaxFileSize() int64 {
	return s.maxFileSize
}

// Save copies src into a new file named after a fresh ID and the extension of
// filename. A file over the size limit is removed and reported with
// pkgerror.NewFileTooLarge.
func (s *Storage) Save(ctx context.Context, filename string, src io.Reader) (File, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExt[ext]; !ok {
		return File{}, pkgerror.New(http.StatusBadRequest, "unsupported file type")
	}

	name := s.id.Generate() + ext
	path := filepath.Join(s.dir, name)

	//nolint:gosec // path is built from a generated id
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return File{}, pkgerror.NewServer(err)
	}

	n, copyErr := io.Copy(dst, io.LimitReader(src, s.maxFileSize+1))
	closeErr := dst.Close()

	switch {
	case copyErr != nil:
		s.discard(ctx, path)
		return File{}, pkgerror.NewServer(copyErr)
	case n > s.maxFileSize:
		s.discard(ctx, path)
		return File{}, pkgerror.NewFileTooLarge()
	case closeErr != nil:
		s.discard(ctx, path)
		return File{}, pkgerror.NewServer(closeErr)
	case ctx.Err() != nil:
		s.discard(ctx, path)
		return File{}, ctx.Err()
	}

	return File{Name: name, Size: n}, nil
}

// Remove deletes a stored upload. A file that is already gone is not an error.
func (s *Storage) Remove(_ context.Context, name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid upload name %q", name)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (s *Storage) discard(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.WarnContext(ctx, "failed to discard partial upload", "path", path, "error", err)
	}
}

// PublicPath returns the URL path a stored upload is served under.
func PublicPath(name string) string {
	if name == "" {
		return ""
	}
	return PublicPrefix + "/" + name
}

// NameFromPublicPath is the inverse of PublicPath.
func NameFromPublicPath(path string) string {
	return strings.TrimPrefix(path, PublicPrefix+"/")
}
