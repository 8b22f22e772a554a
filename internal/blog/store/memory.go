package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu    sync.RWMutex
	blogs map[string]entity.Blog
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		blogs: make(map[string]entity.Blog),
	}
}

func (s *InMemoryStore) Create(ctx context.Context, blog entity.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.blogs[blog.ID]; exists {
		return pkgerror.ErrConflict
	}

	s.blogs[blog.ID] = blog
	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id string) (entity.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blog, ok := s.blogs[id]
	if !ok {
		return entity.Blog{}, pkgerror.ErrNotFound
	}

	return blog, nil
}

// List returns the newest posts first.
func (s *InMemoryStore) List(ctx context.Context, filter entity.Filter, page, pageSize int) ([]entity.Blog, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Blog, 0)
	for _, blog := range s.blogs {
		if filter.AuthorID != "" && blog.AuthorID != filter.AuthorID {
			continue
		}
		if filter.CategoryID != "" && blog.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, blog)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt == matched[j].CreatedAt {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt > matched[j].CreatedAt
	})

	total := len(matched)
	start := (page - 1) * pageSize
	if start >= total {
		return []entity.Blog{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[id]; !ok {
		return pkgerror.ErrNotFound
	}

	delete(s.blogs, id)
	return nil
}
