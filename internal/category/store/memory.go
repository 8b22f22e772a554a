package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shandysiswandi/goblog/internal/category/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu         sync.RWMutex
	categories map[int64]entity.Category
	byName     map[string]int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		categories: make(map[int64]entity.Category),
		byName:     make(map[string]int64),
	}
}

func nameKey(name string) string {
	return strings.ToLower(name)
}

func (s *InMemoryStore) Create(ctx context.Context, category entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.categories[category.ID]; exists {
		return pkgerror.ErrConflict
	}
	if _, taken := s.byName[nameKey(category.Name)]; taken {
		return pkgerror.ErrConflict
	}

	s.categories[category.ID] = category
	s.byName[nameKey(category.Name)] = category.ID

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id int64) (entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return entity.Category{}, pkgerror.ErrNotFound
	}

	return category, nil
}

func (s *InMemoryStore) List(ctx context.Context) ([]entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]entity.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}

	// snowflake ids are time ordered
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].ID < categories[j].ID
	})

	return categories, nil
}

func (s *InMemoryStore) Update(ctx context.Context, category entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.categories[category.ID]
	if !ok {
		return pkgerror.ErrNotFound
	}

	if owner, taken := s.byName[nameKey(category.Name)]; taken && owner != category.ID {
		return pkgerror.ErrConflict
	}

	delete(s.byName, nameKey(current.Name))
	s.byName[nameKey(category.Name)] = category.ID
	s.categories[category.ID] = category

	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return pkgerror.ErrNotFound
	}

	delete(s.categories, id)
	delete(s.byName, nameKey(category.Name))

	return nil
}
