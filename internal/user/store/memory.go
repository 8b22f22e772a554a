package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/user/entity"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	users   map[string]entity.User
	byEmail map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:   make(map[string]entity.User),
		byEmail: make(map[string]string),
	}
}

func (s *InMemoryStore) Create(ctx context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return pkgerror.ErrConflict
	}
	if _, taken := s.byEmail[user.Email]; taken {
		return pkgerror.ErrConflict
	}

	s.users[user.ID] = user
	s.byEmail[user.Email] = user.ID

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return entity.User{}, pkgerror.ErrNotFound
	}

	return user, nil
}

func (s *InMemoryStore) List(ctx context.Context) ([]entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]entity.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt == users[j].CreatedAt {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt < users[j].CreatedAt
	})

	return users, nil
}

func (s *InMemoryStore) Update(ctx context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[user.ID]
	if !ok {
		return pkgerror.ErrNotFound
	}

	if owner, taken := s.byEmail[user.Email]; taken && owner != user.ID {
		return pkgerror.ErrConflict
	}

	delete(s.byEmail, current.Email)
	s.byEmail[user.Email] = user.ID
	s.users[user.ID] = user

	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return pkgerror.ErrNotFound
	}

	delete(s.users, id)
	delete(s.byEmail, user.Email)

	return nil
}
