package inmemory

import (
	"context"
	"sync"

	"github.com/agrosense/identity-service/internal/domain/entity"
	"github.com/agrosense/identity-service/internal/domain/repository"
	"github.com/agrosense/identity-service/pkg/apperr"
)

// UserRepository is a map-backed UserRepository used by tests and local
// runs. It enforces the same unique-email constraint Postgres does.
type UserRepository struct {
	mu    sync.RWMutex
	store map[string]*entity.User // keyed by id
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{store: make(map[string]*entity.User)}
}

func (r *UserRepository) Add(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.store {
		if existing.Email == u.Email {
			return apperr.Conflict("email already in use")
		}
	}
	cp := *u
	r.store[cp.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetAll(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.store))
	for _, u := range r.store {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.store {
		if id != u.ID && existing.Email == u.Email {
			return apperr.Conflict("email already in use")
		}
	}
	cp := *u
	r.store[cp.ID] = &cp
	return nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
