// Package memory provides map-backed repository implementations. They satisfy
// the same ports as the MongoDB repositories and are used by tests and local
// development. Access is serialized with a mutex; business-level concurrency
// stays last-write-wins, matching the production store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// UserRepository is an in-memory credential store.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	created := *user
	created.ID = uuid.NewString()
	r.users[created.ID] = created
	return &created, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := u
	return &clone, nil
}

// Promote flips a user to the admin role. Not part of the repository port;
// tests use it because there is no API for role elevation.
func (r *UserRepository) Promote(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		u.Role = domain.RoleAdmin
		r.users[id] = u
	}
}

// Delete removes a user. Not part of the repository port; tests use it to
// verify that tokens for deleted users stop validating.
func (r *UserRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}
