package ports

import (
	"context"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// UserRepository defines persistence for credential records. The store is a
// dumb keyed collection; uniqueness of email is surfaced as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
