package ports

import (
	"context"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// TodoService defines use-case operations for todos. Every mutating
// operation enforces the owner-or-admin rule and fails with
// domain.ErrTodoNotFound or domain.ErrForbidden, in that order.
type TodoService interface {
	// List returns all todos for admins, the caller's own for everyone else,
	// newest first.
	List(ctx context.Context, caller *domain.User) ([]domain.Todo, error)
	Create(ctx context.Context, caller *domain.User, text string) (*domain.Todo, error)
	Update(ctx context.Context, caller *domain.User, id, text string) (*domain.Todo, error)
	// Toggle flips the completed flag; applying it twice restores the
	// original value.
	Toggle(ctx context.Context, caller *domain.User, id string) (*domain.Todo, error)
	Delete(ctx context.Context, caller *domain.User, id string) error
}
