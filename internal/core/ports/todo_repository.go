package ports

import (
	"context"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// TodoRepository defines persistence operations for todos.
type TodoRepository interface {
	// Create inserts the todo and fills in its server-assigned ID.
	Create(ctx context.Context, todo *domain.Todo) error
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	// List returns todos sorted by created_at descending. When ownerID is
	// non-empty the result is scoped to that owner; empty means all records.
	List(ctx context.Context, ownerID string) ([]domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id string) error
}
