package ports

import (
	"context"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// ReminderRepository defines persistence operations for reminders. The
// contract mirrors TodoRepository exactly; the two resource types share all
// access-control semantics.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	FindByID(ctx context.Context, id string) (*domain.Reminder, error)
	List(ctx context.Context, ownerID string) ([]domain.Reminder, error)
	Update(ctx context.Context, reminder *domain.Reminder) error
	Delete(ctx context.Context, id string) error
}
