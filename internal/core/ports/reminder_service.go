package ports

import (
	"context"
	"time"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// CreateReminderInput carries the caller-supplied fields for a new reminder.
type CreateReminderInput struct {
	Text     string
	Time     string
	DueDate  time.Time
	Category string
}

// UpdateReminderInput carries a partial update; nil fields are left unchanged.
type UpdateReminderInput struct {
	Text     *string
	Time     *string
	DueDate  *time.Time
	Category *string
}

// ReminderService defines use-case operations for reminders. The
// authorization guards are identical to TodoService.
type ReminderService interface {
	List(ctx context.Context, caller *domain.User) ([]domain.Reminder, error)
	Create(ctx context.Context, caller *domain.User, input CreateReminderInput) (*domain.Reminder, error)
	Update(ctx context.Context, caller *domain.User, id string, input UpdateReminderInput) (*domain.Reminder, error)
	Toggle(ctx context.Context, caller *domain.User, id string) (*domain.Reminder, error)
	Delete(ctx context.Context, caller *domain.User, id string) error
}
