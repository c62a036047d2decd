package ports

import (
	"context"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// ActivityRepository defines persistence for the activity audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// ListRecent returns the newest events first, at most limit entries.
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}
