package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// ActivityRepository is an in-memory activity trail, newest first.
type ActivityRepository struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Insert(_ context.Context, event *domain.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = uuid.NewString()
	r.events = append([]domain.ActivityEvent{*event}, r.events...)
	return nil
}

func (r *ActivityRepository) ListRecent(_ context.Context, limit int) ([]domain.ActivityEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]domain.ActivityEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}
