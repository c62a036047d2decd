package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// ReminderRepository is an in-memory reminder store.
type ReminderRepository struct {
	mu        sync.Mutex
	reminders map[string]domain.Reminder
}

func NewReminderRepository() *ReminderRepository {
	return &ReminderRepository{reminders: make(map[string]domain.Reminder)}
}

func (r *ReminderRepository) Create(_ context.Context, reminder *domain.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminder.ID = uuid.NewString()
	r.reminders[reminder.ID] = *reminder
	return nil
}

func (r *ReminderRepository) FindByID(_ context.Context, id string) (*domain.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rem, ok := r.reminders[id]
	if !ok {
		return nil, domain.ErrReminderNotFound
	}
	clone := rem
	return &clone, nil
}

func (r *ReminderRepository) List(_ context.Context, ownerID string) ([]domain.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminders := make([]domain.Reminder, 0, len(r.reminders))
	for _, rem := range r.reminders {
		if ownerID == "" || rem.OwnerID == ownerID {
			reminders = append(reminders, rem)
		}
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].CreatedAt.After(reminders[j].CreatedAt)
	})
	return reminders, nil
}

func (r *ReminderRepository) Update(_ context.Context, reminder *domain.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reminders[reminder.ID]; !ok {
		return domain.ErrReminderNotFound
	}
	r.reminders[reminder.ID] = *reminder
	return nil
}

func (r *ReminderRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reminders[id]; !ok {
		return domain.ErrReminderNotFound
	}
	delete(r.reminders, id)
	return nil
}
