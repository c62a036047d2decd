package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tasknest/tasknest/internal/core/domain"
	"github.com/tasknest/tasknest/internal/core/ports"
)

const defaultCategory = "Personal"

// ReminderService implements the reminder use cases. The guard sequence on
// every mutation is the same as TodoService: not found first, then the
// ownership check, then the action.
type ReminderService struct {
	repo     ports.ReminderRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewReminderService(repo ports.ReminderRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *ReminderService {
	return &ReminderService{repo: repo, activity: activity, logger: logger}
}

func (s *ReminderService) List(ctx context.Context, caller *domain.User) ([]domain.Reminder, error) {
	return s.repo.List(ctx, listScope(caller))
}

func (s *ReminderService) Create(ctx context.Context, caller *domain.User, input ports.CreateReminderInput) (*domain.Reminder, error) {
	now := time.Now().UTC()

	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = now
	}
	category := input.Category
	if category == "" {
		category = defaultCategory
	}

	reminder := &domain.Reminder{
		Text:      input.Text,
		Completed: false,
		OwnerID:   caller.ID,
		OwnerName: caller.Name,
		CreatedAt: now,
		DueDate:   dueDate,
		Time:      input.Time,
		Category:  category,
	}

	if err := s.repo.Create(ctx, reminder); err != nil {
		s.logger.Error().Err(err).Str("owner_id", caller.ID).Msg("failed to create reminder")
		return nil, err
	}

	s.record(caller, domain.ActionCreated, reminder)
	return reminder, nil
}

func (s *ReminderService) Update(ctx context.Context, caller *domain.User, id string, input ports.UpdateReminderInput) (*domain.Reminder, error) {
	reminder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return withOwnershipCheck(caller, reminder.OwnerID, func() (*domain.Reminder, error) {
		if input.Text != nil {
			reminder.Text = *input.Text
		}
		if input.Time != nil {
			reminder.Time = *input.Time
		}
		if input.DueDate != nil {
			reminder.DueDate = *input.DueDate
		}
		if input.Category != nil {
			reminder.Category = *input.Category
		}
		if err := s.repo.Update(ctx, reminder); err != nil {
			return nil, err
		}
		s.record(caller, domain.ActionUpdated, reminder)
		return reminder, nil
	})
}

func (s *ReminderService) Toggle(ctx context.Context, caller *domain.User, id string) (*domain.Reminder, error) {
	reminder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return withOwnershipCheck(caller, reminder.OwnerID, func() (*domain.Reminder, error) {
		reminder.Completed = !reminder.Completed
		if err := s.repo.Update(ctx, reminder); err != nil {
			return nil, err
		}
		action := domain.ActionCompleted
		if !reminder.Completed {
			action = domain.ActionReopened
		}
		s.record(caller, action, reminder)
		return reminder, nil
	})
}

func (s *ReminderService) Delete(ctx context.Context, caller *domain.User, id string) error {
	reminder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = withOwnershipCheck(caller, reminder.OwnerID, func() (struct{}, error) {
		if err := s.repo.Delete(ctx, id); err != nil {
			return struct{}{}, err
		}
		s.record(caller, domain.ActionDeleted, reminder)
		return struct{}{}, nil
	})
	return err
}

func (s *ReminderService) record(caller *domain.User, action string, reminder *domain.Reminder) {
	if s.activity == nil {
		return
	}
	s.activity.Record(ports.ActivityInput{
		ActorID:      caller.ID,
		ActorName:    caller.Name,
		Action:       action,
		ResourceType: domain.ResourceReminder,
		ResourceID:   reminder.ID,
		Text:         reminder.Text,
		Timestamp:    time.Now().UTC(),
	})
}
