package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tasknest/tasknest/internal/core/domain"
	"github.com/tasknest/tasknest/internal/core/ports"
)

// TodoService implements the todo use cases on top of an injected repository.
type TodoService struct {
	repo     ports.TodoRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, activity: activity, logger: logger}
}

func (s *TodoService) List(ctx context.Context, caller *domain.User) ([]domain.Todo, error) {
	return s.repo.List(ctx, listScope(caller))
}

func (s *TodoService) Create(ctx context.Context, caller *domain.User, text string) (*domain.Todo, error) {
	todo := &domain.Todo{
		Text:      text,
		Completed: false,
		OwnerID:   caller.ID,
		OwnerName: caller.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		s.logger.Error().Err(err).Str("owner_id", caller.ID).Msg("failed to create todo")
		return nil, err
	}

	s.record(caller, domain.ActionCreated, todo)
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, caller *domain.User, id, text string) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return withOwnershipCheck(caller, todo.OwnerID, func() (*domain.Todo, error) {
		todo.Text = text
		if err := s.repo.Update(ctx, todo); err != nil {
			return nil, err
		}
		s.record(caller, domain.ActionUpdated, todo)
		return todo, nil
	})
}

func (s *TodoService) Toggle(ctx context.Context, caller *domain.User, id string) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return withOwnershipCheck(caller, todo.OwnerID, func() (*domain.Todo, error) {
		todo.Completed = !todo.Completed
		if err := s.repo.Update(ctx, todo); err != nil {
			return nil, err
		}
		action := domain.ActionCompleted
		if !todo.Completed {
			action = domain.ActionReopened
		}
		s.record(caller, action, todo)
		return todo, nil
	})
}

func (s *TodoService) Delete(ctx context.Context, caller *domain.User, id string) error {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = withOwnershipCheck(caller, todo.OwnerID, func() (struct{}, error) {
		if err := s.repo.Delete(ctx, id); err != nil {
			return struct{}{}, err
		}
		s.record(caller, domain.ActionDeleted, todo)
		return struct{}{}, nil
	})
	return err
}

func (s *TodoService) record(caller *domain.User, action string, todo *domain.Todo) {
	if s.activity == nil {
		return
	}
	s.activity.Record(ports.ActivityInput{
		ActorID:      caller.ID,
		ActorName:    caller.Name,
		Action:       action,
		ResourceType: domain.ResourceTodo,
		ResourceID:   todo.ID,
		Text:         todo.Text,
		Timestamp:    time.Now().UTC(),
	})
}
