package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tasknest/tasknest/internal/api/metrics"
	"github.com/tasknest/tasknest/internal/core/domain"
	"github.com/tasknest/tasknest/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, resourceID, action string, ts time.Time) (bool, error)
	Mark(ctx context.Context, resourceID, action string, ts time.Time) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single activity event. Failures here
// are logged and counted but never propagate back to the request that
// produced the event.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, in.ResourceID, in.Action, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("resource_id", in.ResourceID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.ActivityDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("resource_id", in.ResourceID).Str("action", in.Action).Msg("duplicate activity skipped")
		return nil
	}
	metrics.ActivityDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, in.ResourceID, in.Action, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("resource_id", in.ResourceID).Msg("failed to set dedup key")
	}

	event := &domain.ActivityEvent{
		ActorID:      in.ActorID,
		ActorName:    in.ActorName,
		Action:       in.Action,
		ResourceType: in.ResourceType,
		ResourceID:   in.ResourceID,
		Text:         in.Text,
		Timestamp:    in.Timestamp,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process activity: %w", err)
	}

	metrics.ActivityProcessedTotal.WithLabelValues(in.Action, in.ResourceType).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(in.Action).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("actor_id", in.ActorID).
		Str("action", in.Action).
		Str("resource", in.ResourceType+"/"+in.ResourceID).
		Msg("activity recorded")

	return nil
}
