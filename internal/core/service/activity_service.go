package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopcore/commerce-api/internal/api/metrics"
	"github.com/shopcore/commerce-api/internal/core/domain"
	"github.com/shopcore/commerce-api/internal/core/ports"
)

// ActivityService persists auth activity entries. It runs behind the queue
// dispatcher's workers; failures are logged and counted, never propagated to
// the request that produced the entry.
type ActivityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

func (s *ActivityService) Record(ctx context.Context, activity domain.Activity) error {
	if err := s.repo.Insert(ctx, &activity); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", activity.UserID).
			Str("kind", string(activity.Kind)).
			Msg("failed to persist auth activity")
		return err
	}

	metrics.ActivityRecordedTotal.WithLabelValues(string(activity.Kind)).Inc()
	return nil
}
