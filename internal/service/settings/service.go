package settings

import (
	"context"
	"time"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/settings"
)

type service struct {
	settingsRepo settings.Repository
	activityRepo activity.Repository
	now          func() time.Time
}

func NewService(settingsRepo settings.Repository, activityRepo activity.Repository) settings.Service {
	return &service{
		settingsRepo: settingsRepo,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

func (s *service) Get(ctx context.Context) (settings.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *service) Update(ctx context.Context, cfg settings.Settings) (settings.Settings, error) {
	updated, err := s.settingsRepo.Update(ctx, cfg)
	if err != nil {
		return settings.Settings{}, err
	}

	// Best effort, an append failure never fails the update.
	_, _ = s.activityRepo.Append(ctx, activity.Entry{
		Type:        activity.TypeSettingsUpdated,
		Description: "System settings were updated",
		Timestamp:   s.now(),
	})

	return updated, nil
}
