package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/codelog/internal/client/client"
	"github.com/dmitrijs2005/codelog/internal/client/models"
	"github.com/dmitrijs2005/codelog/internal/logging"
)

// Cooldown returns how long posting stays blocked for the given streak
// state: ttl minus the allowed interval when ttl exceeds it, else zero.
func Cooldown(info models.StreakInfo, allowed time.Duration) time.Duration {
	ttl := info.TTLDuration()
	if ttl > allowed {
		return ttl - allowed
	}
	return 0
}

// StreakService reads the posting streak and derives the posting cooldown.
type StreakService struct {
	client  client.Client
	guard   AuthGuard
	log     logging.Logger
	allowed time.Duration
}

func NewStreakService(c client.Client, guard AuthGuard, log logging.Logger, allowed time.Duration) *StreakService {
	return &StreakService{client: c, guard: guard, log: log.With("component", "streak"), allowed: allowed}
}

// AllowedInterval is the configured posting interval.
func (s *StreakService) AllowedInterval() time.Duration {
	return s.allowed
}

// Status fetches the streak once and returns it with the remaining
// cooldown (zero when posting is allowed).
func (s *StreakService) Status(ctx context.Context) (models.StreakInfo, time.Duration, error) {
	info, err := s.client.Streaks(ctx)
	if err != nil {
		s.log.Warn(ctx, "fetch streaks failed", "error", err)
		return models.StreakInfo{}, 0, s.guard.Guard(ctx, err)
	}
	return info, Cooldown(info, s.allowed), nil
}
