package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
)

// ResetTokenSweeper periodically clears password reset tokens whose expiry
// has passed.
type ResetTokenSweeper struct {
	userRepository store.UserRepository
	interval       time.Duration
	now            func() time.Time

	logger *logger.Logger
}

func NewResetTokenSweeper(userRepository store.UserRepository, interval time.Duration, logger *logger.Logger) *ResetTokenSweeper {
	return &ResetTokenSweeper{
		userRepository: userRepository,
		interval:       interval,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *ResetTokenSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("reset token sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
	s.logger.Info().Msg("reset token sweeper stopped")
}

func (s *ResetTokenSweeper) sweep(ctx context.Context) {
	cleared, err := s.userRepository.ClearExpiredResetTokens(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("clearing expired reset tokens")
		}
		return
	}
	if cleared > 0 {
		s.logger.Debug().Int64("cleared", cleared).Msg("expired reset tokens cleared")
	}
}
