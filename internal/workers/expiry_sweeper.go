package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/store"
)

// ExpirySweeper periodically removes expired entries from backends that do
// not expire keys on their own.
type ExpirySweeper struct {
	purger   store.Purger
	interval time.Duration
	logger   *logger.Logger
}

func NewExpirySweeper(purger store.Purger, interval time.Duration, logger *logger.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (s *ExpirySweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("expiry sweeper started")
	runEvery(ctx, s.interval, s.sweep)
	s.logger.Info().Msg("expiry sweeper stopped")
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	purged, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*ExpirySweeper.sweep").Msg("error purging expired entries")
		return
	}
	if purged > 0 {
		s.logger.Debug().Int64("purged", purged).Msg("expired entries purged")
	}
}
