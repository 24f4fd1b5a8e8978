package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/store"
)

// IndexBackfill rebuilds missing site name and access token indexes. It
// runs once on start, then on every interval.
type IndexBackfill struct {
	directory store.SiteDirectory
	interval  time.Duration
	logger    *logger.Logger
}

func NewIndexBackfill(directory store.SiteDirectory, interval time.Duration, logger *logger.Logger) *IndexBackfill {
	return &IndexBackfill{
		directory: directory,
		interval:  interval,
		logger:    logger,
	}
}

func (b *IndexBackfill) Run(ctx context.Context) {
	b.backfill(ctx)
	runEvery(ctx, b.interval, b.backfill)
}

func (b *IndexBackfill) backfill(ctx context.Context) {
	written, err := b.directory.BackfillIndexes(ctx)
	if err != nil {
		b.logger.Err(err).Str("func", "*IndexBackfill.backfill").Msg("error backfilling site indexes")
		return
	}
	if written > 0 {
		b.logger.Info().Int("written", written).Msg("site indexes backfilled")
	}
}
