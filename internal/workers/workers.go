package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/store"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the maintenance workers for storages. The expiry
// sweeper is only added when the backend needs explicit purging.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{logger: logger}

	if purger, ok := storages.KV.(store.Purger); ok {
		ws.workers = append(ws.workers, NewExpirySweeper(purger, cfg.SweepInterval, logger))
	}
	ws.workers = append(ws.workers, NewIndexBackfill(storages.SiteDirectory, cfg.IndexBackfillInterval, logger))

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
