package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled jobs. A non-positive interval disables a job.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.ResetTokenSweepInterval > 0 {
		w.workers = append(w.workers, NewResetTokenSweeper(storages.UserRepository, cfg.ResetTokenSweepInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and waits until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

// Len reports the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
