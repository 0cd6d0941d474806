package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/5-in-a-row/backend/internal/service/match"
)

const DefaultInterval = 10 * time.Minute

type Worker struct {
	Matches  *match.Manager
	Interval time.Duration
	IdleFor  time.Duration
}

// NewWorker falls back to DefaultInterval when interval is not positive.
func NewWorker(mm *match.Manager, interval, idle time.Duration) *Worker {
	if interval <= 0 {
		log.Warn().Str("component", "cleanup").Dur("interval", interval).Dur("default", DefaultInterval).Msg("invalid cleanup interval")
		interval = DefaultInterval
	}
	return &Worker{Matches: mm, Interval: interval, IdleFor: idle}
}

// Start runs one cleanup immediately and then every Interval until ctx is
// cancelled.
func (w *Worker) Start(ctx context.Context) {
	go w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Str("component", "cleanup").Msg("worker stopped")
				return
			case <-ticker.C:
				w.runCleanup()
			}
		}
	}()
	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("worker started")
}

func (w *Worker) runCleanup() int {
	removed := w.Matches.CleanupOldMatches(w.IdleFor)
	log.Debug().Str("component", "cleanup").Int("removed", removed).Int("active", w.Matches.Count()).Msg("cleanup pass")
	return removed
}
