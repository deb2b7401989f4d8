package repository

import (
	"context"
	"log/slog"
	"time"
)

type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Sweeper periodically deletes expired links. Reads already ignore expired
// rows; sweeping only reclaims space.
type Sweeper struct {
	purger   Purger
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(purger Purger, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{purger: purger, interval: interval, logger: logger}
}

// Run sweeps every interval until ctx is done. Purge failures are logged and
// retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	purged, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("failed to purge expired links", slog.String("error", err.Error()))
		}
		return
	}
	if purged > 0 {
		s.logger.Debug("purged expired links", slog.Int64("count", purged))
	}
}
