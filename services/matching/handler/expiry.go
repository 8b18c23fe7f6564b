package handler

import (
	"context"
	"time"

	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/services/matching"
)

// ExpiryWorker periodically expires stalled pairings and trips whose window has passed
type ExpiryWorker struct {
	matchingUC matching.MatchingUC
	interval   time.Duration
}

// NewExpiryWorker creates a sweep that runs every interval
func NewExpiryWorker(matchingUC matching.MatchingUC, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpiryWorker{matchingUC: matchingUC, interval: interval}
}

// Run sweeps on every tick until ctx is cancelled
func (w *ExpiryWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Expiry sweep started", logger.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiry sweep stopped")
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			w.sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	// the usecase logs the summary
	if _, err := w.matchingUC.ExpireStale(ctx); err != nil {
		logger.WarnCtx(ctx, "Expiry sweep failed", logger.Err(err))
	}
}
