package usecase

import (
	"context"

	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/metrics"
	"github.com/piresc/barengan/internal/pkg/models"
)

// ExpireStale closes pairings idle for longer than PairingTTL and open trips
// whose departure is more than the time window in the past
func (uc *MatchingUC) ExpireStale(ctx context.Context) (models.ExpirySummary, error) {
	var summary models.ExpirySummary
	now := models.Now()

	pairings, err := uc.repo.ExpireStalePairings(ctx, now.Add(-uc.cfg.Expiry.PairingTTL))
	if err != nil {
		return summary, err
	}
	summary.Add(pairings)

	trips, err := uc.repo.ExpireStaleTrips(ctx, now.Add(-uc.cfg.Match.TimeWindow))
	if err != nil {
		return summary, err
	}
	summary.Add(trips)

	metrics.ExpiredTotal.WithLabelValues("driver_pairing").Add(float64(summary.DriverPairings))
	metrics.ExpiredTotal.WithLabelValues("rider_pairing").Add(float64(summary.RiderPairings))
	metrics.ExpiredTotal.WithLabelValues("trip").Add(float64(summary.Trips))

	if summary.Total() > 0 {
		logger.InfoCtx(ctx, "Expired stale records",
			logger.Int64("driver_pairings", summary.DriverPairings),
			logger.Int64("rider_pairings", summary.RiderPairings),
			logger.Int64("trips", summary.Trips))
	}
	return summary, nil
}
