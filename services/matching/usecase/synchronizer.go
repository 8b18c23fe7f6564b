package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/metrics"
	"github.com/piresc/barengan/internal/pkg/models"
	nrpkg "github.com/piresc/barengan/internal/pkg/newrelic"
	"github.com/piresc/barengan/services/matching/pairing"
)

// RiderAccept accepts the current price and books the trip.
// Repeating the rider's own acceptance re-runs sibling invalidation.
func (uc *MatchingUC) RiderAccept(ctx context.Context, riderID, pairingID string) (r *models.RiderPairing, err error) {
	defer func() { metrics.ObserveTransition("rider_accept", err) }()

	r, d, err := uc.ownedRiderPairing(ctx, riderID, pairingID)
	if err != nil {
		return nil, err
	}

	if r.Status == models.RiderAcceptedByRider {
		if err := uc.reconverge(ctx, d); err != nil {
			return nil, err
		}
		return r, nil
	}

	driverFrom, riderFrom := d.Status, r.Status
	if err := pairing.RiderAccept(r, d, models.Now()); err != nil {
		return nil, err
	}
	if err := uc.finalize(ctx, d, driverFrom, r, riderFrom); err != nil {
		return nil, err
	}
	return r, nil
}

// DriverAccept accepts the rider's counter price and books the trip.
// Repeating the driver's own acceptance re-runs sibling invalidation.
func (uc *MatchingUC) DriverAccept(ctx context.Context, driverID, pairingID string) (d *models.DriverPairing, err error) {
	defer func() { metrics.ObserveTransition("driver_accept", err) }()

	d, err = uc.ownedDriverPairing(ctx, driverID, pairingID)
	if err != nil {
		return nil, err
	}

	if d.Status == models.DriverAcceptedByDriver {
		if err := uc.reconverge(ctx, d); err != nil {
			return nil, err
		}
		return d, nil
	}

	if d.MirrorID == "" {
		return nil, fmt.Errorf("%w: driver pairing %s has no price yet", models.ErrInvalidTransition, d.ID)
	}
	r, err := uc.repo.GetRiderPairing(ctx, d.MirrorID)
	if err != nil {
		return nil, err
	}

	driverFrom, riderFrom := d.Status, r.Status
	if err := pairing.DriverAccept(d, r, models.Now()); err != nil {
		return nil, err
	}
	if err := uc.finalize(ctx, d, driverFrom, r, riderFrom); err != nil {
		return nil, err
	}
	return d, nil
}

// finalize commits the claim, both pairing views and the seat in one
// transaction, then closes every sibling pairing of the trip
func (uc *MatchingUC) finalize(ctx context.Context, d *models.DriverPairing, driverFrom models.DriverPairingStatus, r *models.RiderPairing, riderFrom models.RiderPairingStatus) error {
	err := nrpkg.WithSegment(ctx, "Repository.FinalizeAcceptance", func() error {
		return uc.repo.FinalizeAcceptance(ctx, d, driverFrom, r, riderFrom)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Trip request booked",
		logger.String("trip_id", d.TripRequestID),
		logger.String("offer_id", d.OfferedRideID),
		logger.String("driver_pairing_id", d.ID),
		logger.Float64("accepted_price", *d.AcceptedPrice))

	return uc.invalidateSiblings(ctx, d)
}

// reconverge re-runs the idempotent post-commit step for a pairing that already won its trip
func (uc *MatchingUC) reconverge(ctx context.Context, d *models.DriverPairing) error {
	trip, err := uc.repo.GetTripRequest(ctx, d.TripRequestID)
	if err != nil {
		return err
	}
	if trip.Status != models.TripStatusBooked || trip.ConfirmedPairingID != d.ID {
		return fmt.Errorf("%w: pairing %s does not hold trip %s", models.ErrInvalidTransition, d.ID, trip.ID)
	}
	return uc.invalidateSiblings(ctx, d)
}

func (uc *MatchingUC) invalidateSiblings(ctx context.Context, d *models.DriverPairing) error {
	invalidated, err := uc.repo.InvalidateSiblings(ctx, d.TripRequestID, d.ID)
	if err != nil {
		logger.ErrorCtx(ctx, "Trip booked but sibling invalidation failed",
			logger.String("trip_id", d.TripRequestID),
			logger.String("driver_pairing_id", d.ID),
			logger.Err(err))
		return models.Transient(fmt.Errorf("invalidate siblings of trip %s: %w", d.TripRequestID, err))
	}

	metrics.SiblingsInvalidatedTotal.Add(float64(invalidated))
	if invalidated > 0 {
		logger.InfoCtx(ctx, "Sibling pairings invalidated",
			logger.String("trip_id", d.TripRequestID),
			logger.Int64("count", invalidated))
	}
	return nil
}
