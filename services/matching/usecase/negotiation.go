package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/metrics"
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/piresc/barengan/services/matching/pairing"
)

// GiveStartingPrice records the driver's price and opens the rider's side of the negotiation
func (uc *MatchingUC) GiveStartingPrice(ctx context.Context, driverID, pairingID string, price float64) (d *models.DriverPairing, err error) {
	defer func() { metrics.ObserveTransition("give_starting_price", err) }()

	d, err = uc.ownedDriverPairing(ctx, driverID, pairingID)
	if err != nil {
		return nil, err
	}

	r, err := pairing.GiveStartingPrice(d, price, models.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveStartingPrice(ctx, d, r); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver gave starting price",
		logger.String("driver_pairing_id", d.ID),
		logger.String("rider_pairing_id", r.ID),
		logger.Float64("price", price))
	return d, nil
}

// DriverDecline ends the negotiation from the driver side, before or after pricing
func (uc *MatchingUC) DriverDecline(ctx context.Context, driverID, pairingID string) (d *models.DriverPairing, err error) {
	defer func() { metrics.ObserveTransition("driver_decline", err) }()

	d, err = uc.ownedDriverPairing(ctx, driverID, pairingID)
	if err != nil {
		return nil, err
	}

	var r *models.RiderPairing
	var riderFrom models.RiderPairingStatus
	if d.MirrorID != "" {
		if r, err = uc.repo.GetRiderPairing(ctx, d.MirrorID); err != nil {
			return nil, err
		}
		riderFrom = r.Status
	}

	driverFrom := d.Status
	if err := pairing.DriverDecline(d, r, models.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdatePairings(ctx, d, driverFrom, r, riderFrom); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver declined pairing", logger.String("driver_pairing_id", d.ID))
	return d, nil
}

// RiderDecline ends the negotiation from the rider side
func (uc *MatchingUC) RiderDecline(ctx context.Context, riderID, pairingID string) (r *models.RiderPairing, err error) {
	defer func() { metrics.ObserveTransition("rider_decline", err) }()

	r, d, err := uc.ownedRiderPairing(ctx, riderID, pairingID)
	if err != nil {
		return nil, err
	}

	driverFrom, riderFrom := d.Status, r.Status
	if err := pairing.RiderDecline(r, d, models.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdatePairings(ctx, d, driverFrom, r, riderFrom); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Rider declined pairing", logger.String("rider_pairing_id", r.ID))
	return r, nil
}

// RiderNegotiate sends the rider's single counter offer to the driver
func (uc *MatchingUC) RiderNegotiate(ctx context.Context, riderID, pairingID string, counterPrice float64) (r *models.RiderPairing, err error) {
	defer func() { metrics.ObserveTransition("rider_negotiate", err) }()

	r, d, err := uc.ownedRiderPairing(ctx, riderID, pairingID)
	if err != nil {
		return nil, err
	}

	driverFrom, riderFrom := d.Status, r.Status
	if err := pairing.RiderNegotiate(r, d, counterPrice, models.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdatePairings(ctx, d, driverFrom, r, riderFrom); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Rider negotiated price",
		logger.String("rider_pairing_id", r.ID),
		logger.Float64("counter_price", counterPrice))
	return r, nil
}

// ownedDriverPairing loads a driver pairing, hiding pairings of other drivers
func (uc *MatchingUC) ownedDriverPairing(ctx context.Context, driverID, pairingID string) (*models.DriverPairing, error) {
	d, err := uc.repo.GetDriverPairing(ctx, pairingID)
	if err != nil {
		return nil, err
	}
	if d.DriverID != driverID {
		return nil, fmt.Errorf("driver pairing %s: %w", pairingID, models.ErrNotFound)
	}
	return d, nil
}

// ownedRiderPairing loads a rider pairing and its driver mirror, hiding pairings of other riders
func (uc *MatchingUC) ownedRiderPairing(ctx context.Context, riderID, pairingID string) (*models.RiderPairing, *models.DriverPairing, error) {
	r, err := uc.repo.GetRiderPairing(ctx, pairingID)
	if err != nil {
		return nil, nil, err
	}
	if r.RiderID != riderID {
		return nil, nil, fmt.Errorf("rider pairing %s: %w", pairingID, models.ErrNotFound)
	}

	d, err := uc.repo.GetDriverPairing(ctx, r.MirrorID)
	if err != nil {
		return nil, nil, err
	}
	return r, d, nil
}
