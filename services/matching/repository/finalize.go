package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/metrics"
	"github.com/piresc/barengan/internal/pkg/models"
)

// errClaimedByPairing signals that the trip is already booked by the pairing being finalized
var errClaimedByPairing = errors.New("trip already claimed by this pairing")

// FinalizeAcceptance books the trip for the accepted pairing in one transaction:
// it claims the trip, writes both pairing views and takes one seat from the offer.
// A trip already booked by this same pairing is a no-op.
func (r *MatchingRepo) FinalizeAcceptance(ctx context.Context, driverPairing *models.DriverPairing, driverFrom models.DriverPairingStatus, riderPairing *models.RiderPairing, riderFrom models.RiderPairingStatus) error {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		now := driverPairing.UpdatedAt

		if err := claimTrip(ctx, tx, driverPairing.TripRequestID, driverPairing.ID, now); err != nil {
			return err
		}

		if err := updatePairings(ctx, tx, driverPairing, driverFrom, riderPairing, riderFrom); err != nil {
			return err
		}

		return r.takeSeat(ctx, tx, driverPairing.OfferedRideID, now)
	})
	if errors.Is(err, errClaimedByPairing) {
		logger.Info("Trip already booked by this pairing",
			logger.String("trip_id", driverPairing.TripRequestID),
			logger.String("pairing_id", driverPairing.ID))
		return nil
	}
	return err
}

// claimTrip is the first-accept-wins gate on the trip row
func claimTrip(ctx context.Context, tx *sqlx.Tx, tripID, pairingID string, now time.Time) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE trip_requests
		SET status = $1, confirmed_pairing_id = $2, updated_at = $3
		WHERE id = $4 AND status IN ($5, $6)
	`, models.TripStatusBooked, pairingID, now, tripID, models.TripStatusCreated, models.TripStatusSearching)
	if err != nil {
		return storeError("claim trip", err)
	}

	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 1 {
		return nil
	}

	var current struct {
		Status             models.TripStatus `db:"status"`
		ConfirmedPairingID sql.NullString    `db:"confirmed_pairing_id"`
	}
	err = tx.GetContext(ctx, &current, `SELECT status, confirmed_pairing_id FROM trip_requests WHERE id = $1`, tripID)
	if err != nil {
		return storeError(fmt.Sprintf("get trip request %s", tripID), err)
	}

	switch {
	case current.Status == models.TripStatusBooked && current.ConfirmedPairingID.String == pairingID:
		return errClaimedByPairing
	case current.Status == models.TripStatusBooked:
		return fmt.Errorf("trip %s: %w", tripID, models.ErrAlreadyBooked)
	default:
		return fmt.Errorf("%w: trip %s is %s", models.ErrInvalidTransition, tripID, current.Status)
	}
}

// takeSeat decrements available_seats by one with a version compare-and-swap,
// re-reading and retrying on conflict
func (r *MatchingRepo) takeSeat(ctx context.Context, tx *sqlx.Tx, offerID string, now time.Time) error {
	attempts := r.cfg.Match.SeatCASAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		var offer struct {
			AvailableSeats int                `db:"available_seats"`
			Version        int64              `db:"version"`
			Status         models.OfferStatus `db:"status"`
		}
		err := tx.GetContext(ctx, &offer, `SELECT available_seats, version, status FROM offered_rides WHERE id = $1`, offerID)
		if err != nil {
			return storeError(fmt.Sprintf("get offered ride %s", offerID), err)
		}

		if offer.Status == models.OfferStatusCancelled {
			return fmt.Errorf("%w: offer %s is cancelled", models.ErrInvalidTransition, offerID)
		}
		if offer.AvailableSeats < 1 {
			return fmt.Errorf("offer %s: %w", offerID, models.ErrCapacityExhausted)
		}

		remaining := offer.AvailableSeats - 1
		result, err := tx.ExecContext(ctx, `
			UPDATE offered_rides
			SET available_seats = $1, status = $2, version = version + 1, updated_at = $3
			WHERE id = $4 AND version = $5
		`, remaining, models.OfferStatusForSeats(remaining), now, offerID, offer.Version)
		if err != nil {
			return storeError("decrement available seats", err)
		}

		rows, err := rowsAffected(result)
		if err != nil {
			return err
		}
		if rows == 1 {
			return nil
		}

		metrics.SeatCASConflictsTotal.Inc()
		logger.Debug("Seat version conflict, retrying",
			logger.String("offer_id", offerID),
			logger.Int("attempt", attempt+1))
	}

	return models.Transient(fmt.Errorf("seat update for offer %s conflicted %d times", offerID, attempts))
}

// InvalidateSiblings closes every other non-terminal pairing of the trip.
// It is idempotent and safe to re-run after a partial failure.
func (r *MatchingRepo) InvalidateSiblings(ctx context.Context, tripID, winnerPairingID string) (int64, error) {
	now := models.Now()

	driverResult, err := r.db.ExecContext(ctx, `
		UPDATE driver_pairings
		SET status = $1, can_accept = FALSE, can_decline = FALSE, should_give_price = FALSE, updated_at = $2
		WHERE trip_request_id = $3 AND id <> $4 AND status = ANY($5)
	`, models.DriverOtherDriverAccepted, now, tripID, winnerPairingID, pq.Array(driverStatusStrings(models.ActiveDriverStatuses)))
	if err != nil {
		return 0, storeError("invalidate sibling driver pairings", err)
	}
	driverRows, err := rowsAffected(driverResult)
	if err != nil {
		return 0, err
	}

	riderResult, err := r.db.ExecContext(ctx, `
		UPDATE rider_pairings
		SET status = $1, can_accept = FALSE, can_decline = FALSE, can_negotiate = FALSE, updated_at = $2
		WHERE trip_request_id = $3 AND mirror_id <> $4 AND status = ANY($5)
	`, models.RiderOtherRequestAccepted, now, tripID, winnerPairingID, pq.Array(riderStatusStrings(models.ActiveRiderStatuses)))
	if err != nil {
		return driverRows, storeError("invalidate sibling rider pairings", err)
	}
	riderRows, err := rowsAffected(riderResult)
	if err != nil {
		return driverRows, err
	}

	return driverRows + riderRows, nil
}
