package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/barengan/internal/pkg/models"
)

// pairingScope selects the pairings a bulk close applies to
type pairingScope struct {
	column string
	value  interface{}
}

// closePairings moves every non-terminal pairing in scope to the given terminal statuses
func closePairings(ctx context.Context, ext sqlx.ExecerContext, scope pairingScope, driverStatus models.DriverPairingStatus, riderStatus models.RiderPairingStatus, now time.Time) (models.ExpirySummary, error) {
	var summary models.ExpirySummary

	driverQuery := fmt.Sprintf(`
		UPDATE driver_pairings
		SET status = $1, can_accept = FALSE, can_decline = FALSE, should_give_price = FALSE, updated_at = $2
		WHERE %s AND status = ANY($4)
	`, scope.column)
	result, err := ext.ExecContext(ctx, driverQuery, driverStatus, now, scope.value, pq.Array(driverStatusStrings(models.ActiveDriverStatuses)))
	if err != nil {
		return summary, storeError("close driver pairings", err)
	}
	if summary.DriverPairings, err = rowsAffected(result); err != nil {
		return summary, err
	}

	riderQuery := fmt.Sprintf(`
		UPDATE rider_pairings
		SET status = $1, can_accept = FALSE, can_decline = FALSE, can_negotiate = FALSE, updated_at = $2
		WHERE %s AND status = ANY($4)
	`, scope.column)
	result, err = ext.ExecContext(ctx, riderQuery, riderStatus, now, scope.value, pq.Array(riderStatusStrings(models.ActiveRiderStatuses)))
	if err != nil {
		return summary, storeError("close rider pairings", err)
	}
	if summary.RiderPairings, err = rowsAffected(result); err != nil {
		return summary, err
	}

	return summary, nil
}

// CancelOfferedRide marks the offer cancelled and cancels its open pairings.
// Cancelling an already cancelled offer is a no-op.
func (r *MatchingRepo) CancelOfferedRide(ctx context.Context, offerID string) (int64, error) {
	var closed int64
	now := models.Now()

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE offered_rides SET status = $1, updated_at = $2, version = version + 1 WHERE id = $3 AND status <> $1`,
			models.OfferStatusCancelled, now, offerID,
		)
		if err != nil {
			return storeError("cancel offered ride", err)
		}
		rows, err := rowsAffected(result)
		if err != nil {
			return err
		}
		if rows == 0 {
			var exists bool
			if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM offered_rides WHERE id = $1)`, offerID); err != nil {
				return storeError("check offered ride", err)
			}
			if !exists {
				return fmt.Errorf("offered ride %s: %w", offerID, models.ErrNotFound)
			}
			return nil
		}

		summary, err := closePairings(ctx, tx, pairingScope{column: "offered_ride_id = $3", value: offerID},
			models.DriverPairingCancelled, models.RiderPairingCancelled, now)
		if err != nil {
			return err
		}
		closed = summary.DriverPairings + summary.RiderPairings
		return nil
	})
	if err != nil {
		return 0, err
	}
	return closed, nil
}

// CancelTripRequest marks an open trip cancelled and cancels its open pairings.
// A booked trip cannot be cancelled here; an already closed trip is a no-op.
func (r *MatchingRepo) CancelTripRequest(ctx context.Context, tripID string) (int64, error) {
	var closed int64
	now := models.Now()

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE trip_requests SET status = $1, updated_at = $2 WHERE id = $3 AND status IN ($4, $5)`,
			models.TripStatusCancelled, now, tripID, models.TripStatusCreated, models.TripStatusSearching,
		)
		if err != nil {
			return storeError("cancel trip request", err)
		}
		rows, err := rowsAffected(result)
		if err != nil {
			return err
		}
		if rows == 0 {
			var status models.TripStatus
			if err := tx.GetContext(ctx, &status, `SELECT status FROM trip_requests WHERE id = $1`, tripID); err != nil {
				return storeError(fmt.Sprintf("get trip request %s", tripID), err)
			}
			if status == models.TripStatusBooked {
				return fmt.Errorf("%w: trip %s is already booked", models.ErrInvalidTransition, tripID)
			}
			return nil
		}

		summary, err := closePairings(ctx, tx, pairingScope{column: "trip_request_id = $3", value: tripID},
			models.DriverPairingCancelled, models.RiderPairingCancelled, now)
		if err != nil {
			return err
		}
		closed = summary.DriverPairings + summary.RiderPairings
		return nil
	})
	if err != nil {
		return 0, err
	}
	return closed, nil
}

// ExpireStalePairings expires non-terminal pairings with no activity since idleSince.
// Both sides close in one transaction so no mirror is left half expired.
func (r *MatchingRepo) ExpireStalePairings(ctx context.Context, idleSince time.Time) (models.ExpirySummary, error) {
	var summary models.ExpirySummary
	now := models.Now()

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		summary, err = closePairings(ctx, tx, pairingScope{column: "updated_at < $3", value: idleSince},
			models.DriverPairingExpired, models.RiderPairingExpired, now)
		return err
	})
	if err != nil {
		return models.ExpirySummary{}, err
	}
	return summary, nil
}

// ExpireStaleTrips expires open trips that departed before departedBefore, with their pairings
func (r *MatchingRepo) ExpireStaleTrips(ctx context.Context, departedBefore time.Time) (models.ExpirySummary, error) {
	var summary models.ExpirySummary
	now := models.Now()

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var tripIDs []string
		err := tx.SelectContext(ctx, &tripIDs, `
			UPDATE trip_requests SET status = $1, updated_at = $2
			WHERE status IN ($3, $4) AND departure_time < $5
			RETURNING id
		`, models.TripStatusExpired, now, models.TripStatusCreated, models.TripStatusSearching, departedBefore)
		if err != nil {
			return storeError("expire trip requests", err)
		}
		if len(tripIDs) == 0 {
			return nil
		}

		summary, err = closePairings(ctx, tx, pairingScope{column: "trip_request_id = ANY($3)", value: pq.Array(tripIDs)},
			models.DriverPairingExpired, models.RiderPairingExpired, now)
		if err != nil {
			return err
		}
		summary.Trips = int64(len(tripIDs))
		return nil
	})
	if err != nil {
		return models.ExpirySummary{}, err
	}
	return summary, nil
}
