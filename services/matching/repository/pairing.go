package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/barengan/internal/pkg/models"
)

const driverPairingColumns = `id, offered_ride_id, trip_request_id, driver_id, rider_id, mirror_id, status,
	driver_starting_price, rider_counter_price, accepted_price,
	can_accept, can_decline, should_give_price, created_at, updated_at`

const riderPairingColumns = `id, trip_request_id, offered_ride_id, rider_id, driver_id, mirror_id, status,
	price_offered, counter_price, accepted_price,
	can_accept, can_decline, can_negotiate, created_at, updated_at`

// CreatePairings fans a trip out to its candidates and moves the trip to searching.
// Pairings that already exist for an (offer, trip) pair are skipped.
func (r *MatchingRepo) CreatePairings(ctx context.Context, tripID string, pairings []*models.DriverPairing) (int64, error) {
	var created int64

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		insertQuery := `
			INSERT INTO driver_pairings (
				id, offered_ride_id, trip_request_id, driver_id, rider_id, status,
				can_accept, can_decline, should_give_price, created_at, updated_at
			) VALUES (
				:id, :offered_ride_id, :trip_request_id, :driver_id, :rider_id, :status,
				:can_accept, :can_decline, :should_give_price, :created_at, :updated_at
			)
			ON CONFLICT (offered_ride_id, trip_request_id) DO NOTHING
		`
		for _, p := range pairings {
			result, err := tx.NamedExecContext(ctx, insertQuery, p.ToDTO())
			if err != nil {
				return storeError("insert driver pairing", err)
			}
			rows, err := rowsAffected(result)
			if err != nil {
				return err
			}
			created += rows
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE trip_requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
			models.TripStatusSearching, models.Now(), tripID, models.TripStatusCreated,
		)
		if err != nil {
			return storeError("mark trip searching", err)
		}
		return requireRows(result, "mark trip searching")
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

// GetDriverPairing retrieves a driver-side pairing by ID
func (r *MatchingRepo) GetDriverPairing(ctx context.Context, pairingID string) (*models.DriverPairing, error) {
	var dto models.DriverPairingDTO
	query := `SELECT ` + driverPairingColumns + ` FROM driver_pairings WHERE id = $1`
	if err := r.db.GetContext(ctx, &dto, query, pairingID); err != nil {
		return nil, storeError(fmt.Sprintf("get driver pairing %s", pairingID), err)
	}
	return dto.ToDriverPairing(), nil
}

// GetRiderPairing retrieves a rider-side pairing by ID
func (r *MatchingRepo) GetRiderPairing(ctx context.Context, pairingID string) (*models.RiderPairing, error) {
	var dto models.RiderPairingDTO
	query := `SELECT ` + riderPairingColumns + ` FROM rider_pairings WHERE id = $1`
	if err := r.db.GetContext(ctx, &dto, query, pairingID); err != nil {
		return nil, storeError(fmt.Sprintf("get rider pairing %s", pairingID), err)
	}
	return dto.ToRiderPairing(), nil
}

// ListDriverPairings returns the driver's pairings, newest first
func (r *MatchingRepo) ListDriverPairings(ctx context.Context, driverID string) ([]*models.DriverPairing, error) {
	var dtos []models.DriverPairingDTO
	query := `SELECT ` + driverPairingColumns + ` FROM driver_pairings WHERE driver_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &dtos, query, driverID); err != nil {
		return nil, storeError("list driver pairings", err)
	}

	pairings := make([]*models.DriverPairing, 0, len(dtos))
	for i := range dtos {
		pairings = append(pairings, dtos[i].ToDriverPairing())
	}
	return pairings, nil
}

// ListRiderPairings returns the rider's pairings, newest first
func (r *MatchingRepo) ListRiderPairings(ctx context.Context, riderID string) ([]*models.RiderPairing, error) {
	var dtos []models.RiderPairingDTO
	query := `SELECT ` + riderPairingColumns + ` FROM rider_pairings WHERE rider_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &dtos, query, riderID); err != nil {
		return nil, storeError("list rider pairings", err)
	}

	pairings := make([]*models.RiderPairing, 0, len(dtos))
	for i := range dtos {
		pairings = append(pairings, dtos[i].ToRiderPairing())
	}
	return pairings, nil
}

// SaveStartingPrice records the driver's price and inserts the rider mirror atomically
func (r *MatchingRepo) SaveStartingPrice(ctx context.Context, driverPairing *models.DriverPairing, riderPairing *models.RiderPairing) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := updateDriverPairing(ctx, tx, driverPairing, models.DriverAwaitingDriverPrice); err != nil {
			return err
		}

		insertQuery := `
			INSERT INTO rider_pairings (
				id, trip_request_id, offered_ride_id, rider_id, driver_id, mirror_id, status,
				price_offered, counter_price, accepted_price,
				can_accept, can_decline, can_negotiate, created_at, updated_at
			) VALUES (
				:id, :trip_request_id, :offered_ride_id, :rider_id, :driver_id, :mirror_id, :status,
				:price_offered, :counter_price, :accepted_price,
				:can_accept, :can_decline, :can_negotiate, :created_at, :updated_at
			)
		`
		if _, err := tx.NamedExecContext(ctx, insertQuery, riderPairing.ToDTO()); err != nil {
			return storeError("insert rider pairing", err)
		}
		return nil
	})
}

// UpdatePairings persists both views of a transition. Each row is only written
// if it is still in its from status. riderPairing may be nil when the driver
// declines before pricing.
func (r *MatchingRepo) UpdatePairings(ctx context.Context, driverPairing *models.DriverPairing, driverFrom models.DriverPairingStatus, riderPairing *models.RiderPairing, riderFrom models.RiderPairingStatus) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		return updatePairings(ctx, tx, driverPairing, driverFrom, riderPairing, riderFrom)
	})
}

func updatePairings(ctx context.Context, tx *sqlx.Tx, d *models.DriverPairing, driverFrom models.DriverPairingStatus, rp *models.RiderPairing, riderFrom models.RiderPairingStatus) error {
	if err := updateDriverPairing(ctx, tx, d, driverFrom); err != nil {
		return err
	}
	if rp == nil {
		return nil
	}
	return updateRiderPairing(ctx, tx, rp, riderFrom)
}

func updateDriverPairing(ctx context.Context, tx *sqlx.Tx, p *models.DriverPairing, from models.DriverPairingStatus) error {
	dto := p.ToDTO()
	query := `
		UPDATE driver_pairings
		SET status = $1,
		    mirror_id = $2,
		    driver_starting_price = $3,
		    rider_counter_price = $4,
		    accepted_price = $5,
		    can_accept = $6,
		    can_decline = $7,
		    should_give_price = $8,
		    updated_at = $9
		WHERE id = $10 AND status = $11
	`
	result, err := tx.ExecContext(ctx, query,
		dto.Status, dto.MirrorID,
		dto.DriverStartingPrice, dto.RiderCounterPrice, dto.AcceptedPrice,
		dto.CanAccept, dto.CanDecline, dto.ShouldGivePrice,
		dto.UpdatedAt, dto.ID, from,
	)
	if err != nil {
		return storeError("update driver pairing", err)
	}
	return requireRows(result, fmt.Sprintf("driver pairing %s %s->%s", p.ID, from, p.Status))
}

func updateRiderPairing(ctx context.Context, tx *sqlx.Tx, p *models.RiderPairing, from models.RiderPairingStatus) error {
	dto := p.ToDTO()
	query := `
		UPDATE rider_pairings
		SET status = $1,
		    counter_price = $2,
		    accepted_price = $3,
		    can_accept = $4,
		    can_decline = $5,
		    can_negotiate = $6,
		    updated_at = $7
		WHERE id = $8 AND status = $9
	`
	result, err := tx.ExecContext(ctx, query,
		dto.Status,
		dto.CounterPrice, dto.AcceptedPrice,
		dto.CanAccept, dto.CanDecline, dto.CanNegotiate,
		dto.UpdatedAt, dto.ID, from,
	)
	if err != nil {
		return storeError("update rider pairing", err)
	}
	return requireRows(result, fmt.Sprintf("rider pairing %s %s->%s", p.ID, from, p.Status))
}
