package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lib/pq"
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/piresc/barengan/internal/utils"
)

const offerColumns = `id, driver_id, origin_lat, origin_lng, destination_lat, destination_lng,
	stops, departure_time, total_seats, available_seats, status, version, created_at, updated_at`

const tripColumns = `id, rider_id, origin_lat, origin_lng, destination_lat, destination_lng,
	departure_time, seats, status, confirmed_pairing_id, created_at, updated_at`

// UpsertOfferedRide inserts the offer if it is new and returns the stored row.
// A redelivered offer never overwrites seats or status that have since moved.
func (r *MatchingRepo) UpsertOfferedRide(ctx context.Context, offer *models.OfferedRide) (*models.OfferedRide, error) {
	points := []models.Location{offer.Origin}
	for _, stop := range offer.Stops {
		points = append(points, stop.Location)
	}
	pickupCells := utils.RouteCells(r.cfg.Match.CellPrecision, points...)

	points = []models.Location{offer.Destination}
	for _, stop := range offer.Stops {
		points = append(points, stop.Location)
	}
	dropoffCells := utils.RouteCells(r.cfg.Match.CellPrecision, points...)

	dto := offer.ToDTO()
	query := `
		INSERT INTO offered_rides (
			id, driver_id, origin_lat, origin_lng, destination_lat, destination_lng,
			stops, departure_time, total_seats, available_seats, status, version,
			pickup_cells, dropoff_cells, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		dto.ID, dto.DriverID,
		dto.OriginLat, dto.OriginLng,
		dto.DestinationLat, dto.DestinationLng,
		dto.Stops, dto.DepartureTime,
		dto.TotalSeats, dto.AvailableSeats,
		dto.Status, dto.Version,
		pq.Array(pickupCells), pq.Array(dropoffCells),
		dto.CreatedAt, dto.UpdatedAt,
	)
	if err != nil {
		return nil, storeError("insert offered ride", err)
	}

	return r.GetOfferedRide(ctx, offer.ID)
}

// GetOfferedRide retrieves an offer by ID
func (r *MatchingRepo) GetOfferedRide(ctx context.Context, offerID string) (*models.OfferedRide, error) {
	var dto models.OfferedRideDTO
	query := `SELECT ` + offerColumns + ` FROM offered_rides WHERE id = $1`
	if err := r.db.GetContext(ctx, &dto, query, offerID); err != nil {
		return nil, storeError(fmt.Sprintf("get offered ride %s", offerID), err)
	}
	return dto.ToOfferedRide(), nil
}

// ListOfferedRides returns a driver's offers, newest first
func (r *MatchingRepo) ListOfferedRides(ctx context.Context, driverID string) ([]*models.OfferedRide, error) {
	var dtos []models.OfferedRideDTO
	query := `SELECT ` + offerColumns + ` FROM offered_rides WHERE driver_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &dtos, query, driverID); err != nil {
		return nil, storeError("list offered rides", err)
	}

	offers := make([]*models.OfferedRide, 0, len(dtos))
	for i := range dtos {
		offers = append(offers, dtos[i].ToOfferedRide())
	}
	return offers, nil
}

// FindCandidateOffers runs the geohash cell pre-filter, one keyset page at a
// time. Callers apply the exact distance and time predicate to the result.
func (r *MatchingRepo) FindCandidateOffers(ctx context.Context, filter models.CandidateFilter) ([]*models.OfferedRide, error) {
	args := []interface{}{
		models.OfferStatusCreated,
		filter.Seats,
		filter.RiderID,
		pq.Array(filter.PickupCells),
		pq.Array(filter.DropoffCells),
		filter.DepartsBy,
	}

	keyset := ""
	if filter.After != nil {
		keyset = "AND (created_at, id) < ($7, $8)"
		args = append(args, filter.After.CreatedAt, filter.After.ID)
	}
	args = append(args, filter.Limit)

	query := `
		SELECT ` + offerColumns + `
		FROM offered_rides
		WHERE status = $1
		  AND available_seats >= $2
		  AND driver_id <> $3
		  AND pickup_cells && $4
		  AND dropoff_cells && $5
		  AND departure_time <= $6
		  ` + keyset + `
		ORDER BY created_at DESC, id DESC
		LIMIT $` + strconv.Itoa(len(args))

	var dtos []models.OfferedRideDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, storeError("find candidate offers", err)
	}

	offers := make([]*models.OfferedRide, 0, len(dtos))
	for i := range dtos {
		offers = append(offers, dtos[i].ToOfferedRide())
	}
	return offers, nil
}

// UpsertTripRequest inserts the trip if it is new and returns the stored row
func (r *MatchingRepo) UpsertTripRequest(ctx context.Context, trip *models.TripRequest) (*models.TripRequest, error) {
	query := `
		INSERT INTO trip_requests (
			id, rider_id, origin_lat, origin_lng, destination_lat, destination_lng,
			departure_time, seats, status, confirmed_pairing_id, created_at, updated_at
		) VALUES (
			:id, :rider_id, :origin_lat, :origin_lng, :destination_lat, :destination_lng,
			:departure_time, :seats, :status, :confirmed_pairing_id, :created_at, :updated_at
		)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.NamedExecContext(ctx, query, trip.ToDTO()); err != nil {
		return nil, storeError("insert trip request", err)
	}

	return r.GetTripRequest(ctx, trip.ID)
}

// GetTripRequest retrieves a trip by ID
func (r *MatchingRepo) GetTripRequest(ctx context.Context, tripID string) (*models.TripRequest, error) {
	var dto models.TripRequestDTO
	query := `SELECT ` + tripColumns + ` FROM trip_requests WHERE id = $1`
	if err := r.db.GetContext(ctx, &dto, query, tripID); err != nil {
		return nil, storeError(fmt.Sprintf("get trip request %s", tripID), err)
	}
	return dto.ToTripRequest(), nil
}

// ListTripRequests returns a rider's trips, newest first
func (r *MatchingRepo) ListTripRequests(ctx context.Context, riderID string) ([]*models.TripRequest, error) {
	var dtos []models.TripRequestDTO
	query := `SELECT ` + tripColumns + ` FROM trip_requests WHERE rider_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &dtos, query, riderID); err != nil {
		return nil, storeError("list trip requests", err)
	}

	trips := make([]*models.TripRequest, 0, len(dtos))
	for i := range dtos {
		trips = append(trips, dtos[i].ToTripRequest())
	}
	return trips, nil
}
