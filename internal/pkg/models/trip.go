package models

import (
	"database/sql"
	"fmt"
	"time"
)

// TripStatus represents the lifecycle status of a rider's trip request
type TripStatus string

const (
	TripStatusCreated   TripStatus = "created"
	TripStatusSearching TripStatus = "searching"
	TripStatusBooked    TripStatus = "booked"
	TripStatusExpired   TripStatus = "expired"
	TripStatusCancelled TripStatus = "cancelled"
)

// Open reports whether the trip can still be booked
func (s TripStatus) Open() bool {
	return s == TripStatusCreated || s == TripStatusSearching
}

// TripRequest is a rider's request to travel from an origin to a destination
type TripRequest struct {
	ID                 string     `json:"id"`
	RiderID            string     `json:"rider_id"`
	Origin             Location   `json:"origin"`
	Destination        Location   `json:"destination"`
	DepartureTime      time.Time  `json:"departure_time"`
	Seats              int        `json:"seats"`
	Status             TripStatus `json:"status"`
	ConfirmedPairingID string     `json:"confirmed_pairing_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Validate checks the fields an inbound trip must carry
func (t *TripRequest) Validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("%w: trip id is required", ErrInvalidInput)
	case t.RiderID == "":
		return fmt.Errorf("%w: rider id is required", ErrInvalidInput)
	case !t.Origin.Valid() || !t.Destination.Valid():
		return fmt.Errorf("%w: trip coordinates out of range", ErrInvalidInput)
	case t.DepartureTime.IsZero():
		return fmt.Errorf("%w: departure time is required", ErrInvalidInput)
	case t.Seats < 1:
		return fmt.Errorf("%w: seats must be at least 1", ErrInvalidInput)
	}
	return nil
}

// TripRequestDTO is used for database operations to flatten the nested locations
type TripRequestDTO struct {
	ID                 string         `db:"id"`
	RiderID            string         `db:"rider_id"`
	OriginLat          float64        `db:"origin_lat"`
	OriginLng          float64        `db:"origin_lng"`
	DestinationLat     float64        `db:"destination_lat"`
	DestinationLng     float64        `db:"destination_lng"`
	DepartureTime      time.Time      `db:"departure_time"`
	Seats              int            `db:"seats"`
	Status             TripStatus     `db:"status"`
	ConfirmedPairingID sql.NullString `db:"confirmed_pairing_id"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// ToDTO converts a TripRequest to a TripRequestDTO
func (t *TripRequest) ToDTO() *TripRequestDTO {
	return &TripRequestDTO{
		ID:                 t.ID,
		RiderID:            t.RiderID,
		OriginLat:          t.Origin.Latitude,
		OriginLng:          t.Origin.Longitude,
		DestinationLat:     t.Destination.Latitude,
		DestinationLng:     t.Destination.Longitude,
		DepartureTime:      t.DepartureTime,
		Seats:              t.Seats,
		Status:             t.Status,
		ConfirmedPairingID: sql.NullString{String: t.ConfirmedPairingID, Valid: t.ConfirmedPairingID != ""},
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// ToTripRequest converts a TripRequestDTO back to a TripRequest
func (dto *TripRequestDTO) ToTripRequest() *TripRequest {
	return &TripRequest{
		ID:                 dto.ID,
		RiderID:            dto.RiderID,
		Origin:             Location{Latitude: dto.OriginLat, Longitude: dto.OriginLng},
		Destination:        Location{Latitude: dto.DestinationLat, Longitude: dto.DestinationLng},
		DepartureTime:      dto.DepartureTime,
		Seats:              dto.Seats,
		Status:             dto.Status,
		ConfirmedPairingID: dto.ConfirmedPairingID.String,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	}
}
