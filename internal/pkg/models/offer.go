package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// OfferStatus represents the availability of a driver's offered ride
type OfferStatus string

const (
	OfferStatusCreated   OfferStatus = "created"
	OfferStatusFull      OfferStatus = "full"
	OfferStatusCancelled OfferStatus = "cancelled"
)

// OfferStatusForSeats derives the availability status from the remaining seat count
func OfferStatusForSeats(availableSeats int) OfferStatus {
	if availableSeats <= 0 {
		return OfferStatusFull
	}
	return OfferStatusCreated
}

// Stop is an intermediate point on a driver's route
type Stop struct {
	Location    Location  `json:"location"`
	ArrivalTime time.Time `json:"arrival_time"`
}

// Stops is an ordered stop list stored as JSONB
type Stops []Stop

// Value implements driver.Valuer. The JSON is returned as a string so the
// driver sends it as text rather than bytea.
func (s Stops) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (s *Stops) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*s = Stops{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("stops: unsupported scan type")
	}
	return json.Unmarshal(data, s)
}

// OfferedRide is a driver's published route with seat capacity
type OfferedRide struct {
	ID             string      `json:"id"`
	DriverID       string      `json:"driver_id"`
	Origin         Location    `json:"origin"`
	Destination    Location    `json:"destination"`
	Stops          Stops       `json:"stops"`
	DepartureTime  time.Time   `json:"departure_time"`
	TotalSeats     int         `json:"total_seats"`
	AvailableSeats int         `json:"available_seats"`
	Status         OfferStatus `json:"status"`
	Version        int64       `json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Validate checks the fields an inbound offer must carry
func (o *OfferedRide) Validate() error {
	switch {
	case o.ID == "":
		return fmt.Errorf("%w: offer id is required", ErrInvalidInput)
	case o.DriverID == "":
		return fmt.Errorf("%w: driver id is required", ErrInvalidInput)
	case !o.Origin.Valid() || !o.Destination.Valid():
		return fmt.Errorf("%w: offer coordinates out of range", ErrInvalidInput)
	case o.DepartureTime.IsZero():
		return fmt.Errorf("%w: departure time is required", ErrInvalidInput)
	case o.TotalSeats < 1:
		return fmt.Errorf("%w: total seats must be at least 1", ErrInvalidInput)
	case o.AvailableSeats > o.TotalSeats:
		return fmt.Errorf("%w: available seats exceed total seats", ErrInvalidInput)
	}
	for i, stop := range o.Stops {
		if !stop.Location.Valid() {
			return fmt.Errorf("%w: stop %d coordinates out of range", ErrInvalidInput, i)
		}
	}
	return nil
}

// OfferedRideDTO is used for database operations to flatten the nested locations
type OfferedRideDTO struct {
	ID             string      `db:"id"`
	DriverID       string      `db:"driver_id"`
	OriginLat      float64     `db:"origin_lat"`
	OriginLng      float64     `db:"origin_lng"`
	DestinationLat float64     `db:"destination_lat"`
	DestinationLng float64     `db:"destination_lng"`
	Stops          Stops       `db:"stops"`
	DepartureTime  time.Time   `db:"departure_time"`
	TotalSeats     int         `db:"total_seats"`
	AvailableSeats int         `db:"available_seats"`
	Status         OfferStatus `db:"status"`
	Version        int64       `db:"version"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

// ToDTO converts an OfferedRide to an OfferedRideDTO
func (o *OfferedRide) ToDTO() *OfferedRideDTO {
	return &OfferedRideDTO{
		ID:             o.ID,
		DriverID:       o.DriverID,
		OriginLat:      o.Origin.Latitude,
		OriginLng:      o.Origin.Longitude,
		DestinationLat: o.Destination.Latitude,
		DestinationLng: o.Destination.Longitude,
		Stops:          o.Stops,
		DepartureTime:  o.DepartureTime,
		TotalSeats:     o.TotalSeats,
		AvailableSeats: o.AvailableSeats,
		Status:         o.Status,
		Version:        o.Version,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToOfferedRide converts an OfferedRideDTO back to an OfferedRide
func (dto *OfferedRideDTO) ToOfferedRide() *OfferedRide {
	return &OfferedRide{
		ID:             dto.ID,
		DriverID:       dto.DriverID,
		Origin:         Location{Latitude: dto.OriginLat, Longitude: dto.OriginLng},
		Destination:    Location{Latitude: dto.DestinationLat, Longitude: dto.DestinationLng},
		Stops:          dto.Stops,
		DepartureTime:  dto.DepartureTime,
		TotalSeats:     dto.TotalSeats,
		AvailableSeats: dto.AvailableSeats,
		Status:         dto.Status,
		Version:        dto.Version,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}
}
