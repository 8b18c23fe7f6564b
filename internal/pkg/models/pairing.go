package models

import (
	"database/sql"
	"time"
)

// DriverPairingStatus is the driver-side vocabulary of a pairing negotiation
type DriverPairingStatus string

const (
	DriverAwaitingDriverPrice DriverPairingStatus = "AWAITING_DRIVER_PRICE"
	DriverAwaitingRiderResp   DriverPairingStatus = "AWAITING_RIDER_RESPONSE"
	DriverAcceptedByRider     DriverPairingStatus = "ACCEPTED_BY_RIDER"
	DriverDeclinedByRider     DriverPairingStatus = "DECLINED_BY_RIDER"
	DriverNegotiatedByRider   DriverPairingStatus = "NEGOTIATED_BY_RIDER"
	DriverAcceptedByDriver    DriverPairingStatus = "ACCEPTED_BY_DRIVER"
	DriverDeclinedByDriver    DriverPairingStatus = "DECLINED_BY_DRIVER"
	DriverOtherDriverAccepted DriverPairingStatus = "OTHER_DRIVER_ACCEPTED"
	DriverPairingExpired      DriverPairingStatus = "EXPIRED"
	DriverPairingCancelled    DriverPairingStatus = "CANCELLED"
)

// ActiveDriverStatuses lists the driver-side statuses a pairing can still move out of
var ActiveDriverStatuses = []DriverPairingStatus{
	DriverAwaitingDriverPrice,
	DriverAwaitingRiderResp,
	DriverNegotiatedByRider,
}

// Terminal reports whether no further transition can leave this status
func (s DriverPairingStatus) Terminal() bool {
	for _, active := range ActiveDriverStatuses {
		if s == active {
			return false
		}
	}
	return true
}

// Accepted reports whether the status is one of the accepted terminals
func (s DriverPairingStatus) Accepted() bool {
	return s == DriverAcceptedByRider || s == DriverAcceptedByDriver
}

// RiderPairingStatus is the rider-side vocabulary of a pairing negotiation
type RiderPairingStatus string

const (
	RiderAwaitingRiderResp    RiderPairingStatus = "AWAITING_RIDER_RESPONSE"
	RiderAwaitingDriverResp   RiderPairingStatus = "AWAITING_DRIVER_RESPONSE"
	RiderAcceptedByRider      RiderPairingStatus = "ACCEPTED_BY_RIDER"
	RiderAcceptedByDriver     RiderPairingStatus = "ACCEPTED_BY_DRIVER"
	RiderDeclinedByRider      RiderPairingStatus = "DECLINED_BY_RIDER"
	RiderDeclinedByDriver     RiderPairingStatus = "DECLINED_BY_DRIVER"
	RiderOtherRequestAccepted RiderPairingStatus = "OTHER_REQUEST_ACCEPTED"
	RiderPairingExpired       RiderPairingStatus = "EXPIRED"
	RiderPairingCancelled     RiderPairingStatus = "CANCELLED"
)

// ActiveRiderStatuses lists the rider-side statuses a pairing can still move out of
var ActiveRiderStatuses = []RiderPairingStatus{
	RiderAwaitingRiderResp,
	RiderAwaitingDriverResp,
}

// Terminal reports whether no further transition can leave this status
func (s RiderPairingStatus) Terminal() bool {
	for _, active := range ActiveRiderStatuses {
		if s == active {
			return false
		}
	}
	return true
}

// Accepted reports whether the status is one of the accepted terminals
func (s RiderPairingStatus) Accepted() bool {
	return s == RiderAcceptedByRider || s == RiderAcceptedByDriver
}

// DriverPairing is the driver's view of one candidate match
type DriverPairing struct {
	ID                  string              `json:"id"`
	OfferedRideID       string              `json:"offered_ride_id"`
	TripRequestID       string              `json:"trip_request_id"`
	DriverID            string              `json:"driver_id"`
	RiderID             string              `json:"rider_id"`
	MirrorID            string              `json:"mirror_id,omitempty"`
	Status              DriverPairingStatus `json:"status"`
	DriverStartingPrice *float64            `json:"driver_starting_price,omitempty"`
	RiderCounterPrice   *float64            `json:"rider_counter_price,omitempty"`
	AcceptedPrice       *float64            `json:"accepted_price,omitempty"`
	CanAccept           bool                `json:"can_accept"`
	CanDecline          bool                `json:"can_decline"`
	ShouldGivePrice     bool                `json:"should_give_price"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// RiderPairing is the rider's view of the same candidate match
type RiderPairing struct {
	ID            string             `json:"id"`
	TripRequestID string             `json:"trip_request_id"`
	OfferedRideID string             `json:"offered_ride_id"`
	RiderID       string             `json:"rider_id"`
	DriverID      string             `json:"driver_id"`
	MirrorID      string             `json:"mirror_id"`
	Status        RiderPairingStatus `json:"status"`
	PriceOffered  float64            `json:"price_offered"`
	CounterPrice  *float64           `json:"counter_price,omitempty"`
	AcceptedPrice *float64           `json:"accepted_price,omitempty"`
	CanAccept     bool               `json:"can_accept"`
	CanDecline    bool               `json:"can_decline"`
	CanNegotiate  bool               `json:"can_negotiate"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// DriverPairingDTO is the database shape of a DriverPairing
type DriverPairingDTO struct {
	ID                  string              `db:"id"`
	OfferedRideID       string              `db:"offered_ride_id"`
	TripRequestID       string              `db:"trip_request_id"`
	DriverID            string              `db:"driver_id"`
	RiderID             string              `db:"rider_id"`
	MirrorID            sql.NullString      `db:"mirror_id"`
	Status              DriverPairingStatus `db:"status"`
	DriverStartingPrice sql.NullFloat64     `db:"driver_starting_price"`
	RiderCounterPrice   sql.NullFloat64     `db:"rider_counter_price"`
	AcceptedPrice       sql.NullFloat64     `db:"accepted_price"`
	CanAccept           bool                `db:"can_accept"`
	CanDecline          bool                `db:"can_decline"`
	ShouldGivePrice     bool                `db:"should_give_price"`
	CreatedAt           time.Time           `db:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at"`
}

// RiderPairingDTO is the database shape of a RiderPairing
type RiderPairingDTO struct {
	ID            string             `db:"id"`
	TripRequestID string             `db:"trip_request_id"`
	OfferedRideID string             `db:"offered_ride_id"`
	RiderID       string             `db:"rider_id"`
	DriverID      string             `db:"driver_id"`
	MirrorID      string             `db:"mirror_id"`
	Status        RiderPairingStatus `db:"status"`
	PriceOffered  float64            `db:"price_offered"`
	CounterPrice  sql.NullFloat64    `db:"counter_price"`
	AcceptedPrice sql.NullFloat64    `db:"accepted_price"`
	CanAccept     bool               `db:"can_accept"`
	CanDecline    bool               `db:"can_decline"`
	CanNegotiate  bool               `db:"can_negotiate"`
	CreatedAt     time.Time          `db:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at"`
}

// ToDTO converts a DriverPairing to its database shape
func (p *DriverPairing) ToDTO() *DriverPairingDTO {
	return &DriverPairingDTO{
		ID:                  p.ID,
		OfferedRideID:       p.OfferedRideID,
		TripRequestID:       p.TripRequestID,
		DriverID:            p.DriverID,
		RiderID:             p.RiderID,
		MirrorID:            sql.NullString{String: p.MirrorID, Valid: p.MirrorID != ""},
		Status:              p.Status,
		DriverStartingPrice: nullFloat(p.DriverStartingPrice),
		RiderCounterPrice:   nullFloat(p.RiderCounterPrice),
		AcceptedPrice:       nullFloat(p.AcceptedPrice),
		CanAccept:           p.CanAccept,
		CanDecline:          p.CanDecline,
		ShouldGivePrice:     p.ShouldGivePrice,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// ToDriverPairing converts the database shape back to a DriverPairing
func (dto *DriverPairingDTO) ToDriverPairing() *DriverPairing {
	return &DriverPairing{
		ID:                  dto.ID,
		OfferedRideID:       dto.OfferedRideID,
		TripRequestID:       dto.TripRequestID,
		DriverID:            dto.DriverID,
		RiderID:             dto.RiderID,
		MirrorID:            dto.MirrorID.String,
		Status:              dto.Status,
		DriverStartingPrice: floatPtr(dto.DriverStartingPrice),
		RiderCounterPrice:   floatPtr(dto.RiderCounterPrice),
		AcceptedPrice:       floatPtr(dto.AcceptedPrice),
		CanAccept:           dto.CanAccept,
		CanDecline:          dto.CanDecline,
		ShouldGivePrice:     dto.ShouldGivePrice,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
	}
}

// ToDTO converts a RiderPairing to its database shape
func (p *RiderPairing) ToDTO() *RiderPairingDTO {
	return &RiderPairingDTO{
		ID:            p.ID,
		TripRequestID: p.TripRequestID,
		OfferedRideID: p.OfferedRideID,
		RiderID:       p.RiderID,
		DriverID:      p.DriverID,
		MirrorID:      p.MirrorID,
		Status:        p.Status,
		PriceOffered:  p.PriceOffered,
		CounterPrice:  nullFloat(p.CounterPrice),
		AcceptedPrice: nullFloat(p.AcceptedPrice),
		CanAccept:     p.CanAccept,
		CanDecline:    p.CanDecline,
		CanNegotiate:  p.CanNegotiate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToRiderPairing converts the database shape back to a RiderPairing
func (dto *RiderPairingDTO) ToRiderPairing() *RiderPairing {
	return &RiderPairing{
		ID:            dto.ID,
		TripRequestID: dto.TripRequestID,
		OfferedRideID: dto.OfferedRideID,
		RiderID:       dto.RiderID,
		DriverID:      dto.DriverID,
		MirrorID:      dto.MirrorID,
		Status:        dto.Status,
		PriceOffered:  dto.PriceOffered,
		CounterPrice:  floatPtr(dto.CounterPrice),
		AcceptedPrice: floatPtr(dto.AcceptedPrice),
		CanAccept:     dto.CanAccept,
		CanDecline:    dto.CanDecline,
		CanNegotiate:  dto.CanNegotiate,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}
}

// Price returns a pointer to a copy of v
func Price(v float64) *float64 {
	return &v
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return Price(v.Float64)
}
