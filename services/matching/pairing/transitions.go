// Package pairing holds the two-sided negotiation state machine.
//
// A negotiation is stored as a DriverPairing and a RiderPairing linked by
// MirrorID. Every exported transition checks its precondition, mutates both
// records consistently and returns models.ErrInvalidTransition when the guard
// does not hold, leaving the records untouched.
package pairing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/barengan/internal/pkg/models"
)

// DriverTransitions is the driver-side status flow as code
var DriverTransitions = map[models.DriverPairingStatus][]models.DriverPairingStatus{
	models.DriverAwaitingDriverPrice: {
		models.DriverAwaitingRiderResp,
		models.DriverDeclinedByDriver,
	},
	models.DriverAwaitingRiderResp: {
		models.DriverAcceptedByRider,
		models.DriverDeclinedByRider,
		models.DriverNegotiatedByRider,
	},
	models.DriverNegotiatedByRider: {
		models.DriverAcceptedByDriver,
		models.DriverDeclinedByDriver,
	},
}

// RiderTransitions is the rider-side status flow as code
var RiderTransitions = map[models.RiderPairingStatus][]models.RiderPairingStatus{
	models.RiderAwaitingRiderResp: {
		models.RiderAcceptedByRider,
		models.RiderDeclinedByRider,
		models.RiderAwaitingDriverResp,
	},
	models.RiderAwaitingDriverResp: {
		models.RiderAcceptedByDriver,
		models.RiderDeclinedByDriver,
	},
}

// CanTransitionDriver reports whether from -> to is a legal driver-side move.
// Invalidation, expiry and cancellation are legal from every non-terminal status.
func CanTransitionDriver(from, to models.DriverPairingStatus) bool {
	if from.Terminal() {
		return false
	}
	switch to {
	case models.DriverOtherDriverAccepted, models.DriverPairingExpired, models.DriverPairingCancelled:
		return true
	}
	for _, next := range DriverTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionRider reports whether from -> to is a legal rider-side move
func CanTransitionRider(from, to models.RiderPairingStatus) bool {
	if from.Terminal() {
		return false
	}
	switch to {
	case models.RiderOtherRequestAccepted, models.RiderPairingExpired, models.RiderPairingCancelled:
		return true
	}
	for _, next := range RiderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NewDriverPairing builds the fan-out record for one candidate offer
func NewDriverPairing(trip *models.TripRequest, offer *models.OfferedRide, now time.Time) *models.DriverPairing {
	return &models.DriverPairing{
		ID:              uuid.NewString(),
		OfferedRideID:   offer.ID,
		TripRequestID:   trip.ID,
		DriverID:        offer.DriverID,
		RiderID:         trip.RiderID,
		Status:          models.DriverAwaitingDriverPrice,
		CanAccept:       false,
		CanDecline:      true,
		ShouldGivePrice: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// GiveStartingPrice records the driver's price and creates the rider-side mirror
func GiveStartingPrice(d *models.DriverPairing, price float64, now time.Time) (*models.RiderPairing, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: starting price must be positive", models.ErrInvalidInput)
	}
	if !d.ShouldGivePrice || !CanTransitionDriver(d.Status, models.DriverAwaitingRiderResp) {
		return nil, invalid("give starting price", d.ID, string(d.Status))
	}

	r := &models.RiderPairing{
		ID:            uuid.NewString(),
		TripRequestID: d.TripRequestID,
		OfferedRideID: d.OfferedRideID,
		RiderID:       d.RiderID,
		DriverID:      d.DriverID,
		MirrorID:      d.ID,
		Status:        models.RiderAwaitingRiderResp,
		PriceOffered:  price,
		CanAccept:     true,
		CanDecline:    true,
		CanNegotiate:  true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	d.DriverStartingPrice = models.Price(price)
	d.MirrorID = r.ID
	d.Status = models.DriverAwaitingRiderResp
	d.ShouldGivePrice = false
	d.CanDecline = false
	d.UpdatedAt = now

	return r, nil
}

// RiderAccept accepts the current price (the counter price if one was made)
func RiderAccept(r *models.RiderPairing, d *models.DriverPairing, now time.Time) error {
	if err := checkMirror(r, d); err != nil {
		return err
	}
	if !r.CanAccept || !CanTransitionRider(r.Status, models.RiderAcceptedByRider) {
		return invalid("rider accept", r.ID, string(r.Status))
	}

	accepted := r.PriceOffered
	if r.CounterPrice != nil {
		accepted = *r.CounterPrice
	}

	r.AcceptedPrice = models.Price(accepted)
	r.Status = models.RiderAcceptedByRider
	clearRiderFlags(r, now)

	d.AcceptedPrice = models.Price(accepted)
	d.Status = models.DriverAcceptedByRider
	clearDriverFlags(d, now)
	return nil
}

// RiderDecline ends the negotiation from the rider side
func RiderDecline(r *models.RiderPairing, d *models.DriverPairing, now time.Time) error {
	if err := checkMirror(r, d); err != nil {
		return err
	}
	if !r.CanDecline || !CanTransitionRider(r.Status, models.RiderDeclinedByRider) {
		return invalid("rider decline", r.ID, string(r.Status))
	}

	r.Status = models.RiderDeclinedByRider
	clearRiderFlags(r, now)

	d.Status = models.DriverDeclinedByRider
	clearDriverFlags(d, now)
	return nil
}

// RiderNegotiate makes the single counter offer allowed per pairing
func RiderNegotiate(r *models.RiderPairing, d *models.DriverPairing, counterPrice float64, now time.Time) error {
	if err := checkMirror(r, d); err != nil {
		return err
	}
	if counterPrice <= 0 {
		return fmt.Errorf("%w: counter price must be positive", models.ErrInvalidInput)
	}
	if !r.CanNegotiate || !CanTransitionRider(r.Status, models.RiderAwaitingDriverResp) {
		return invalid("rider negotiate", r.ID, string(r.Status))
	}

	r.CounterPrice = models.Price(counterPrice)
	r.Status = models.RiderAwaitingDriverResp
	clearRiderFlags(r, now)

	d.RiderCounterPrice = models.Price(counterPrice)
	d.Status = models.DriverNegotiatedByRider
	d.CanAccept = true
	d.CanDecline = true
	d.UpdatedAt = now
	return nil
}

// DriverAccept accepts the rider's counter price
func DriverAccept(d *models.DriverPairing, r *models.RiderPairing, now time.Time) error {
	if err := checkMirror(r, d); err != nil {
		return err
	}
	if d.Status != models.DriverNegotiatedByRider || !d.CanAccept || d.RiderCounterPrice == nil {
		return invalid("driver accept", d.ID, string(d.Status))
	}

	accepted := *d.RiderCounterPrice

	d.AcceptedPrice = models.Price(accepted)
	d.Status = models.DriverAcceptedByDriver
	clearDriverFlags(d, now)

	r.AcceptedPrice = models.Price(accepted)
	r.Status = models.RiderAcceptedByDriver
	clearRiderFlags(r, now)
	return nil
}

// DriverDecline ends the negotiation from the driver side. r is nil when the
// driver declines before giving a price.
func DriverDecline(d *models.DriverPairing, r *models.RiderPairing, now time.Time) error {
	if !d.CanDecline || !CanTransitionDriver(d.Status, models.DriverDeclinedByDriver) {
		return invalid("driver decline", d.ID, string(d.Status))
	}
	if r != nil {
		if err := checkMirror(r, d); err != nil {
			return err
		}
	} else if d.MirrorID != "" {
		return fmt.Errorf("driver decline %s: rider mirror %s not loaded", d.ID, d.MirrorID)
	}

	d.Status = models.DriverDeclinedByDriver
	clearDriverFlags(d, now)

	if r != nil {
		r.Status = models.RiderDeclinedByDriver
		clearRiderFlags(r, now)
	}
	return nil
}

func clearDriverFlags(d *models.DriverPairing, now time.Time) {
	d.CanAccept = false
	d.CanDecline = false
	d.ShouldGivePrice = false
	d.UpdatedAt = now
}

func clearRiderFlags(r *models.RiderPairing, now time.Time) {
	r.CanAccept = false
	r.CanDecline = false
	r.CanNegotiate = false
	r.UpdatedAt = now
}

func checkMirror(r *models.RiderPairing, d *models.DriverPairing) error {
	if r == nil || d == nil {
		return fmt.Errorf("%w: pairing mirror missing", models.ErrNotFound)
	}
	if r.MirrorID != d.ID || d.MirrorID != r.ID {
		return fmt.Errorf("rider pairing %s and driver pairing %s are not mirrors", r.ID, d.ID)
	}
	return nil
}

func invalid(op, id, status string) error {
	return fmt.Errorf("%w: %s not allowed for pairing %s in status %s", models.ErrInvalidTransition, op, id, status)
}
