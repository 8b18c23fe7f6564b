package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType names an inbound queue event
type EventType string

const (
	EventNewRiderRideCreated  EventType = "newRiderRideCreated"
	EventNewDriverRideCreated EventType = "newDriverRideCreated"
	EventRiderRideCancelled   EventType = "riderRideCancelled"
	EventDriverRideCancelled  EventType = "driverRideCancelled"
)

// CancelledRide identifies the aggregate referenced by a cancellation event
type CancelledRide struct {
	ID string `json:"id"`
}

// EventEnvelope is the wire shape of every inbound event
type EventEnvelope struct {
	EventType           EventType      `json:"EVENT_TYPE"`
	RiderRide           *TripRequest   `json:"riderRide,omitempty"`
	DriverRide          *OfferedRide   `json:"driverRide,omitempty"`
	CancelledRiderRide  *CancelledRide `json:"cancelledRiderRide,omitempty"`
	CancelledDriverRide *CancelledRide `json:"cancelledDriverRide,omitempty"`
	RetryAttempt        int            `json:"RETRY_ATTEMPT,omitempty"`
	NotBefore           *time.Time     `json:"NOT_BEFORE,omitempty"`
}

// snsWrapper is the notification shape produced by topic fan-out
type snsWrapper struct {
	Message string `json:"Message"`
}

// DecodeEnvelope parses a raw queue payload, unwrapping a topic notification if present
func DecodeEnvelope(data []byte) (*EventEnvelope, error) {
	var wrapper snsWrapper
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: malformed event: %v", ErrInvalidInput, err)
	}
	if wrapper.Message != "" {
		data = []byte(wrapper.Message)
	}

	var envelope EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed event: %v", ErrInvalidInput, err)
	}
	if envelope.EventType == "" {
		return nil, fmt.Errorf("%w: event has no EVENT_TYPE", ErrInvalidInput)
	}
	return &envelope, nil
}

// NewRequeueEnvelope builds the retry-later event for a trip that found no candidates
func NewRequeueEnvelope(trip *TripRequest, attempt int, notBefore time.Time) *EventEnvelope {
	return &EventEnvelope{
		EventType:    EventNewRiderRideCreated,
		RiderRide:    trip,
		RetryAttempt: attempt,
		NotBefore:    &notBefore,
	}
}
