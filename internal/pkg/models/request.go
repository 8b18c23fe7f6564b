package models

// RequestType selects which side of the caller's pairings to list
type RequestType string

const (
	RequestTypeDriver RequestType = "driver"
	RequestTypeRider  RequestType = "rider"
)

// GivePriceRequest is the body of the driver's starting price call
type GivePriceRequest struct {
	DriverStartingPrice float64 `json:"driver_starting_price"`
}

// NegotiateRequest is the body of the rider's counter offer call
type NegotiateRequest struct {
	RiderRequestingPrice float64 `json:"rider_requesting_price"`
}

// RideRequests groups the caller's pairings by side
type RideRequests struct {
	DriverRequests []*DriverPairing `json:"driver_requests,omitempty"`
	RiderRequests  []*RiderPairing  `json:"rider_requests,omitempty"`
}
