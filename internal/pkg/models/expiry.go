package models

// ExpirySummary reports the rows touched by one expiry sweep
type ExpirySummary struct {
	DriverPairings int64 `json:"driver_pairings"`
	RiderPairings  int64 `json:"rider_pairings"`
	Trips          int64 `json:"trips"`
}

// Add accumulates other into s
func (s *ExpirySummary) Add(other ExpirySummary) {
	s.DriverPairings += other.DriverPairings
	s.RiderPairings += other.RiderPairings
	s.Trips += other.Trips
}

// Total is the number of rows expired across all kinds
func (s ExpirySummary) Total() int64 {
	return s.DriverPairings + s.RiderPairings + s.Trips
}
