package matching

import (
	"context"
	"time"

	"github.com/piresc/barengan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/barengan/services/matching MatchingRepo

// MatchingRepo defines persistence for trips, offers and both pairing views
type MatchingRepo interface {
	// Aggregates
	UpsertOfferedRide(ctx context.Context, offer *models.OfferedRide) (*models.OfferedRide, error)
	UpsertTripRequest(ctx context.Context, trip *models.TripRequest) (*models.TripRequest, error)
	GetOfferedRide(ctx context.Context, offerID string) (*models.OfferedRide, error)
	GetTripRequest(ctx context.Context, tripID string) (*models.TripRequest, error)
	ListOfferedRides(ctx context.Context, driverID string) ([]*models.OfferedRide, error)
	ListTripRequests(ctx context.Context, riderID string) ([]*models.TripRequest, error)

	// Candidate search and fan-out
	FindCandidateOffers(ctx context.Context, filter models.CandidateFilter) ([]*models.OfferedRide, error)
	CreatePairings(ctx context.Context, tripID string, pairings []*models.DriverPairing) (int64, error)

	// Pairings
	GetDriverPairing(ctx context.Context, pairingID string) (*models.DriverPairing, error)
	GetRiderPairing(ctx context.Context, pairingID string) (*models.RiderPairing, error)
	ListDriverPairings(ctx context.Context, driverID string) ([]*models.DriverPairing, error)
	ListRiderPairings(ctx context.Context, riderID string) ([]*models.RiderPairing, error)
	SaveStartingPrice(ctx context.Context, driverPairing *models.DriverPairing, riderPairing *models.RiderPairing) error
	UpdatePairings(ctx context.Context, driverPairing *models.DriverPairing, driverFrom models.DriverPairingStatus, riderPairing *models.RiderPairing, riderFrom models.RiderPairingStatus) error

	// Acceptance
	FinalizeAcceptance(ctx context.Context, driverPairing *models.DriverPairing, driverFrom models.DriverPairingStatus, riderPairing *models.RiderPairing, riderFrom models.RiderPairingStatus) error
	InvalidateSiblings(ctx context.Context, tripID, winnerPairingID string) (int64, error)

	// Cancellation and expiry
	CancelOfferedRide(ctx context.Context, offerID string) (int64, error)
	CancelTripRequest(ctx context.Context, tripID string) (int64, error)
	ExpireStalePairings(ctx context.Context, idleSince time.Time) (models.ExpirySummary, error)
	ExpireStaleTrips(ctx context.Context, departedBefore time.Time) (models.ExpirySummary, error)

	// Redis coordination
	AcquireFanoutLock(ctx context.Context, tripID string, ttl time.Duration) (bool, error)
	ReleaseFanoutLock(ctx context.Context, tripID string) error
	IncrRequeueAttempt(ctx context.Context, tripID string, ttl time.Duration) (int64, error)
}
