package matching

import (
	"context"

	"github.com/piresc/barengan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/barengan/services/matching MatchingUC

// MatchingUC defines the matching and negotiation business logic
type MatchingUC interface {
	// Intake
	HandleOfferedRide(ctx context.Context, offer *models.OfferedRide) error
	HandleTripRequest(ctx context.Context, trip *models.TripRequest, attempt int) error
	HandleOfferCancelled(ctx context.Context, offerID string) error
	HandleTripCancelled(ctx context.Context, tripID string) error
	FindCandidates(ctx context.Context, trip *models.TripRequest) ([]*models.OfferedRide, error)

	// Driver side
	GiveStartingPrice(ctx context.Context, driverID, pairingID string, price float64) (*models.DriverPairing, error)
	DriverAccept(ctx context.Context, driverID, pairingID string) (*models.DriverPairing, error)
	DriverDecline(ctx context.Context, driverID, pairingID string) (*models.DriverPairing, error)

	// Rider side
	RiderAccept(ctx context.Context, riderID, pairingID string) (*models.RiderPairing, error)
	RiderDecline(ctx context.Context, riderID, pairingID string) (*models.RiderPairing, error)
	RiderNegotiate(ctx context.Context, riderID, pairingID string, counterPrice float64) (*models.RiderPairing, error)

	// Queries
	ListRequests(ctx context.Context, userID string, requestType models.RequestType) (*models.RideRequests, error)
	ListOfferedRides(ctx context.Context, driverID string) ([]*models.OfferedRide, error)
	ListTripRequests(ctx context.Context, riderID string) ([]*models.TripRequest, error)

	// Maintenance
	ExpireStale(ctx context.Context) (models.ExpirySummary, error)
}
