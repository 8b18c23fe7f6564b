package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/barengan/internal/pkg/models"
)

// ListRequests returns the caller's pairings for one side, or both when requestType is empty
func (uc *MatchingUC) ListRequests(ctx context.Context, userID string, requestType models.RequestType) (*models.RideRequests, error) {
	result := &models.RideRequests{}
	var err error

	switch requestType {
	case models.RequestTypeDriver:
		result.DriverRequests, err = uc.repo.ListDriverPairings(ctx, userID)
	case models.RequestTypeRider:
		result.RiderRequests, err = uc.repo.ListRiderPairings(ctx, userID)
	case "":
		if result.DriverRequests, err = uc.repo.ListDriverPairings(ctx, userID); err != nil {
			return nil, err
		}
		result.RiderRequests, err = uc.repo.ListRiderPairings(ctx, userID)
	default:
		return nil, fmt.Errorf("%w: unknown request type %q", models.ErrInvalidInput, requestType)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListOfferedRides returns the driver's offers
func (uc *MatchingUC) ListOfferedRides(ctx context.Context, driverID string) ([]*models.OfferedRide, error) {
	return uc.repo.ListOfferedRides(ctx, driverID)
}

// ListTripRequests returns the rider's trips
func (uc *MatchingUC) ListTripRequests(ctx context.Context, riderID string) ([]*models.TripRequest, error) {
	return uc.repo.ListTripRequests(ctx, riderID)
}
