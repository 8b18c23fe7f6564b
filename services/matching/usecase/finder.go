package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/metrics"
	"github.com/piresc/barengan/internal/pkg/models"
	nrpkg "github.com/piresc/barengan/internal/pkg/newrelic"
	"github.com/piresc/barengan/internal/utils"
)

// defaultScanLimit is the pre-filter page size when none is configured
const defaultScanLimit = 200

// FindCandidates returns the offers a trip can be paired with, newest first,
// capped at MaxCandidates. An empty result is not an error.
func (uc *MatchingUC) FindCandidates(ctx context.Context, trip *models.TripRequest) ([]*models.OfferedRide, error) {
	start := time.Now()
	defer func() {
		metrics.FinderDuration.Observe(time.Since(start).Seconds())
	}()

	precision := uc.cfg.Match.CellPrecision
	filter := models.CandidateFilter{
		PickupCells:  utils.CoverCells(trip.Origin, precision),
		DropoffCells: utils.CoverCells(trip.Destination, precision),
		Seats:        trip.Seats,
		RiderID:      trip.RiderID,
		DepartsBy:    trip.DepartureTime.Add(uc.cfg.Match.TimeWindow),
		Limit:        uc.cfg.Match.ScanLimit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultScanLimit
	}

	candidates := make([]*models.OfferedRide, 0, uc.cfg.Match.MaxCandidates)
	scanned := 0
	for len(candidates) < uc.cfg.Match.MaxCandidates {
		var page []*models.OfferedRide
		err := nrpkg.WithSegment(ctx, "Repository.FindCandidateOffers", func() error {
			var err error
			page, err = uc.repo.FindCandidateOffers(ctx, filter)
			return err
		})
		if err != nil {
			return nil, err
		}
		scanned += len(page)

		sort.SliceStable(page, func(i, j int) bool {
			return page[i].CreatedAt.After(page[j].CreatedAt)
		})
		for _, offer := range page {
			if !MatchesTrip(offer, trip, uc.cfg.Match.SearchRadiusKm, uc.cfg.Match.TimeWindow) {
				continue
			}
			candidates = append(candidates, offer)
			if len(candidates) >= uc.cfg.Match.MaxCandidates {
				break
			}
		}

		if len(page) < filter.Limit {
			break
		}
		filter.After = pageCursor(page)
	}

	metrics.CandidatesFound.Observe(float64(len(candidates)))
	logger.DebugCtx(ctx, "Candidate search finished",
		logger.String("trip_id", trip.ID),
		logger.Int("prefiltered", scanned),
		logger.Int("candidates", len(candidates)))

	return candidates, nil
}

// pageCursor returns the lowest (created_at, id) of a non-empty page
func pageCursor(page []*models.OfferedRide) *models.CandidateCursor {
	low := page[0]
	for _, offer := range page[1:] {
		if offer.CreatedAt.Before(low.CreatedAt) || (offer.CreatedAt.Equal(low.CreatedAt) && offer.ID < low.ID) {
			low = offer
		}
	}
	return &models.CandidateCursor{CreatedAt: low.CreatedAt, ID: low.ID}
}

// MatchesTrip is the exact candidate predicate: an open offer with enough
// seats, owned by someone else, that passes near both ends of the trip.
func MatchesTrip(offer *models.OfferedRide, trip *models.TripRequest, radiusKm float64, window time.Duration) bool {
	if offer.Status != models.OfferStatusCreated {
		return false
	}
	if offer.AvailableSeats < trip.Seats || offer.DriverID == trip.RiderID {
		return false
	}
	return pickupMatches(offer, trip, radiusKm, window) && dropoffMatches(offer, trip, radiusKm)
}

func pickupMatches(offer *models.OfferedRide, trip *models.TripRequest, radiusKm float64, window time.Duration) bool {
	if utils.WithinRadius(offer.Origin, trip.Origin, radiusKm) &&
		models.WithinWindow(offer.DepartureTime, trip.DepartureTime, window) {
		return true
	}
	for _, stop := range offer.Stops {
		if utils.WithinRadius(stop.Location, trip.Origin, radiusKm) &&
			models.WithinWindow(stop.ArrivalTime, trip.DepartureTime, window) {
			return true
		}
	}
	return false
}

// dropoffMatches ignores stop arrival times
func dropoffMatches(offer *models.OfferedRide, trip *models.TripRequest, radiusKm float64) bool {
	if utils.WithinRadius(offer.Destination, trip.Destination, radiusKm) {
		return true
	}
	for _, stop := range offer.Stops {
		if utils.WithinRadius(stop.Location, trip.Destination, radiusKm) {
			return true
		}
	}
	return false
}
