package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/metrics"
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/piresc/barengan/internal/pkg/retry"
	"github.com/piresc/barengan/services/matching/pairing"
)

// requeueCounterTTL bounds how long the per-trip requeue counter lives in Redis
const requeueCounterTTL = 24 * time.Hour

// HandleOfferedRide stores a driver's offer. Redelivery of the same offer is a no-op.
func (uc *MatchingUC) HandleOfferedRide(ctx context.Context, offer *models.OfferedRide) error {
	if offer.AvailableSeats == 0 {
		offer.AvailableSeats = offer.TotalSeats
	}
	if err := offer.Validate(); err != nil {
		return err
	}

	now := models.Now()
	offer.Status = models.OfferStatusForSeats(offer.AvailableSeats)
	offer.Version = 0
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = now
	}
	offer.UpdatedAt = now

	stored, err := uc.repo.UpsertOfferedRide(ctx, offer)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Offered ride stored",
		logger.String("offer_id", stored.ID),
		logger.String("driver_id", stored.DriverID),
		logger.Int("available_seats", stored.AvailableSeats),
		logger.String("status", string(stored.Status)))
	return nil
}

// HandleTripRequest stores a rider's trip and, while it is still created,
// fans it out to its candidates or schedules another search
func (uc *MatchingUC) HandleTripRequest(ctx context.Context, trip *models.TripRequest, attempt int) error {
	if err := trip.Validate(); err != nil {
		return err
	}

	now := models.Now()
	trip.Status = models.TripStatusCreated
	trip.ConfirmedPairingID = ""
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = now
	}
	trip.UpdatedAt = now

	stored, err := uc.repo.UpsertTripRequest(ctx, trip)
	if err != nil {
		return err
	}
	if stored.Status != models.TripStatusCreated {
		logger.InfoCtx(ctx, "Trip request already past matching, skipping",
			logger.String("trip_id", stored.ID),
			logger.String("status", string(stored.Status)),
			logger.Int("attempt", attempt))
		return nil
	}

	locked, err := uc.repo.AcquireFanoutLock(ctx, stored.ID, uc.cfg.Match.FanoutLockTTL)
	if err != nil {
		return err
	}
	if !locked {
		return models.Transient(fmt.Errorf("fan-out of trip %s is running elsewhere", stored.ID))
	}
	defer func() {
		if err := uc.repo.ReleaseFanoutLock(ctx, stored.ID); err != nil {
			logger.WarnCtx(ctx, "Failed to release fan-out lock",
				logger.String("trip_id", stored.ID),
				logger.Err(err))
		}
	}()

	candidates, err := uc.FindCandidates(ctx, stored)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return uc.requeue(ctx, stored, attempt)
	}

	pairings := make([]*models.DriverPairing, 0, len(candidates))
	for _, offer := range candidates {
		pairings = append(pairings, pairing.NewDriverPairing(stored, offer, now))
	}

	created, err := uc.repo.CreatePairings(ctx, stored.ID, pairings)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Trip request fanned out",
		logger.String("trip_id", stored.ID),
		logger.Int("candidates", len(candidates)),
		logger.Int64("pairings_created", created))
	return nil
}

// requeue publishes the unchanged trip again with the next attempt number
// and a not-before time, leaving it created
func (uc *MatchingUC) requeue(ctx context.Context, trip *models.TripRequest, attempt int) error {
	total, err := uc.repo.IncrRequeueAttempt(ctx, trip.ID, requeueCounterTTL)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to count requeue attempt",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	delay := retry.Backoff(uc.cfg.Intake.RequeueDelay, uc.cfg.Intake.RequeueMaxDelay, 2.0, attempt, false)
	envelope := models.NewRequeueEnvelope(trip, attempt+1, models.Now().Add(delay))
	if err := uc.gw.PublishRequeue(ctx, envelope); err != nil {
		return err
	}

	metrics.RequeuesTotal.Inc()
	logger.InfoCtx(ctx, "No candidates for trip request, requeued",
		logger.String("trip_id", trip.ID),
		logger.Int("next_attempt", envelope.RetryAttempt),
		logger.Int64("requeues_total", total),
		logger.Duration("delay", delay))
	return nil
}

// HandleOfferCancelled cancels an offer and its open pairings
func (uc *MatchingUC) HandleOfferCancelled(ctx context.Context, offerID string) error {
	if offerID == "" {
		return fmt.Errorf("%w: cancelled offer id is required", models.ErrInvalidInput)
	}

	closed, err := uc.repo.CancelOfferedRide(ctx, offerID)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Offered ride cancelled",
		logger.String("offer_id", offerID),
		logger.Int64("pairings_cancelled", closed))
	return nil
}

// HandleTripCancelled cancels an open trip and its open pairings
func (uc *MatchingUC) HandleTripCancelled(ctx context.Context, tripID string) error {
	if tripID == "" {
		return fmt.Errorf("%w: cancelled trip id is required", models.ErrInvalidInput)
	}

	closed, err := uc.repo.CancelTripRequest(ctx, tripID)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Trip request cancelled",
		logger.String("trip_id", tripID),
		logger.Int64("pairings_cancelled", closed))
	return nil
}
