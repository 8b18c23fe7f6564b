package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/barengan/internal/pkg/circuitbreaker"
	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/models"
	natspkg "github.com/piresc/barengan/internal/pkg/nats"
	"github.com/piresc/barengan/services/matching"
)

// MatchingGW publishes requeue events back onto the intake subject
type MatchingGW struct {
	producer *natspkg.Producer
	subject  string
	breaker  *circuitbreaker.CircuitBreaker
}

// NewMatchingGW creates a new NATS gateway instance
func NewMatchingGW(publisher natspkg.Publisher, subject string) matching.MatchingGW {
	return &MatchingGW{
		producer: natspkg.NewProducer(publisher),
		subject:  subject,
		breaker:  circuitbreaker.New(circuitbreaker.DefaultConfig("requeue-publisher")),
	}
}

// PublishRequeue publishes a retry-later trip event. The message id is derived
// from the trip and attempt so a retried publish is deduplicated by the stream.
func (g *MatchingGW) PublishRequeue(ctx context.Context, envelope *models.EventEnvelope) error {
	if envelope.RiderRide == nil {
		return fmt.Errorf("%w: requeue event carries no trip", models.ErrInvalidInput)
	}

	msgID := fmt.Sprintf("requeue-%s-%d", envelope.RiderRide.ID, envelope.RetryAttempt)
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(ctx, g.subject, msgID, envelope)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish requeue event",
			logger.String("trip_id", envelope.RiderRide.ID),
			logger.Int("attempt", envelope.RetryAttempt),
			logger.Err(err))
		return models.Transient(fmt.Errorf("failed to publish requeue event: %w", err))
	}

	logger.DebugCtx(ctx, "Requeue event published",
		logger.String("trip_id", envelope.RiderRide.ID),
		logger.String("msg_id", msgID))
	return nil
}
