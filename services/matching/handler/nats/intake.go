package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	reqctx "github.com/piresc/barengan/internal/pkg/context"
	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/metrics"
	"github.com/piresc/barengan/internal/pkg/models"
	natspkg "github.com/piresc/barengan/internal/pkg/nats"
	nrpkg "github.com/piresc/barengan/internal/pkg/newrelic"
	"github.com/piresc/barengan/internal/pkg/retry"
	"github.com/piresc/barengan/services/matching"
)

const fetchErrorBackoff = time.Second

// Message dispositions, also used as metric label values
const (
	dispositionAck     = "ack"
	dispositionNak     = "nak"
	dispositionTerm    = "term"
	dispositionDelayed = "delayed"
	dispositionUnknown = "unknown"
)

// Fetcher pulls batches from the intake consumer. *natspkg.PullConsumer satisfies it.
type Fetcher interface {
	Fetch(maxMessages int, maxWait time.Duration) ([]natspkg.Message, error)
}

// IntakeHandler runs the pull loop that feeds ride lifecycle events into the matcher
type IntakeHandler struct {
	matchingUC matching.MatchingUC
	fetcher    Fetcher
	retrier    *retry.Retrier
	cfg        models.IntakeConfig
	nrApp      *newrelic.Application
	now        func() time.Time
}

// NewIntakeHandler creates the intake loop. nrApp may be nil.
func NewIntakeHandler(matchingUC matching.MatchingUC, fetcher Fetcher, cfg *models.Config, nrApp *newrelic.Application) *IntakeHandler {
	return &IntakeHandler{
		matchingUC: matchingUC,
		fetcher:    fetcher,
		retrier:    retry.New(retry.FromConfig(cfg.Retry), logger.GetGlobalLogger()),
		cfg:        cfg.Intake,
		nrApp:      nrApp,
		now:        models.Now,
	}
}

// Run fetches and handles batches until ctx is cancelled
func (h *IntakeHandler) Run(ctx context.Context) error {
	logger.Info("Intake loop started",
		logger.String("stream", h.cfg.Stream),
		logger.String("consumer", h.cfg.Consumer),
		logger.Int("batch_size", h.cfg.BatchSize))

	for {
		if ctx.Err() != nil {
			logger.Info("Intake loop stopped")
			return nil
		}

		msgs, err := h.fetcher.Fetch(h.cfg.BatchSize, h.cfg.PollWait)
		for _, msg := range msgs {
			h.HandleMessage(ctx, msg)
		}

		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.Warn("Failed to fetch intake batch", logger.Err(err))
			select {
			case <-ctx.Done():
			case <-time.After(fetchErrorBackoff):
			}
		}
	}
}

// HandleMessage decodes one delivery, dispatches it and settles it with the broker
func (h *IntakeHandler) HandleMessage(ctx context.Context, msg natspkg.Message) {
	envelope, err := models.DecodeEnvelope(msg.Data())
	if err != nil {
		logger.Error("Dropping malformed intake message",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
		h.settle(msg, "malformed", dispositionTerm)
		return
	}
	eventType := string(envelope.EventType)

	if envelope.NotBefore != nil {
		if delay := envelope.NotBefore.Sub(h.now()); delay > 0 {
			logger.Debug("Delaying intake message",
				logger.String("event_type", eventType),
				logger.Duration("delay", delay))
			if err := msg.NakWithDelay(delay); err != nil {
				logger.Warn("Failed to delay intake message", logger.Err(err))
			}
			metrics.IntakeMessagesTotal.WithLabelValues(eventType, dispositionDelayed).Inc()
			return
		}
	}

	handle, ok := h.handlerFor(envelope)
	if !ok {
		logger.Warn("Ignoring intake message with unknown event type",
			logger.String("event_type", eventType))
		h.settle(msg, eventType, dispositionUnknown)
		return
	}

	txn := nrpkg.StartBackgroundTransaction(h.nrApp, "Intake/"+eventType)
	defer txn.End()
	ctx = newrelic.NewContext(reqctx.WithRequestID(ctx, ""), txn)

	err = h.retrier.Execute(ctx, handle)
	switch {
	case err == nil:
		h.settle(msg, eventType, dispositionAck)
	case models.IsRetryable(err):
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Intake message failed, leaving for redelivery",
			logger.String("event_type", eventType),
			logger.Err(err))
		h.settle(msg, eventType, dispositionNak)
	default:
		nrpkg.NoticeTransactionError(txn, err)
		logger.WarnCtx(ctx, "Intake message rejected",
			logger.String("event_type", eventType),
			logger.Err(err))
		h.settle(msg, eventType, dispositionTerm)
	}
}

func (h *IntakeHandler) handlerFor(envelope *models.EventEnvelope) (retry.RetryableFunc, bool) {
	switch envelope.EventType {
	case models.EventNewDriverRideCreated:
		return func(ctx context.Context) error {
			if envelope.DriverRide == nil {
				return fmt.Errorf("%w: %s without driverRide", models.ErrInvalidInput, envelope.EventType)
			}
			return h.matchingUC.HandleOfferedRide(ctx, envelope.DriverRide)
		}, true
	case models.EventNewRiderRideCreated:
		return func(ctx context.Context) error {
			if envelope.RiderRide == nil {
				return fmt.Errorf("%w: %s without riderRide", models.ErrInvalidInput, envelope.EventType)
			}
			return h.matchingUC.HandleTripRequest(ctx, envelope.RiderRide, envelope.RetryAttempt)
		}, true
	case models.EventDriverRideCancelled:
		return func(ctx context.Context) error {
			if envelope.CancelledDriverRide == nil {
				return fmt.Errorf("%w: %s without cancelledDriverRide", models.ErrInvalidInput, envelope.EventType)
			}
			return h.matchingUC.HandleOfferCancelled(ctx, envelope.CancelledDriverRide.ID)
		}, true
	case models.EventRiderRideCancelled:
		return func(ctx context.Context) error {
			if envelope.CancelledRiderRide == nil {
				return fmt.Errorf("%w: %s without cancelledRiderRide", models.ErrInvalidInput, envelope.EventType)
			}
			return h.matchingUC.HandleTripCancelled(ctx, envelope.CancelledRiderRide.ID)
		}, true
	default:
		return nil, false
	}
}

func (h *IntakeHandler) settle(msg natspkg.Message, eventType, disposition string) {
	var err error
	switch disposition {
	case dispositionAck, dispositionUnknown:
		err = msg.Ack()
	case dispositionNak:
		err = msg.Nak()
	case dispositionTerm:
		err = msg.Term()
	default:
		err = errors.New("unknown disposition " + disposition)
	}
	if err != nil {
		logger.Warn("Failed to settle intake message",
			logger.String("event_type", eventType),
			logger.String("disposition", disposition),
			logger.Err(err))
	}
	metrics.IntakeMessagesTotal.WithLabelValues(eventType, disposition).Inc()
}
