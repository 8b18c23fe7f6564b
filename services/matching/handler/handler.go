package handler

import (
	"context"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/piresc/barengan/services/matching"
	httpHandler "github.com/piresc/barengan/services/matching/handler/http"
	natsHandler "github.com/piresc/barengan/services/matching/handler/nats"
)

// Handler combines all handlers for the matching service
type Handler struct {
	matchingHTTP *httpHandler.MatchingHandler
	intake       *natsHandler.IntakeHandler
	expiry       *ExpiryWorker
	wg           sync.WaitGroup
}

// NewHandler creates a new combined handler
func NewHandler(
	matchingUC matching.MatchingUC,
	fetcher natsHandler.Fetcher,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	h := &Handler{
		matchingHTTP: httpHandler.NewMatchingHandler(matchingUC),
		intake:       natsHandler.NewIntakeHandler(matchingUC, fetcher, cfg, nrApp),
	}
	if cfg.Expiry.Enabled {
		h.expiry = NewExpiryWorker(matchingUC, cfg.Expiry.Interval)
	}
	return h
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	h.matchingHTTP.RegisterRoutes(e)
}

// StartWorkers launches the intake loop and the expiry sweep. They stop when ctx is cancelled.
func (h *Handler) StartWorkers(ctx context.Context) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		if err := h.intake.Run(ctx); err != nil {
			logger.Error("Intake loop exited", logger.Err(err))
		}
	}()

	if h.expiry != nil {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.expiry.Run(ctx)
		}()
	}
}

// Wait blocks until every worker started by StartWorkers has returned
func (h *Handler) Wait() {
	h.wg.Wait()
}
