package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/middleware"
	"github.com/piresc/barengan/internal/pkg/models"
	nrpkg "github.com/piresc/barengan/internal/pkg/newrelic"
	"github.com/piresc/barengan/internal/utils"
	"github.com/piresc/barengan/services/matching"
)

// MatchingHandler serves the driver and rider negotiation endpoints
type MatchingHandler struct {
	matchingUC matching.MatchingUC
}

// NewMatchingHandler creates a new matching HTTP handler
func NewMatchingHandler(matchingUC matching.MatchingUC) *MatchingHandler {
	return &MatchingHandler{
		matchingUC: matchingUC,
	}
}

// RegisterRoutes registers the negotiation and listing routes under /ride.
// Every route requires the caller identity forwarded by the gateway.
func (h *MatchingHandler) RegisterRoutes(e *echo.Echo) {
	ride := e.Group("/ride", middleware.UserIdentity())

	ride.GET("/requests", nrpkg.TraceHandler("Matching.ListRequests", h.ListRequests))
	ride.GET("/driver", nrpkg.TraceHandler("Matching.ListOfferedRides", h.ListOfferedRides))
	ride.GET("/rider", nrpkg.TraceHandler("Matching.ListTripRequests", h.ListTripRequests))

	driver := ride.Group("/driver")
	driver.PATCH("/givePrice/:requestId", nrpkg.TraceHandler("Matching.GivePrice", h.GivePrice))
	driver.PATCH("/acceptRide/:requestId", nrpkg.TraceHandler("Matching.DriverAccept", h.DriverAccept))
	driver.PATCH("/declineRide/:requestId", nrpkg.TraceHandler("Matching.DriverDecline", h.DriverDecline))

	rider := ride.Group("/rider")
	rider.PATCH("/acceptRide/:requestId", nrpkg.TraceHandler("Matching.RiderAccept", h.RiderAccept))
	rider.PATCH("/declineRide/:requestId", nrpkg.TraceHandler("Matching.RiderDecline", h.RiderDecline))
	rider.PATCH("/negotiate/:requestId", nrpkg.TraceHandler("Matching.RiderNegotiate", h.RiderNegotiate))
}

// GivePrice sets the driver's starting price on a pending pairing
func (h *MatchingHandler) GivePrice(c echo.Context) error {
	pairingID := c.Param("requestId")
	middleware.SetPairingID(c, pairingID)

	var req models.GivePriceRequest
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	pairing, err := h.matchingUC.GiveStartingPrice(c.Request().Context(), middleware.GetUserID(c), pairingID, req.DriverStartingPrice)
	if err != nil {
		return h.fail(c, "give starting price", pairingID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Starting price submitted", pairing)
}

// DriverAccept accepts the rider's counter price
func (h *MatchingHandler) DriverAccept(c echo.Context) error {
	pairingID := c.Param("requestId")
	middleware.SetPairingID(c, pairingID)

	pairing, err := h.matchingUC.DriverAccept(c.Request().Context(), middleware.GetUserID(c), pairingID)
	if err != nil {
		return h.fail(c, "driver accept", pairingID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", pairing)
}

// DriverDecline declines a pairing on the driver side
func (h *MatchingHandler) DriverDecline(c echo.Context) error {
	pairingID := c.Param("requestId")
	middleware.SetPairingID(c, pairingID)

	pairing, err := h.matchingUC.DriverDecline(c.Request().Context(), middleware.GetUserID(c), pairingID)
	if err != nil {
		return h.fail(c, "driver decline", pairingID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride declined", pairing)
}

// RiderAccept accepts the driver's current price
func (h *MatchingHandler) RiderAccept(c echo.Context) error {
	pairingID := c.Param("requestId")
	middleware.SetPairingID(c, pairingID)

	pairing, err := h.matchingUC.RiderAccept(c.Request().Context(), middleware.GetUserID(c), pairingID)
	if err != nil {
		return h.fail(c, "rider accept", pairingID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", pairing)
}

// RiderDecline declines a pairing on the rider side
func (h *MatchingHandler) RiderDecline(c echo.Context) error {
	pairingID := c.Param("requestId")
	middleware.SetPairingID(c, pairingID)

	pairing, err := h.matchingUC.RiderDecline(c.Request().Context(), middleware.GetUserID(c), pairingID)
	if err != nil {
		return h.fail(c, "rider decline", pairingID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride declined", pairing)
}

// RiderNegotiate submits the rider's single counter offer
func (h *MatchingHandler) RiderNegotiate(c echo.Context) error {
	pairingID := c.Param("requestId")
	middleware.SetPairingID(c, pairingID)

	var req models.NegotiateRequest
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	pairing, err := h.matchingUC.RiderNegotiate(c.Request().Context(), middleware.GetUserID(c), pairingID, req.RiderRequestingPrice)
	if err != nil {
		return h.fail(c, "rider negotiate", pairingID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Counter offer submitted", pairing)
}

// ListRequests lists the caller's pairings, optionally narrowed by ?requestType=driver|rider
func (h *MatchingHandler) ListRequests(c echo.Context) error {
	requestType := models.RequestType(c.QueryParam("requestType"))

	requests, err := h.matchingUC.ListRequests(c.Request().Context(), middleware.GetUserID(c), requestType)
	if err != nil {
		return h.fail(c, "list requests", "", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// ListOfferedRides lists the caller's offered rides
func (h *MatchingHandler) ListOfferedRides(c echo.Context) error {
	offers, err := h.matchingUC.ListOfferedRides(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return h.fail(c, "list offered rides", "", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", offers)
}

// ListTripRequests lists the caller's trip requests
func (h *MatchingHandler) ListTripRequests(c echo.Context) error {
	trips, err := h.matchingUC.ListTripRequests(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return h.fail(c, "list trip requests", "", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", trips)
}

func (h *MatchingHandler) fail(c echo.Context, op, pairingID string, err error) error {
	status := utils.StatusForError(err)
	fields := []logger.Field{
		logger.String("op", op),
		logger.String("user_id", middleware.GetUserID(c)),
		logger.Int("status", status),
		logger.Err(err),
	}
	if pairingID != "" {
		fields = append(fields, logger.String("pairing_id", pairingID))
	}

	if status >= http.StatusInternalServerError {
		middleware.NoticeError(c, err)
		logger.ErrorCtx(c.Request().Context(), "Matching request failed", fields...)
	} else {
		logger.WarnCtx(c.Request().Context(), "Matching request rejected", fields...)
	}
	return utils.DomainErrorResponse(c, err)
}
