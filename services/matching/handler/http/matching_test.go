package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/barengan/internal/pkg/constants"
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/piresc/barengan/services/matching/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    int             `json:"code"`
}

func setupServer(t *testing.T) (*echo.Echo, *mocks.MockMatchingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockMatchingUC(ctrl)
	e := echo.New()
	NewMatchingHandler(mockUC).RegisterRoutes(e)
	return e, mockUC
}

func doRequest(e *echo.Echo, method, path, userID, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set(constants.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestNewMatchingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewMatchingHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.matchingUC)
}

func TestMatchingHandler_MissingIdentity(t *testing.T) {
	e, _ := setupServer(t)

	rec, resp := doRequest(e, http.MethodPatch, "/ride/rider/acceptRide/p-1", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
}

func TestMatchingHandler_GivePrice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			GiveStartingPrice(gomock.Any(), "driver-1", "p-1", 500.0).
			Return(&models.DriverPairing{ID: "p-1", Status: models.DriverAwaitingRiderResp, DriverStartingPrice: models.Price(500)}, nil)

		rec, resp := doRequest(e, http.MethodPatch, "/ride/driver/givePrice/p-1", "driver-1", `{"driver_starting_price":500}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		var pairing models.DriverPairing
		require.NoError(t, json.Unmarshal(resp.Data, &pairing))
		assert.Equal(t, "p-1", pairing.ID)
		assert.Equal(t, 500.0, *pairing.DriverStartingPrice)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := setupServer(t)

		rec, resp := doRequest(e, http.MethodPatch, "/ride/driver/givePrice/p-1", "driver-1", `{"driver_starting_price":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, resp.Error, "Invalid request body")
	})

	t.Run("invalid price", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			GiveStartingPrice(gomock.Any(), "driver-1", "p-1", 0.0).
			Return(nil, fmt.Errorf("%w: starting price must be positive", models.ErrInvalidInput))

		rec, resp := doRequest(e, http.MethodPatch, "/ride/driver/givePrice/p-1", "driver-1", `{"driver_starting_price":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Error, "starting price must be positive")
	})
}

func TestMatchingHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not found", models.ErrNotFound, http.StatusNotFound, "not found"},
		{"invalid transition", models.ErrInvalidTransition, http.StatusConflict, "invalid transition"},
		{"already booked", models.ErrAlreadyBooked, http.StatusConflict, "trip already booked"},
		{"capacity", models.ErrCapacityExhausted, http.StatusConflict, "capacity exhausted"},
		{"transient", models.Transient(errors.New("connection refused")), http.StatusServiceUnavailable, "connection refused"},
		{"unclassified", errors.New("pq: secret detail"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockUC := setupServer(t)
			mockUC.EXPECT().RiderAccept(gomock.Any(), "rider-1", "rp-1").Return(nil, tt.err)

			rec, resp := doRequest(e, http.MethodPatch, "/ride/rider/acceptRide/rp-1", "rider-1", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, resp.Success)
			assert.Contains(t, resp.Error, tt.wantError)
		})
	}
}

func TestMatchingHandler_DriverEndpoints(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			DriverAccept(gomock.Any(), "driver-1", "p-1").
			Return(&models.DriverPairing{ID: "p-1", Status: models.DriverAcceptedByDriver}, nil)

		rec, resp := doRequest(e, http.MethodPatch, "/ride/driver/acceptRide/p-1", "driver-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ride accepted", resp.Message)
	})

	t.Run("decline", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			DriverDecline(gomock.Any(), "driver-1", "p-1").
			Return(&models.DriverPairing{ID: "p-1", Status: models.DriverDeclinedByDriver}, nil)

		rec, resp := doRequest(e, http.MethodPatch, "/ride/driver/declineRide/p-1", "driver-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ride declined", resp.Message)
	})
}

func TestMatchingHandler_RiderEndpoints(t *testing.T) {
	t.Run("negotiate", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			RiderNegotiate(gomock.Any(), "rider-1", "rp-1", 400.0).
			Return(&models.RiderPairing{ID: "rp-1", Status: models.RiderAwaitingDriverResp, CounterPrice: models.Price(400)}, nil)

		rec, resp := doRequest(e, http.MethodPatch, "/ride/rider/negotiate/rp-1", "rider-1", `{"rider_requesting_price":400}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var pairing models.RiderPairing
		require.NoError(t, json.Unmarshal(resp.Data, &pairing))
		assert.Equal(t, 400.0, *pairing.CounterPrice)
	})

	t.Run("second negotiation rejected", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			RiderNegotiate(gomock.Any(), "rider-1", "rp-1", 350.0).
			Return(nil, fmt.Errorf("%w: negotiate from NEGOTIATED", models.ErrInvalidTransition))

		rec, _ := doRequest(e, http.MethodPatch, "/ride/rider/negotiate/rp-1", "rider-1", `{"rider_requesting_price":350}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("decline", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			RiderDecline(gomock.Any(), "rider-1", "rp-1").
			Return(&models.RiderPairing{ID: "rp-1", Status: models.RiderDeclinedByRider}, nil)

		rec, _ := doRequest(e, http.MethodPatch, "/ride/rider/declineRide/rp-1", "rider-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMatchingHandler_Listing(t *testing.T) {
	t.Run("requests by type", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			ListRequests(gomock.Any(), "user-1", models.RequestTypeDriver).
			Return(&models.RideRequests{DriverRequests: []*models.DriverPairing{{ID: "p-1"}}}, nil)

		rec, resp := doRequest(e, http.MethodGet, "/ride/requests?requestType=driver", "user-1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var requests models.RideRequests
		require.NoError(t, json.Unmarshal(resp.Data, &requests))
		require.Len(t, requests.DriverRequests, 1)
		assert.Empty(t, requests.RiderRequests)
	})

	t.Run("unknown type", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			ListRequests(gomock.Any(), "user-1", models.RequestType("both")).
			Return(nil, fmt.Errorf("%w: unknown request type", models.ErrInvalidInput))

		rec, _ := doRequest(e, http.MethodGet, "/ride/requests?requestType=both", "user-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("offered rides", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			ListOfferedRides(gomock.Any(), "driver-1").
			Return([]*models.OfferedRide{{ID: "offer-1"}, {ID: "offer-2"}}, nil)

		rec, resp := doRequest(e, http.MethodGet, "/ride/driver", "driver-1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var offers []*models.OfferedRide
		require.NoError(t, json.Unmarshal(resp.Data, &offers))
		assert.Len(t, offers, 2)
	})

	t.Run("trip requests store failure", func(t *testing.T) {
		e, mockUC := setupServer(t)
		mockUC.EXPECT().
			ListTripRequests(gomock.Any(), "rider-1").
			Return(nil, models.Transient(errors.New("timeout")))

		rec, _ := doRequest(e, http.MethodGet, "/ride/rider", "rider-1", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
