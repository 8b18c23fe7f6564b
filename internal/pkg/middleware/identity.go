package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/barengan/internal/pkg/constants"
	reqctx "github.com/piresc/barengan/internal/pkg/context"
	"github.com/piresc/barengan/internal/utils"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(constants.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Set(constants.ContextRequestID, requestID)
			c.SetRequest(c.Request().WithContext(reqctx.WithRequestID(c.Request().Context(), requestID)))
			c.Response().Header().Set(constants.HeaderRequestID, requestID)
			AddAttribute(c, "request.id", requestID)

			return next(c)
		}
	}
}

// UserIdentity reads the caller id forwarded by the API gateway in X-User-ID.
// Requests without one are rejected.
func UserIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get(constants.HeaderUserID)
			if userID == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Missing caller identity")
			}

			c.Set(constants.ContextUserID, userID)
			c.SetRequest(c.Request().WithContext(reqctx.WithUserID(c.Request().Context(), userID)))
			SetUserID(c, userID)

			return next(c)
		}
	}
}

// GetUserID returns the caller id stored by UserIdentity
func GetUserID(c echo.Context) string {
	userID, _ := c.Get(constants.ContextUserID).(string)
	return userID
}
