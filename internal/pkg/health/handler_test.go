package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/piresc/barengan/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn bool

func (c fakeConn) IsConnected() bool { return bool(c) }

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	t.Setenv("GIT_COMMIT", "abc123")

	e := echo.New()
	e.GET("/ping", NewPingHandler("matcher"))

	rec := serve(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "matcher", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())

	hostname, err := os.Hostname()
	if err == nil {
		assert.Equal(t, hostname, info.Hostname)
	}
}

func TestRegisterHealthEndpoints(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		svc := NewHealthService()
		svc.AddChecker("nats", NewNATSHealthChecker(fakeConn(true)))
		svc.AddChecker("static", CheckerFunc(func(context.Context) error { return nil }))

		e := echo.New()
		RegisterHealthEndpoints(e, "matcher", "1.0.0", svc)

		assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
		assert.Equal(t, http.StatusOK, serve(e, "/health/live").Code)

		ready := serve(e, "/health/ready")
		assert.Equal(t, http.StatusOK, ready.Code)
		assert.Contains(t, ready.Body.String(), `"status":"ready"`)

		detailed := serve(e, "/health/detailed")
		require.Equal(t, http.StatusOK, detailed.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(detailed.Body.Bytes(), &resp))
		assert.Equal(t, StatusHealthy, resp.Status)
		assert.Equal(t, "1.0.0", resp.Version)
		assert.Len(t, resp.Dependencies, 2)
	})

	t.Run("one dependency down", func(t *testing.T) {
		svc := NewHealthService()
		svc.AddChecker("nats", NewNATSHealthChecker(fakeConn(false)))
		svc.AddChecker("static", CheckerFunc(func(context.Context) error { return nil }))

		e := echo.New()
		RegisterHealthEndpoints(e, "matcher", "1.0.0", svc)

		assert.Equal(t, http.StatusOK, serve(e, "/health/live").Code)

		ready := serve(e, "/health/ready")
		require.Equal(t, http.StatusServiceUnavailable, ready.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(ready.Body.Bytes(), &resp))
		assert.Equal(t, StatusUnhealthy, resp.Status)
		assert.Equal(t, StatusUnhealthy, resp.Dependencies["nats"].Status)
		assert.Equal(t, "nats not connected", resp.Dependencies["nats"].Error)
		assert.Equal(t, StatusHealthy, resp.Dependencies["static"].Status)
	})
}

func TestPostgresHealthChecker(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	mock.ExpectPing()
	assert.NoError(t, NewPostgresHealthChecker(db).CheckHealth(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, NewPostgresHealthChecker(db).CheckHealth(context.Background()))

	assert.Error(t, NewPostgresHealthChecker(nil).CheckHealth(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisHealthChecker(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer client.Close()

	checker := NewRedisHealthChecker(client)
	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))

	assert.Error(t, NewRedisHealthChecker(nil).CheckHealth(context.Background()))
}
