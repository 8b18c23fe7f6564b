package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "barengan"

var (
	IntakeMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "intake_messages_total", Help: "Inbound queue messages by event type and disposition"},
		[]string{"event_type", "disposition"},
	)
	RequeuesTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "intake_requeues_total", Help: "Trips requeued because no candidate was found"})

	CandidatesFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "finder_candidates",
		Help:      "Candidates returned per finder run",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
	})
	FinderDuration = promauto.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "finder_duration_seconds", Help: "Finder latency seconds"})

	PairingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "pairing_transitions_total", Help: "Pairing transitions by operation and result"},
		[]string{"operation", "result"},
	)
	SeatCASConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "seat_cas_conflicts_total", Help: "Seat decrements retried after a version conflict"})
	SiblingsInvalidatedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "siblings_invalidated_total", Help: "Pairings invalidated because another pairing won the trip"})
	ExpiredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "expired_total", Help: "Records expired by the sweep"},
		[]string{"kind"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// ObserveTransition counts one pairing operation outcome
func ObserveTransition(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	PairingTransitionsTotal.WithLabelValues(operation, result).Inc()
}

// Handler exposes the default registry for scraping
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// EchoMiddleware records request count and latency per route template
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
