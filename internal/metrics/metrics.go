// Package metrics holds the Prometheus collectors of the service and the
// HTTP middleware that feeds the request collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// SlotRequests counts rotation requests per slot.
	SlotRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_slot_requests_total",
			Help: "Ad rotation requests per slot",
		},
		[]string{"slot"},
	)

	// Exclusions counts campaigns dropped from a rotation, by reason.
	Exclusions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_exclusions_total",
			Help: "Campaigns excluded from a rotation by reason",
		},
		[]string{"reason"},
	)

	// AdEvents counts recorded views and clicks.
	AdEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_events_total",
			Help: "Recorded ad events by kind",
		},
		[]string{"kind"},
	)

	// DroppedEvents counts ad events lost because the buffer was full or
	// the counter write failed.
	DroppedEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_events_dropped_total",
			Help: "Ad events that could not be persisted",
		},
		[]string{"kind", "cause"},
	)

	// PopupWarnings counts normalization warnings on popup writes.
	PopupWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popup_normalization_warnings_total",
			Help: "Warnings produced while normalizing popup sets",
		},
	)
)

// unmatchedRoute labels requests no chi route matched.
const unmatchedRoute = "unmatched"

// HTTP records request count, latency and in-flight requests. The route
// label is the matched chi pattern, never the raw path.
func HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(status),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	})
}
