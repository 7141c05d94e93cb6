package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "portfolio_gateway"

	// unmatchedRoute labels requests answered by the static fallback
	unmatchedRoute = "unmatched"
)

// Statistic holds the HTTP and Drive collectors of the gateway
type Statistic struct {
	registry *prometheus.Registry

	RequestCount   *prometheus.CounterVec
	ResponseStatus *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	DriveErrors    *prometheus.CounterVec
}

// New creates a Statistic registered on its own registry
func New() *Statistic {
	stats := &Statistic{
		registry: prometheus.NewRegistry(),
		RequestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_count",
			Help:      "request count",
		}, []string{"method", "path"}),
		ResponseStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "response_status",
			Help:      "Status of HTTP response",
		}, []string{"status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_response_time_sec",
			Help:      "Duration of HTTP requests.",
		}, []string{"path"}),
		DriveErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drive_errors_total",
			Help:      "Failed Google Drive calls by route and kind",
		}, []string{"route", "kind"}),
	}

	stats.registry.MustRegister(
		stats.RequestCount,
		stats.ResponseStatus,
		stats.HTTPDuration,
		stats.DriveErrors,
	)

	return stats
}

// Handler serves the Prometheus exposition of the registry
func (s *Statistic) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// ObserveDriveError counts a failed Drive call. Safe on a nil Statistic
func (s *Statistic) ObserveDriveError(route, kind string) {
	if s == nil {
		return
	}
	s.DriveErrors.WithLabelValues(route, kind).Inc()
}

// Middleware records count, status and duration per route pattern
func (s *Statistic) Middleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := routePattern(r)
		statusCode := ww.Status()
		if statusCode == 0 {
			statusCode = http.StatusOK
		}

		s.ResponseStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
		s.RequestCount.WithLabelValues(r.Method, path).Inc()
		s.HTTPDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}

	return http.HandlerFunc(fn)
}

// routePattern keeps label cardinality bounded to the declared routes
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
