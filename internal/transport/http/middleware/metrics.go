package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/chatwith-notifications/internal/observability/metrics"
)

// Metrics records per-request counters and latency histograms. The endpoint
// label is the chi route pattern, not the raw path: raw paths on 404 traffic
// would grow the label set without bound.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		endpoint := endpointLabel(r)
		metrics.HTTPRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(ww.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	})
}

// endpointLabel resolves the matched route pattern after routing has run.
// Requests that matched no route share a single "unmatched" label.
func endpointLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
