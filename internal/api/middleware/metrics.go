// Package middleware provides HTTP middleware shared by all routes.
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gamedex/gamedex-api/internal/platform/metrics"
)

// MetricsMiddleware records a request counter and latency histogram for
// every request, labelled by method, matched route pattern and status.
func MetricsMiddleware(m *metrics.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// The matched route pattern is only known after routing has
			// run; fall back to the raw path for unmatched requests.
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			m.RecordRequest(r.Method, route, ww.Status(), time.Since(start))
		})
	}
}
