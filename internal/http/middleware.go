package http

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/fjod/stylevault/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDHeader echoes the request ID assigned by chi back to the
// caller so client logs can be correlated with server logs.
func RequestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set("X-Request-ID", id)
		}
		next.ServeHTTP(w, r)
	})
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

// MetricsMiddleware counts requests by method, matched route and
// status code.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		})
	}
}

var hostOriginPattern = regexp.MustCompile(`^https?://[a-zA-Z0-9.-]+$`)

// AllowOrigin admits requests without an Origin header, localhost
// during development, and plain hostname origins.
func AllowOrigin(r *http.Request, origin string) bool {
	if origin == "" {
		return true
	}
	if strings.Contains(origin, "localhost") {
		return true
	}
	return hostOriginPattern.MatchString(origin)
}
