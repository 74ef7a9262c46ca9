package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/adaptation-catalog/internal/observability"
)

// Metrics records request durations labeled by the matched route pattern.
// It must wrap the ServeMux directly: the mux sets r.Pattern on the request
// it receives, and only that request is visible here.
func Metrics(m *observability.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.HTTPRequestDuration.
				WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
