package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eventdesk/server/internal/metrics"
)

// Metrics records request counts and latency per route pattern. The route
// label is the registered mux pattern, not the raw path, so IDs don't blow
// up label cardinality.
func Metrics(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
