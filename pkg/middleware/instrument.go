package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/trendwise-api/internal/metrics"
)

// Instrument registra contagem e latência pela rota registrada, não pelo path
// concreto, para não explodir a cardinalidade com IDs.
func Instrument(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			metrics.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		})
	}
}
