package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/trendwise-api/internal/metrics"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
	"github.com/vfg2006/trendwise-api/pkg/log"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter aplica um token bucket por cliente. O balde enche com `requests`
// fichas distribuídas ao longo de `window`.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	interval time.Duration
	burst    int
	window   time.Duration
	now      func() time.Time
}

func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Hour
	}

	interval := window / time.Duration(requests)

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(interval),
		interval: interval,
		burst:    requests,
		window:   window,
		now:      time.Now,
	}
}

// Allow consome uma ficha do cliente informado
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.visitors[client]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[client] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Cleanup descarta clientes inativos há mais de uma janela
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)
	removed := 0
	for client, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, client)
			removed++
		}
	}
	return removed
}

func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	// Tempo até a próxima ficha
	retryAfter := strconv.Itoa(int(math.Ceil(rl.interval.Seconds())))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			client := clientIP(r)
			if !rl.Allow(client) {
				metrics.RateLimited.Inc()
				log.ForContext(r.Context()).WithField("client", client).Warn("Limite de requisições excedido")

				w.Header().Set("Retry-After", retryAfter)
				apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Rate limit exceeded", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
