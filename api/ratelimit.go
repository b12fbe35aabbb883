package api

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
)

// rateLimiter enforces a per-client request ceiling. Each client address
// gets its own token bucket; buckets live for the life of the process,
// which matches the single-operator scale this runs at.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	window   string

	responder Responder
}

func newRateLimiter(limit rate.Limit, burst int, window string) *rateLimiter {
	logger := log.With().Str("handlerName", "rateLimiter").Str("window", window).Logger()
	return &rateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		limit:     limit,
		burst:     burst,
		window:    window,
		responder: NewResponder(logger),
	}
}

// perMinute builds a limiter allowing n requests per minute per client.
func perMinute(n int, window string) *rateLimiter {
	return newRateLimiter(rate.Limit(float64(n)/60.0), n, window)
}

// perHour builds a limiter allowing n requests per hour per client.
func perHour(n int, window string) *rateLimiter {
	return newRateLimiter(rate.Limit(float64(n)/3600.0), n, window)
}

// perDay builds a limiter allowing n requests per day per client.
func perDay(n int, window string) *rateLimiter {
	return newRateLimiter(rate.Limit(float64(n)/86400.0), n, window)
}

func (l *rateLimiter) allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[client]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[client] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

func (l *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			l.responder.WriteError(w, errs.NewRateLimitError(l.window))
			return
		}
		next.ServeHTTP(w, r)
	})
}
