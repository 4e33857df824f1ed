package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/beanmeet/beanmeet-api/internal/metrics"
	"github.com/beanmeet/beanmeet-api/internal/ratelimit"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
)

// RateLimit rejects callers over the fixed-window cap. When the counter store
// is unreachable the gate opens rather than failing the request.
func RateLimit(limiter *ratelimit.Limiter, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		allowed, err := limiter.Allow(r.Context(), clientAddr(r))
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, letting request through")
		}
		if !allowed {
			metrics.RateLimited.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
			return
		}
		next(w, r, ps)
	}
}

func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
