package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/handler/http/response"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/ratelimit"
)

// RateLimit rejects requests once a client IP exceeds max hits inside
// the window. Store errors fail open so a limiter outage never takes
// down login.
func RateLimit(store ratelimit.Store, prefix string, max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			count, err := store.Incr(r.Context(), prefix+":"+ip, window)
			if err == nil && count > max {
				response.TooManyRequests(w, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
