package http

import (
	"context"
	"net"
	"net/http"

	"github.com/google/uuid"
)

const sessionCookieName = "solareco_session"

type sessionIDContextKey struct{}

// SessionMiddleware guarantees every request carries a client session id,
// issuing a fresh uuid cookie when none is present. The id scopes OTP
// challenges in the session store.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
			id = c.Value
		} else {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDContextKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the client session id attached by SessionMiddleware.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionIDContextKey{}).(string)
	return id
}

// RateLimitMiddleware rejects clients that exhausted their request quota.
func RateLimitMiddleware(limiter *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)

		if !limiter.Allow(ip) {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
