package middleware

import (
	"net"
	"net/http"
	"time"

	"lost-and-found/backend/global"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window per-IP limiter backed by Redis, meant for the
// auth endpoints. With no Redis configured it lets everything through.
type RateLimiter struct {
	Rdb       *redis.Client
	PerMinute int
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.Rdb == nil || l.PerMinute <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		key := "ratelimit:login:" + ip
		ctx := r.Context()
		count, err := l.Rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down should not lock users out.
			global.Logger.Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			l.Rdb.Expire(ctx, key, time.Minute)
		}
		if count > int64(l.PerMinute) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many attempts. Try again later."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
