package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"cinema-reservations/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit applies a fixed window limit per client IP backed by
// Redis. A nil client or a non-positive limit disables limiting, so the
// server runs fine without Redis.
func RateLimit(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil || limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			key := fmt.Sprintf("ratelimit:%s", ip)

			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				// Redis being down should not take the API with it.
				logger.Warn("Rate limit check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if count == 1 {
				client.Expire(r.Context(), key, window)
			}

			if count > int64(limit) {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.Int64("count", count),
				)
				utils.ResponseJSON(w, http.StatusTooManyRequests, false, "Too many requests", nil, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
