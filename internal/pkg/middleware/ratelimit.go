package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"vollmed/internal/pkg/cache"
	"vollmed/internal/pkg/logger"
)

// RateLimiter limita as requisições por IP em janelas fixas de duração `period`.
// Se o Redis estiver indisponível a requisição segue sem limite (fail-open) e o erro é registrado.
func RateLimiter(client cache.Client, limit int, period time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key, period)
			if err != nil {
				log.Warn("Rate limiter indisponível, seguindo sem limite.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))

			if count > int64(limit) {
				retry := period
				if ttl, err := client.TTL(ctx, key); err == nil && ttl > 0 {
					retry = ttl
				}
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(retry.Round(time.Second).Seconds())))
				http.Error(w, "Limite de requisições excedido", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
