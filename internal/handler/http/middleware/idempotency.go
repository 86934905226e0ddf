package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyHeader = "Idempotency-Key"

	idempotencyLockTTL = 30 * time.Second
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

func idempotencyKeys(r *http.Request, key string) (cacheKey, lockKey string) {
	cacheKey = fmt.Sprintf("idemp:%s:%s", r.URL.Path, key)
	return cacheKey, cacheKey + ":lock"
}

// Idempotency replays the stored response of a POST that carries an Idempotency-Key already seen
// within ttl. Concurrent requests with the same key get 409 while the first is in flight.
// A nil client disables the middleware.
func Idempotency(rdb redis.Cmdable, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if rdb == nil || key == "" || r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			cacheKey, lockKey := idempotencyKeys(r, key)

			val, err := rdb.Get(ctx, cacheKey).Result()
			if err == nil {
				var cached cachedResponse
				if err := json.Unmarshal([]byte(val), &cached); err == nil {
					w.Header().Set("Content-Type", cached.ContentType)
					w.Header().Set("Idempotent-Replayed", "true")
					w.WriteHeader(cached.Status)
					_, _ = w.Write([]byte(cached.Body))
					return
				}
			} else if !errors.Is(err, redis.Nil) {
				// Cache unavailable: serve the request without the guarantee
				slog.Warn("idempotency cache lookup failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
			if err != nil {
				slog.Warn("idempotency lock failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !isNew {
				response.Conflict(w, "A request with this idempotency key is still being processed")
				return
			}

			var body bytes.Buffer
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&body)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status < http.StatusInternalServerError {
				payload, _ := json.Marshal(cachedResponse{
					Status:      status,
					ContentType: ww.Header().Get("Content-Type"),
					Body:        body.String(),
				})
				if err := rdb.Set(ctx, cacheKey, string(payload), ttl).Err(); err != nil {
					slog.Warn("idempotency cache store failed", "error", err)
				}
			}
			if err := rdb.Del(ctx, lockKey).Err(); err != nil {
				slog.Warn("idempotency unlock failed", "error", err)
			}
		})
	}
}
