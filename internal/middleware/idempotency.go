package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"doctrack/internal/shared/apperror"
	"doctrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency replays the cached response when a POST arrives twice with
// the same Idempotency-Key. While the first request is still in flight a
// short-lived Redis lock rejects the duplicate instead of running it.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached json.RawMessage = []byte(val)
			c.AbortWithStatusJSON(http.StatusOK, response.ApiEnvelope{Ok: true, Data: cached})
			return
		}

		// Lock expiry bounds how long a crashed request blocks its retry.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"A request with this idempotency key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// StoreIdempotentResult caches a successful response body under the key
// reserved by Idempotency and releases the in-flight lock. Handlers call
// it after a 2xx outcome.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, data any, ttl time.Duration) {
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" {
		return
	}

	if payload, err := json.Marshal(data); err == nil {
		rdb.Set(c.Request.Context(), cacheKey, payload, ttl)
	}
	if lockKey != "" {
		rdb.Del(c.Request.Context(), lockKey)
	}
}
