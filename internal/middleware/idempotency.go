package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency menahan submit ganda pada POST yang membawa Idempotency-Key.
// Request kedua dengan key yang sama saat proses pertama masih berjalan
// ditolak 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetInt64("user_id")
		lockKey := fmt.Sprintf("idemp:%s:%d:%s:lock", c.FullPath(), userID, idempKey)

		// Lock pendek: kalau server crash, lock hilang sendiri.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "A request with this idempotency key is already being processed",
			})
			return
		}

		c.Set("idempotency_lock_key", lockKey)
		c.Next()
	}
}
