package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/ostech-br/os-manager/internal/httperr"
	"github.com/ostech-br/os-manager/internal/logger"
)

// RateLimit aplica uma janela fixa por IP em cima do Redis. Estourou o
// teto → 429. Redis fora do ar → fail open: limitar tráfego não pode
// derrubar a API inteira junto.
func RateLimit(client *redis.Client, window time.Duration, max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		bucket := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", ip, bucket)

		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log := logger.Get()
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > int64(max) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				httperr.NewEnvelope(httperr.New(http.StatusTooManyRequests, "too many requests, slow down"), ""),
			)
			return
		}

		c.Next()
	}
}
