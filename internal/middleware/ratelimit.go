package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/go-petr/pet-fx/pkg/errorspkg"
	"github.com/go-petr/pet-fx/pkg/web"
)

const limiterPrefix = "fx_limiter"

// ErrTooManyRequests is returned to clients over their request budget.
var ErrTooManyRequests = errors.New("too many requests, try again later")

// NewLimiter builds a per-key limiter from a formatted rate such as "100-M".
//
// Counters live in process memory unless redisURL is set, in which case they
// are shared by every replica pointing at the same redis.
func NewLimiter(formatted, redisURL string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}

	if redisURL == "" {
		return limiter.New(memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: limiterPrefix}), rate), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("rate limit redis url: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{Prefix: limiterPrefix})
	if err != nil {
		return nil, err
	}

	return limiter.New(store, rate), nil
}

// RateLimit rejects requests of a client IP once its budget is spent.
func RateLimit(lim *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := zerolog.Ctx(c.Request.Context())
		ip := c.ClientIP()

		lctx, err := lim.Get(c.Request.Context(), ip)
		if err != nil {
			l.Error().Err(err).Str("ip", ip).Msg("rate limit check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

			return
		}

		if lctx.Reached {
			l.Warn().Str("ip", ip).Int64("limit", lctx.Limit).Msg("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, web.Error(ErrTooManyRequests))

			return
		}

		c.Next()
	}
}
