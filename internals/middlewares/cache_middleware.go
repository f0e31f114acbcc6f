package middlewares

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
)

// The response cache is invalidated wholesale on any write: every cached
// key embeds a generation counter and mutating requests bump it, so stale
// entries simply age out unreferenced. Coarse, but never serves stale data.
var cacheGeneration atomic.Uint64

func BumpCacheGeneration() {
	cacheGeneration.Add(1)
}

// ResponseCache caches GET responses for a short TTL.
func ResponseCache() fiber.Handler {
	return cache.New(cache.Config{
		Expiration:   60 * time.Second,
		CacheControl: false,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodGet
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return strconv.FormatUint(cacheGeneration.Load(), 10) + ":" + c.OriginalURL()
		},
	})
}

// CacheInvalidator bumps the generation after any successful non-GET request.
func CacheInvalidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if c.Method() != fiber.MethodGet && c.Response().StatusCode() < 400 {
			BumpCacheGeneration()
		}
		return err
	}
}
