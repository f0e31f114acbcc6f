package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"churchms_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware chain. Order matters:
// recovery first, then CORS, logging, rate limit, and last the response
// cache pair (invalidator sees writes before the cache serves reads).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(CacheInvalidator())
	app.Use(ResponseCache())
}
