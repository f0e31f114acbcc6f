package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"churchms_backend/internals/configs"
)

// CorsMiddleware builds the CORS policy. Extra origins come from
// CORS_EXTRA_ORIGINS (comma separated) so deployments can add their
// frontend without a rebuild.
func CorsMiddleware() fiber.Handler {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if extra := configs.GetEnv("CORS_EXTRA_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, svix-id, svix-timestamp, svix-signature",
		AllowCredentials: true,
	})
}
