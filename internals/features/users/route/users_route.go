package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/users/controller"
	"churchms_backend/internals/middlewares"
	authmw "churchms_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	authCtrl := controller.NewAuthController(db)

	users := api.Group("/users")
	users.Post("/sync", authmw.ClerkAuthMiddleware(), userCtrl.SyncUser)

	auth := api.Group("/auth")
	auth.Get("/profile", authmw.ClerkAuthMiddleware(), authCtrl.GetProfile)
	// webhook is public: authenticated by its signature, not a bearer token
	auth.Post("/webhook/clerk", middlewares.WebhookRateLimiter(), authCtrl.HandleClerkWebhook)
}
