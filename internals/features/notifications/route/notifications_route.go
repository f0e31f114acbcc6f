package route

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifications := api.Group("/notifications")
	notifications.Get("/:userId", ctrl.GetUserNotifications)
	notifications.Patch("/:id/read", ctrl.MarkAsRead)
	notifications.Patch("/user/:userId/read-all", ctrl.MarkAllAsRead)
	notifications.Post("/trigger-birthdays", ctrl.TriggerBirthdayCheck)
}

// WebSocketRoutes hangs off the app root, outside /api, because the HTTP
// middleware chain does not apply to upgraded connections.
func WebSocketRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/notifications", websocket.New(controller.WebSocketHandler))
}
