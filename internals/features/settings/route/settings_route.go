package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/settings/controller"
)

func SettingsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingsController(db)

	settings := api.Group("/settings")
	settings.Get("/", ctrl.GetSettings)
	settings.Patch("/", ctrl.UpdateSettings)
}
