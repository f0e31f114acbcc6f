package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/tithes/controller"
)

func TitheRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTitheController(db)

	tithes := api.Group("/tithes")
	tithes.Post("/", ctrl.CreateTithe)
	tithes.Get("/", ctrl.GetTithes)
	tithes.Get("/:id", ctrl.GetTitheByID)
	tithes.Patch("/:id", ctrl.UpdateTithe)
	tithes.Delete("/:id", ctrl.DeleteTithe)
}
