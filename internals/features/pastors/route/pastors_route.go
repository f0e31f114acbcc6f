package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/pastors/controller"
)

func PastorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPastorController(db)
	pastors := api.Group("/pastors")
	pastors.Post("/", ctrl.CreatePastor)
	pastors.Get("/", ctrl.GetAllPastors)
	pastors.Get("/:id", ctrl.GetPastorByID)
	pastors.Patch("/:id", ctrl.UpdatePastor)
	pastors.Delete("/:id", ctrl.DeletePastor)
}
