package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/events/controller"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events")
	events.Post("/", ctrl.CreateEvent)
	events.Get("/", ctrl.GetEvents)
	events.Get("/upcoming", ctrl.GetUpcomingEvents)
	events.Get("/:id", ctrl.GetEventByID)
	events.Patch("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
}
