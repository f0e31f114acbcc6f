package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Post("/", ctrl.MarkAttendance)
	attendance.Get("/", ctrl.GetAttendance)
	attendance.Get("/stats", ctrl.GetStats)
	attendance.Get("/:id", ctrl.GetAttendanceByID)
	attendance.Patch("/:id", ctrl.UpdateAttendance)
	attendance.Delete("/:id", ctrl.DeleteAttendance)
}
