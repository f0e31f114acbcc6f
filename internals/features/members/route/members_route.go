package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/members/controller"
)

func MemberRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	members := api.Group("/members")
	members.Post("/", ctrl.CreateMember)
	members.Get("/", ctrl.GetMembers)
	members.Get("/count", ctrl.GetMemberCount)
	members.Get("/:id", ctrl.GetMember)
	members.Patch("/:id", ctrl.UpdateMember)
	members.Delete("/:id", ctrl.DeleteMember)
}
