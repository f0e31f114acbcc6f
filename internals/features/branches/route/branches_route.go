package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/branches/controller"
)

func BranchRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBranchController(db)
	branches := api.Group("/branches")
	branches.Post("/", ctrl.CreateBranch)
	branches.Get("/", ctrl.GetAllBranches)
	branches.Get("/:id", ctrl.GetBranchByID)
	branches.Patch("/:id", ctrl.UpdateBranch)
	branches.Delete("/:id", ctrl.DeleteBranch)
}
