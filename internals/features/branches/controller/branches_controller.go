package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchms_backend/internals/features/branches/dto"
	"churchms_backend/internals/features/branches/model"
	helper "churchms_backend/internals/helpers"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

// POST /api/branches
func (ctrl *BranchController) CreateBranch(c *fiber.Ctx) error {
	var req dto.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	// FK precheck so a missing pastor is a 404, not a 500
	if err := ctrl.ensurePastorExists(c, req.PastorID); err != nil {
		return err
	}

	branch := req.ToModel()
	if err := ctrl.DB.Create(branch).Error; err != nil {
		log.Printf("[ERROR] create branch: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create branch")
	}
	if err := ctrl.DB.Preload("Pastor").Where("branch_id = ?", branch.BranchID).First(branch).Error; err != nil {
		log.Printf("[ERROR] reload branch: %v", err)
	}
	return helper.JsonCreated(c, "Branch created", dto.ToBranchResponse(branch))
}

// GET /api/branches
func (ctrl *BranchController) GetAllBranches(c *fiber.Ctx) error {
	var branches []model.BranchModel
	if err := ctrl.DB.Preload("Pastor").Find(&branches).Error; err != nil {
		log.Printf("[ERROR] list branches: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load branches")
	}
	return helper.JsonOK(c, "Branches loaded", dto.ToBranchResponseList(branches))
}

// GET /api/branches/:id
func (ctrl *BranchController) GetBranchByID(c *fiber.Ctx) error {
	branch, err := ctrl.findBranch(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Branch found", dto.ToBranchResponse(branch))
}

// PATCH /api/branches/:id
func (ctrl *BranchController) UpdateBranch(c *fiber.Ctx) error {
	branch, err := ctrl.findBranch(c)
	if err != nil {
		return err
	}

	var req dto.BranchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["branch_name"] = *req.Name
	}
	if req.MemberCount != nil {
		updates["branch_member_count"] = *req.MemberCount
	}
	if req.Income != nil {
		updates["branch_income"] = *req.Income
	}
	if req.Expenditure != nil {
		updates["branch_expenditure"] = *req.Expenditure
	}
	if req.Events != nil {
		updates["branch_events"] = *req.Events
	}
	if req.CurrentProject != nil {
		updates["branch_current_project"] = *req.CurrentProject
	}
	if req.Address != nil {
		updates["branch_address"] = *req.Address
	}
	if req.Description != nil {
		updates["branch_description"] = *req.Description
	}
	if req.PastorID != nil {
		if err := ctrl.ensurePastorExists(c, *req.PastorID); err != nil {
			return err
		}
		updates["branch_pastor_id"] = *req.PastorID
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(branch).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update branch: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update branch")
	}
	if err := ctrl.DB.Preload("Pastor").Where("branch_id = ?", branch.BranchID).First(branch).Error; err != nil {
		log.Printf("[ERROR] reload branch: %v", err)
	}
	return helper.JsonUpdated(c, "Branch updated", dto.ToBranchResponse(branch))
}

// DELETE /api/branches/:id
func (ctrl *BranchController) DeleteBranch(c *fiber.Ctx) error {
	branch, err := ctrl.findBranch(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(branch).Error; err != nil {
		log.Printf("[ERROR] delete branch: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete branch")
	}
	return helper.JsonDeleted(c, "Branch deleted", nil)
}

func (ctrl *BranchController) findBranch(c *fiber.Ctx) (*model.BranchModel, error) {
	idStr := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid branch ID")
	}

	var branch model.BranchModel
	if err := ctrl.DB.Preload("Pastor").Where("branch_id = ?", id).First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Branch not found")
		}
		log.Printf("[ERROR] branch lookup: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load branch")
	}
	return &branch, nil
}

func (ctrl *BranchController) ensurePastorExists(c *fiber.Ctx, pastorID uuid.UUID) error {
	var cnt int64
	if err := ctrl.DB.Table("pastors").Where("pastor_id = ?", pastorID).Count(&cnt).Error; err != nil {
		log.Printf("[ERROR] pastor precheck: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check pastor")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pastor not found")
	}
	return nil
}
