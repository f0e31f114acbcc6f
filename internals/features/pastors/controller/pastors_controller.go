package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchms_backend/internals/features/pastors/dto"
	"churchms_backend/internals/features/pastors/model"
	helper "churchms_backend/internals/helpers"
)

type PastorController struct {
	DB *gorm.DB
}

func NewPastorController(db *gorm.DB) *PastorController {
	return &PastorController{DB: db}
}

// POST /api/pastors
func (ctrl *PastorController) CreatePastor(c *fiber.Ctx) error {
	var req dto.PastorRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	appointed, err := helper.ParseDate(req.DateAppointed)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	pastor := model.PastorModel{
		PastorName:           req.Name,
		PastorDateAppointed:  appointed,
		PastorCurrentStation: req.CurrentStation,
	}
	if err := ctrl.DB.Create(&pastor).Error; err != nil {
		log.Printf("[ERROR] create pastor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create pastor")
	}
	return helper.JsonCreated(c, "Pastor created", dto.ToPastorResponse(&pastor))
}

// GET /api/pastors (ordered by name)
func (ctrl *PastorController) GetAllPastors(c *fiber.Ctx) error {
	var pastors []model.PastorModel
	if err := ctrl.DB.Order("pastor_name ASC").Find(&pastors).Error; err != nil {
		log.Printf("[ERROR] list pastors: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pastors")
	}
	return helper.JsonOK(c, "Pastors loaded", dto.ToPastorResponseList(pastors))
}

// GET /api/pastors/:id
func (ctrl *PastorController) GetPastorByID(c *fiber.Ctx) error {
	pastor, err := ctrl.findPastor(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Pastor found", dto.ToPastorResponse(pastor))
}

// PATCH /api/pastors/:id
func (ctrl *PastorController) UpdatePastor(c *fiber.Ctx) error {
	pastor, err := ctrl.findPastor(c)
	if err != nil {
		return err
	}

	var req dto.PastorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["pastor_name"] = *req.Name
	}
	if req.DateAppointed != nil {
		appointed, err := helper.ParseDate(*req.DateAppointed)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["pastor_date_appointed"] = appointed
	}
	if req.CurrentStation != nil {
		updates["pastor_current_station"] = *req.CurrentStation
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(pastor).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update pastor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update pastor")
	}
	return helper.JsonUpdated(c, "Pastor updated", dto.ToPastorResponse(pastor))
}

// DELETE /api/pastors/:id
func (ctrl *PastorController) DeletePastor(c *fiber.Ctx) error {
	pastor, err := ctrl.findPastor(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(pastor).Error; err != nil {
		log.Printf("[ERROR] delete pastor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete pastor")
	}
	return helper.JsonDeleted(c, "Pastor deleted", nil)
}

func (ctrl *PastorController) findPastor(c *fiber.Ctx) (*model.PastorModel, error) {
	idStr := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid pastor ID")
	}

	var pastor model.PastorModel
	if err := ctrl.DB.Where("pastor_id = ?", id).First(&pastor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pastor not found")
		}
		log.Printf("[ERROR] pastor lookup: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load pastor")
	}
	return &pastor, nil
}
