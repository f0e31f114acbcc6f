package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	MemberModel "churchms_backend/internals/features/members/model"
	"churchms_backend/internals/features/tithes/dto"
	"churchms_backend/internals/features/tithes/model"
	helper "churchms_backend/internals/helpers"
)

type TitheController struct {
	DB *gorm.DB
}

func NewTitheController(db *gorm.DB) *TitheController {
	return &TitheController{DB: db}
}

func (ctrl *TitheController) ensureMemberExists(c *fiber.Ctx, memberID uuid.UUID) error {
	var n int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&MemberModel.MemberModel{}).
		Where("member_id = ?", memberID).
		Count(&n).Error; err != nil {
		log.Printf("[ERROR] tithe member check: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify member")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Member not found")
	}
	return nil
}

func (ctrl *TitheController) findTithe(c *fiber.Ctx) (*model.TitheModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid tithe id")
	}

	var t model.TitheModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Member").
		First(&t, "tithe_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tithe record not found")
		}
		log.Printf("[ERROR] find tithe: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tithe record")
	}
	return &t, nil
}

func (ctrl *TitheController) CreateTithe(c *fiber.Ctx) error {
	var req dto.TitheRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}
	if err := ctrl.ensureMemberExists(c, req.MemberID); err != nil {
		return err
	}

	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		t, err := helper.ParseDate(*req.PaymentDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid paymentDate")
		}
		paymentDate = t
	}

	t := model.TitheModel{
		TitheMemberID:      req.MemberID,
		TitheAmount:        req.Amount,
		TithePaymentDate:   paymentDate,
		TithePaymentMethod: model.PaymentMethodCash,
		TithePaymentType:   model.PaymentTypeTithe,
		TitheReference:     req.Reference,
		TitheNotes:         req.Notes,
		TitheRecordedBy:    req.RecordedBy,
	}
	if req.PaymentMethod != nil {
		t.TithePaymentMethod = *req.PaymentMethod
	}
	if req.PaymentType != nil {
		t.TithePaymentType = *req.PaymentType
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&t).Error; err != nil {
		log.Printf("[ERROR] create tithe: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record tithe")
	}

	var fresh model.TitheModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Member").
		First(&fresh, "tithe_id = ?", t.TitheID).Error; err != nil {
		log.Printf("[ERROR] reload tithe: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record tithe")
	}
	return helper.JsonCreated(c, "Tithe recorded", dto.ToTitheResponse(&fresh))
}

func (ctrl *TitheController) GetTithes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.TitheModel{})
	if raw := c.Query("memberId"); raw != "" {
		memberID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid memberId")
		}
		q = q.Where("tithe_member_id = ?", memberID)
	}
	if pt := c.Query("paymentType"); pt != "" {
		q = q.Where("tithe_payment_type = ?", pt)
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := helper.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid startDate")
		}
		q = q.Where("tithe_payment_date >= ?", t)
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := helper.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid endDate")
		}
		q = q.Where("tithe_payment_date <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count tithes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tithes")
	}

	var tithes []model.TitheModel
	if err := q.
		Preload("Member").
		Order("tithe_payment_date DESC").
		Offset(paging.Offset).
		Limit(paging.PerPage).
		Find(&tithes).Error; err != nil {
		log.Printf("[ERROR] list tithes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tithes")
	}

	return helper.JsonList(c, "Tithes fetched",
		dto.ToTitheResponseList(tithes),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *TitheController) GetTitheByID(c *fiber.Ctx) error {
	t, err := ctrl.findTithe(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Tithe fetched", dto.ToTitheResponse(t))
}

func (ctrl *TitheController) UpdateTithe(c *fiber.Ctx) error {
	t, err := ctrl.findTithe(c)
	if err != nil {
		return err
	}

	var req dto.TitheUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Amount != nil {
		updates["tithe_amount"] = *req.Amount
	}
	if req.PaymentDate != nil {
		parsed, err := helper.ParseDate(*req.PaymentDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid paymentDate")
		}
		updates["tithe_payment_date"] = parsed
	}
	if req.PaymentMethod != nil {
		updates["tithe_payment_method"] = *req.PaymentMethod
	}
	if req.PaymentType != nil {
		updates["tithe_payment_type"] = *req.PaymentType
	}
	if req.Reference != nil {
		updates["tithe_reference"] = *req.Reference
	}
	if req.Notes != nil {
		updates["tithe_notes"] = *req.Notes
	}
	if req.RecordedBy != nil {
		updates["tithe_recorded_by"] = *req.RecordedBy
	}

	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).Model(t).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] update tithe: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update tithe")
		}
	}

	var fresh model.TitheModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Member").
		First(&fresh, "tithe_id = ?", t.TitheID).Error; err != nil {
		log.Printf("[ERROR] reload tithe: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update tithe")
	}
	return helper.JsonUpdated(c, "Tithe updated", dto.ToTitheResponse(&fresh))
}

func (ctrl *TitheController) DeleteTithe(c *fiber.Ctx) error {
	t, err := ctrl.findTithe(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(t).Error; err != nil {
		log.Printf("[ERROR] delete tithe: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete tithe")
	}
	return helper.JsonDeleted(c, "Tithe deleted", fiber.Map{"tithe_id": t.TitheID})
}
