package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/settings/dto"
	"churchms_backend/internals/features/settings/model"
	helper "churchms_backend/internals/helpers"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// fetchOrCreate loads the singleton row, creating a defaulted one when the
// table is empty. The row id is never cached so a truncated table heals on
// the next request.
func (ctrl *SettingsController) fetchOrCreate(c *fiber.Ctx) (*model.ChurchSettingsModel, error) {
	db := ctrl.DB.WithContext(c.Context())

	var s model.ChurchSettingsModel
	err := db.Order("settings_created_at ASC").First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	s = model.ChurchSettingsModel{
		SettingsChurchName: "My Church",
		SettingsTimezone:   "UTC",
		SettingsCurrency:   "USD",
		SettingsDateFormat: "MM/DD/YYYY",
		SettingsTimeFormat: "12h",
		SettingsEmailNotifications: true,
	}
	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	s, err := ctrl.fetchOrCreate(c)
	if err != nil {
		log.Printf("[ERROR] fetch settings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch settings")
	}
	return helper.JsonOK(c, "Settings fetched", dto.ToSettingsResponse(s))
}

func (ctrl *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var req dto.SettingsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	s, err := ctrl.fetchOrCreate(c)
	if err != nil {
		log.Printf("[ERROR] fetch settings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update settings")
	}

	updates := map[string]interface{}{}
	if req.ChurchName != nil {
		updates["settings_church_name"] = *req.ChurchName
	}
	if req.PastorName != nil {
		updates["settings_pastor_name"] = *req.PastorName
	}
	if req.Email != nil {
		updates["settings_email"] = *req.Email
	}
	if req.Phone != nil {
		updates["settings_phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["settings_address"] = *req.Address
	}
	if req.EmailNotifications != nil {
		updates["settings_email_notifications"] = *req.EmailNotifications
	}
	if req.MaintenanceMode != nil {
		updates["settings_maintenance_mode"] = *req.MaintenanceMode
	}
	if req.Timezone != nil {
		updates["settings_timezone"] = *req.Timezone
	}
	if req.Currency != nil {
		updates["settings_currency"] = *req.Currency
	}
	if req.DateFormat != nil {
		updates["settings_date_format"] = *req.DateFormat
	}
	if req.TimeFormat != nil {
		updates["settings_time_format"] = *req.TimeFormat
	}

	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).Model(s).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] update settings: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update settings")
		}
	}

	var fresh model.ChurchSettingsModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&fresh, "settings_id = ?", s.SettingsID).Error; err != nil {
		log.Printf("[ERROR] reload settings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update settings")
	}
	return helper.JsonUpdated(c, "Settings updated", dto.ToSettingsResponse(&fresh))
}
