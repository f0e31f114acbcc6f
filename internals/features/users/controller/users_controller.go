package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchms_backend/internals/features/users/dto"
	"churchms_backend/internals/features/users/model"
	"churchms_backend/internals/features/users/service"
	helper "churchms_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// POST /api/users/sync
func (ctrl *UserController) SyncUser(c *fiber.Ctx) error {
	var req dto.SyncUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	data := &service.WebhookUserData{
		ID:        req.ClerkID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	data.EmailAddresses = append(data.EmailAddresses, struct {
		EmailAddress string `json:"email_address"`
	}{EmailAddress: req.Email})

	if err := service.UpsertByClerkID(ctrl.DB, data); err != nil {
		log.Printf("[ERROR] user sync: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sync user")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_clerk_id = ?", req.ClerkID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found after sync")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.JsonOK(c, "User synced", dto.ToUserResponse(&user))
}
