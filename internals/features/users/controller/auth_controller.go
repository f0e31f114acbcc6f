package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"
	"gorm.io/gorm"

	"churchms_backend/internals/configs"
	"churchms_backend/internals/features/users/dto"
	"churchms_backend/internals/features/users/model"
	"churchms_backend/internals/features/users/service"
	helper "churchms_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// GET /api/auth/profile
// The auth middleware already verified the token and stored the subject.
// The subject is the provider-side id, so look up by clerk id first and
// fall back to the internal uuid for older tokens.
func (ctrl *AuthController) GetProfile(c *fiber.Ctx) error {
	sub, _ := c.Locals("user_id").(string)
	if sub == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing subject")
	}

	var user model.UserModel
	err := ctrl.DB.Where("user_clerk_id = ?", sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ctrl.DB.Where("user_id = ?", sub).First(&user).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] profile lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}
	return helper.JsonOK(c, "Profile loaded", dto.ToUserResponse(&user))
}

// POST /api/auth/webhook/clerk
// Signature scheme: HMAC over "<id>.<timestamp>.<payload>" carried in the
// three svix headers. Verification happens before the body is trusted.
func (ctrl *AuthController) HandleClerkWebhook(c *fiber.Ctx) error {
	secret := configs.ClerkWebhookSecret
	if secret == "" {
		log.Println("[ERROR] CLERK_WEBHOOK_SECRET not configured")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Webhook is not configured")
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		log.Printf("[ERROR] webhook init: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Webhook is not configured")
	}

	headers := http.Header{}
	headers.Set("svix-id", c.Get("svix-id"))
	headers.Set("svix-timestamp", c.Get("svix-timestamp"))
	headers.Set("svix-signature", c.Get("svix-signature"))

	payload := c.Body()
	if err := wh.Verify(payload, headers); err != nil {
		log.Printf("[WARN] webhook signature rejected: %v", err)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid webhook signature")
	}

	var evt service.WebhookEvent
	if err := c.BodyParser(&evt); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	if err := service.HandleEvent(ctrl.DB, &evt); err != nil {
		log.Printf("[ERROR] webhook %s: %v", evt.Type, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error processing webhook")
	}

	return helper.JsonOK(c, "Webhook processed", fiber.Map{"success": true})
}
