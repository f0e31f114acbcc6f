package controller

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchms_backend/internals/features/notifications/dto"
	"churchms_backend/internals/features/notifications/service"
	helper "churchms_backend/internals/helpers"
)

type NotificationController struct {
	Service *service.NotificationService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{Service: service.NewNotificationService(db)}
}

func (ctrl *NotificationController) resolveUserParam(c *fiber.Ctx, param string) (uuid.UUID, error) {
	userID, err := ctrl.Service.ResolveUserID(c.Context(), c.Params(param))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	return userID, nil
}

func (ctrl *NotificationController) GetUserNotifications(c *fiber.Ctx) error {
	userID, err := ctrl.resolveUserParam(c, "userId")
	if err != nil {
		return err
	}

	rows, err := ctrl.Service.FindAllForUser(c.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] list notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return helper.JsonOK(c, "Notifications fetched", dto.ToNotificationResponseList(rows))
}

func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	n, err := ctrl.Service.MarkAsRead(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		log.Printf("[ERROR] mark notification read: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	return helper.JsonUpdated(c, "Notification marked as read", dto.ToNotificationResponse(n))
}

func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := ctrl.resolveUserParam(c, "userId")
	if err != nil {
		return err
	}

	updated, err := ctrl.Service.MarkAllAsRead(c.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] mark all notifications read: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.JsonUpdated(c, "Notifications marked as read", fiber.Map{"updated": updated})
}

// TriggerBirthdayCheck runs the sweep on demand, mirroring what the
// scheduler does at midnight.
func (ctrl *NotificationController) TriggerBirthdayCheck(c *fiber.Ctx) error {
	created, err := ctrl.Service.CheckBirthdays(c.Context())
	if err != nil {
		log.Printf("[ERROR] birthday check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to run birthday check")
	}
	return helper.JsonOK(c, "Birthday check completed", fiber.Map{"created": created})
}

type wsClientMessage struct {
	Event  string `json:"event"`
	UserID string `json:"userId"`
}

// WebSocketHandler keeps the connection in the hub until the client goes
// away. Clients announce themselves with a joinUserRoom message.
func WebSocketHandler(conn *websocket.Conn) {
	hub := service.DefaultHub
	defer func() {
		hub.Leave(conn)
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg wsClientMessage
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Event == "joinUserRoom" && msg.UserID != "" {
			hub.Join("user_"+msg.UserID, conn)
			// the ack goes through the hub so it cannot interleave with a push
			if err := hub.Send(conn, map[string]interface{}{
				"event": "joinedUserRoom",
				"room":  "user_" + msg.UserID,
			}); err != nil {
				return
			}
		}
	}
}
