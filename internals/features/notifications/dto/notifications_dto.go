package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"churchms_backend/internals/features/notifications/model"
)

type NotificationResponse struct {
	NotificationID uuid.UUID      `json:"notification_id"`
	UserID         uuid.UUID      `json:"user_id"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Type           string         `json:"type"`
	Link           *string        `json:"link,omitempty"`
	Metadata       datatypes.JSON `json:"metadata,omitempty"`
	IsRead         bool           `json:"is_read"`
	ReadAt         *time.Time     `json:"read_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func ToNotificationResponse(n *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID: n.NotificationID,
		UserID:         n.NotificationUserID,
		Title:          n.NotificationTitle,
		Message:        n.NotificationMessage,
		Type:           n.NotificationType,
		Link:           n.NotificationLink,
		Metadata:       n.NotificationMetadata,
		IsRead:         n.NotificationIsRead,
		ReadAt:         n.NotificationReadAt,
		CreatedAt:      n.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToNotificationResponse(&models[i]))
	}
	return out
}
