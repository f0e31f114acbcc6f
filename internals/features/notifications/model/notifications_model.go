package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TypeInfo     = "INFO"
	TypeBirthday = "BIRTHDAY"
	TypeEvent    = "EVENT"
	TypeSystem   = "SYSTEM"
)

type NotificationModel struct {
	NotificationID     uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationUserID uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index:idx_notifications_user_id" json:"notification_user_id"`

	NotificationTitle   string `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage string `gorm:"column:notification_message;type:text;not null"       json:"notification_message"`
	NotificationType    string `gorm:"column:notification_type;type:varchar(20);not null;default:'INFO'" json:"notification_type"`

	NotificationLink     *string        `gorm:"column:notification_link;type:varchar(255)" json:"notification_link,omitempty"`
	NotificationMetadata datatypes.JSON `gorm:"column:notification_metadata;type:jsonb"    json:"notification_metadata,omitempty"`

	NotificationIsRead bool       `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at;type:timestamptz"       json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;type:timestamptz;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
