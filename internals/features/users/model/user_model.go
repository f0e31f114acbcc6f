package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "ADMIN"
	RolePastor = "PASTOR"
)

// UserModel mirrors the accounts provisioned by the identity provider.
// Rows are never hard-deleted: a provider-side delete only flips
// user_is_active so references (notifications, audit fields) stay intact.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserClerkID   string    `gorm:"column:user_clerk_id;type:varchar(64);not null;uniqueIndex:ux_users_clerk_id" json:"user_clerk_id"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null"                  json:"user_email"`
	UserFirstName string    `gorm:"column:user_first_name;type:varchar(100);not null;default:''"  json:"user_first_name"`
	UserLastName  string    `gorm:"column:user_last_name;type:varchar(100);not null;default:''"   json:"user_last_name"`
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null;default:'ADMIN'"    json:"user_role"`
	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true"                   json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
