package dto

import (
	"time"

	"github.com/google/uuid"

	"churchms_backend/internals/features/users/model"
)

// Request for POST /api/users/sync (frontend pushes its session user)
type SyncUserRequest struct {
	ClerkID   string `json:"clerkId"   validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName"  validate:"omitempty,max=100"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserClerkID   string    `json:"user_clerk_id"`
	UserEmail     string    `json:"user_email"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID,
		UserClerkID:   m.UserClerkID,
		UserEmail:     m.UserEmail,
		UserFirstName: m.UserFirstName,
		UserLastName:  m.UserLastName,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
