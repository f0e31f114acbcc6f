package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"churchms_backend/internals/features/users/model"
)

// Event kinds the identity provider delivers. The dispatch below is a
// closed match over these; anything else is logged and dropped.
type EventKind string

const (
	EventUserCreated EventKind = "user.created"
	EventUserUpdated EventKind = "user.updated"
	EventUserDeleted EventKind = "user.deleted"
)

type WebhookEvent struct {
	Type EventKind       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WebhookUserData is the subset of the provider's user object we keep.
type WebhookUserData struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

func (d *WebhookUserData) PrimaryEmail() (string, error) {
	if len(d.EmailAddresses) == 0 || d.EmailAddresses[0].EmailAddress == "" {
		return "", errors.New("no email found in user data")
	}
	return d.EmailAddresses[0].EmailAddress, nil
}

// HandleEvent dispatches one verified webhook event.
func HandleEvent(db *gorm.DB, evt *WebhookEvent) error {
	switch evt.Type {
	case EventUserCreated:
		data, err := decodeUserData(evt.Data)
		if err != nil {
			return err
		}
		return UpsertByClerkID(db, data)

	case EventUserUpdated:
		data, err := decodeUserData(evt.Data)
		if err != nil {
			return err
		}
		return updateByClerkID(db, data)

	case EventUserDeleted:
		data, err := decodeUserData(evt.Data)
		if err != nil {
			return err
		}
		return DeactivateByClerkID(db, data.ID)

	default:
		log.Printf("[WARN] unhandled webhook event type: %s", evt.Type)
		return nil
	}
}

func decodeUserData(raw json.RawMessage) (*WebhookUserData, error) {
	var data WebhookUserData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode webhook user data: %w", err)
	}
	if data.ID == "" {
		return nil, errors.New("webhook user data has no id")
	}
	return &data, nil
}

// UpsertByClerkID creates the account on first sight and refreshes it
// afterwards. New accounts default to the ADMIN role.
func UpsertByClerkID(db *gorm.DB, data *WebhookUserData) error {
	email, err := data.PrimaryEmail()
	if err != nil {
		return err
	}

	var existing model.UserModel
	err = db.Where("user_clerk_id = ?", data.ID).First(&existing).Error
	switch {
	case err == nil:
		return db.Model(&existing).Updates(map[string]interface{}{
			"user_email":      email,
			"user_first_name": data.FirstName,
			"user_last_name":  data.LastName,
			"user_is_active":  true,
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(&model.UserModel{
			UserClerkID:   data.ID,
			UserEmail:     email,
			UserFirstName: data.FirstName,
			UserLastName:  data.LastName,
			UserRole:      model.RoleAdmin,
			UserIsActive:  true,
		}).Error
	default:
		return err
	}
}

func updateByClerkID(db *gorm.DB, data *WebhookUserData) error {
	email, err := data.PrimaryEmail()
	if err != nil {
		return err
	}
	return db.Model(&model.UserModel{}).
		Where("user_clerk_id = ?", data.ID).
		Updates(map[string]interface{}{
			"user_email":      email,
			"user_first_name": data.FirstName,
			"user_last_name":  data.LastName,
		}).Error
}

// DeactivateByClerkID flips the account inactive; the row stays.
func DeactivateByClerkID(db *gorm.DB, clerkID string) error {
	return db.Model(&model.UserModel{}).
		Where("user_clerk_id = ?", clerkID).
		Update("user_is_active", false).Error
}
