package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	MemberModel "churchms_backend/internals/features/members/model"
	"churchms_backend/internals/features/notifications/model"
	UserModel "churchms_backend/internals/features/users/model"
)

var ErrUserNotFound = errors.New("user not found")

type NotificationService struct {
	DB  *gorm.DB
	Hub *Hub
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db, Hub: DefaultHub}
}

type CreateInput struct {
	UserID   uuid.UUID
	Title    string
	Message  string
	Type     string
	Link     *string
	Metadata datatypes.JSON
}

// Create persists the notification and pushes it to the recipient's rooms,
// both the internal-id room and the Clerk-id room when the user has one.
func (s *NotificationService) Create(ctx context.Context, in CreateInput) (*model.NotificationModel, error) {
	n := model.NotificationModel{
		NotificationUserID:   in.UserID,
		NotificationTitle:    in.Title,
		NotificationMessage:  in.Message,
		NotificationType:     in.Type,
		NotificationLink:     in.Link,
		NotificationMetadata: in.Metadata,
	}
	if n.NotificationType == "" {
		n.NotificationType = model.TypeInfo
	}
	if err := s.DB.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, err
	}

	rooms := []string{"user_" + in.UserID.String()}
	var user UserModel.UserModel
	if err := s.DB.WithContext(ctx).
		First(&user, "user_id = ?", in.UserID).Error; err == nil && user.UserClerkID != "" {
		rooms = append(rooms, "user_"+user.UserClerkID)
	}
	s.Hub.Broadcast(rooms, map[string]interface{}{
		"event": "notification",
		"data":  n,
	})

	return &n, nil
}

// ResolveUserID maps an identifier from the URL to the internal user id.
// Clerk ids carry the user_ prefix; anything else must be a uuid.
func (s *NotificationService) ResolveUserID(ctx context.Context, raw string) (uuid.UUID, error) {
	if strings.HasPrefix(raw, "user_") {
		var user UserModel.UserModel
		if err := s.DB.WithContext(ctx).
			First(&user, "user_clerk_id = ?", raw).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, ErrUserNotFound
			}
			return uuid.Nil, err
		}
		return user.UserID, nil
	}
	return uuid.Parse(raw)
}

func (s *NotificationService) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]model.NotificationModel, error) {
	var rows []model.NotificationModel
	err := s.DB.WithContext(ctx).
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(50).
		Find(&rows).Error
	return rows, err
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) (*model.NotificationModel, error) {
	var n model.NotificationModel
	if err := s.DB.WithContext(ctx).First(&n, "notification_id = ?", id).Error; err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	err := s.DB.WithContext(ctx).Model(&n).Updates(map[string]interface{}{
		"notification_is_read": true,
		"notification_read_at": now,
	}).Error
	if err != nil {
		return nil, err
	}
	n.NotificationIsRead = true
	n.NotificationReadAt = &now
	return &n, nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

// CheckBirthdays notifies every active admin and pastor about members whose
// birthday falls on today's UTC date. A member already announced today is
// skipped so repeated runs stay idempotent.
func (s *NotificationService) CheckBirthdays(ctx context.Context) (int, error) {
	today := time.Now().UTC()

	var celebrants []MemberModel.MemberModel
	err := s.DB.WithContext(ctx).
		Where("member_status = ?", MemberModel.MembershipActive).
		Where("member_date_of_birth IS NOT NULL").
		Where("EXTRACT(MONTH FROM member_date_of_birth) = ? AND EXTRACT(DAY FROM member_date_of_birth) = ?",
			int(today.Month()), today.Day()).
		Find(&celebrants).Error
	if err != nil {
		return 0, err
	}
	if len(celebrants) == 0 {
		return 0, nil
	}

	var recipients []UserModel.UserModel
	err = s.DB.WithContext(ctx).
		Where("user_is_active = TRUE AND user_role IN ?", []string{UserModel.RoleAdmin, UserModel.RolePastor}).
		Find(&recipients).Error
	if err != nil {
		return 0, err
	}

	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	created := 0
	for _, m := range celebrants {
		link := "/members/" + m.MemberID.String()
		for _, u := range recipients {
			var dup int64
			err := s.DB.WithContext(ctx).
				Model(&model.NotificationModel{}).
				Where("notification_user_id = ? AND notification_type = ? AND notification_link = ?",
					u.UserID, model.TypeBirthday, link).
				Where("notification_created_at >= ?", dayStart).
				Count(&dup).Error
			if err != nil {
				return created, err
			}
			if dup > 0 {
				continue
			}

			_, err = s.Create(ctx, CreateInput{
				UserID:  u.UserID,
				Title:   "Birthday Alert 🎂",
				Message: fmt.Sprintf("%s %s has a birthday today!", m.MemberFirstName, m.MemberLastName),
				Type:    model.TypeBirthday,
				Link:    &link,
			})
			if err != nil {
				log.Printf("[ERROR] birthday notification for %s: %v", u.UserID, err)
				continue
			}
			created++
		}
	}
	return created, nil
}
