package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	PatternDaily   = "DAILY"
	PatternWeekly  = "WEEKLY"
	PatternMonthly = "MONTHLY"
	PatternYearly  = "YEARLY"
)

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// Soft deletion is a plain flag rather than a deleted_at column: lists filter
// on event_is_active but a direct fetch by id still returns the row.
type EventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`

	EventTitle       string  `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription *string `gorm:"column:event_description;type:text"            json:"event_description,omitempty"`
	EventLocation    *string `gorm:"column:event_location;type:varchar(255)"       json:"event_location,omitempty"`

	EventStartTime time.Time `gorm:"column:event_start_time;type:timestamptz;not null;index:idx_events_start_time" json:"event_start_time"`
	EventEndTime   time.Time `gorm:"column:event_end_time;type:timestamptz;not null" json:"event_end_time"`

	EventType             *string `gorm:"column:event_type;type:varchar(50)" json:"event_type,omitempty"`
	EventIsRecurring      bool    `gorm:"column:event_is_recurring;not null;default:false" json:"event_is_recurring"`
	EventRecurringPattern *string `gorm:"column:event_recurring_pattern;type:varchar(12)"  json:"event_recurring_pattern,omitempty"`

	EventMaxAttendees         *int   `gorm:"column:event_max_attendees" json:"event_max_attendees,omitempty"`
	EventRegistrationRequired bool   `gorm:"column:event_registration_required;not null;default:false" json:"event_registration_required"`
	EventStatus               string `gorm:"column:event_status;type:varchar(12);not null;default:'PUBLISHED'" json:"event_status"`
	EventIsActive             bool   `gorm:"column:event_is_active;not null;default:true;index:idx_events_is_active" json:"event_is_active"`

	EventImageURL  *string        `gorm:"column:event_image_url;type:text" json:"event_image_url,omitempty"`
	EventImageURLs pq.StringArray `gorm:"column:event_image_urls;type:text[]" json:"event_image_urls,omitempty"`

	EventGroupID *string `gorm:"column:event_group_id;type:varchar(100)" json:"event_group_id,omitempty"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
