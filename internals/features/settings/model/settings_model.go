package model

import (
	"time"

	"github.com/google/uuid"
)

// A single row holds the whole church profile. Readers fetch the first row
// and create a default one when the table is empty.
type ChurchSettingsModel struct {
	SettingsID uuid.UUID `gorm:"column:settings_id;type:uuid;default:gen_random_uuid();primaryKey" json:"settings_id"`

	SettingsChurchName string  `gorm:"column:settings_church_name;type:varchar(255);not null;default:'My Church'" json:"settings_church_name"`
	SettingsPastorName *string `gorm:"column:settings_pastor_name;type:varchar(255)" json:"settings_pastor_name,omitempty"`
	SettingsEmail      *string `gorm:"column:settings_email;type:varchar(255)"       json:"settings_email,omitempty"`
	SettingsPhone      *string `gorm:"column:settings_phone;type:varchar(32)"        json:"settings_phone,omitempty"`
	SettingsAddress    *string `gorm:"column:settings_address;type:varchar(255)"     json:"settings_address,omitempty"`

	SettingsEmailNotifications bool `gorm:"column:settings_email_notifications;not null;default:true"  json:"settings_email_notifications"`
	SettingsMaintenanceMode    bool `gorm:"column:settings_maintenance_mode;not null;default:false"    json:"settings_maintenance_mode"`

	SettingsTimezone   string `gorm:"column:settings_timezone;type:varchar(64);not null;default:'UTC'"        json:"settings_timezone"`
	SettingsCurrency   string `gorm:"column:settings_currency;type:varchar(8);not null;default:'USD'"         json:"settings_currency"`
	SettingsDateFormat string `gorm:"column:settings_date_format;type:varchar(20);not null;default:'MM/DD/YYYY'" json:"settings_date_format"`
	SettingsTimeFormat string `gorm:"column:settings_time_format;type:varchar(8);not null;default:'12h'"      json:"settings_time_format"`

	SettingsCreatedAt time.Time `gorm:"column:settings_created_at;type:timestamptz;autoCreateTime" json:"settings_created_at"`
	SettingsUpdatedAt time.Time `gorm:"column:settings_updated_at;type:timestamptz;autoUpdateTime" json:"settings_updated_at"`
}

func (ChurchSettingsModel) TableName() string {
	return "church_settings"
}
