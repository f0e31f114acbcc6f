package dto

import (
	"time"

	"churchms_backend/internals/features/settings/model"
)

type SettingsUpdateRequest struct {
	ChurchName         *string `json:"churchName"         validate:"omitempty,max=255"`
	PastorName         *string `json:"pastorName"         validate:"omitempty,max=255"`
	Email              *string `json:"email"              validate:"omitempty,email"`
	Phone              *string `json:"phone"              validate:"omitempty,max=32"`
	Address            *string `json:"address"            validate:"omitempty,max=255"`
	EmailNotifications *bool   `json:"emailNotifications"`
	MaintenanceMode    *bool   `json:"maintenanceMode"`
	Timezone           *string `json:"timezone"           validate:"omitempty,max=64"`
	Currency           *string `json:"currency"           validate:"omitempty,max=8"`
	DateFormat         *string `json:"dateFormat"         validate:"omitempty,max=20"`
	TimeFormat         *string `json:"timeFormat"         validate:"omitempty,oneof=12h 24h"`
}

type SettingsResponse struct {
	ChurchName         string    `json:"church_name"`
	PastorName         *string   `json:"pastor_name,omitempty"`
	Email              *string   `json:"email,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	Address            *string   `json:"address,omitempty"`
	EmailNotifications bool      `json:"email_notifications"`
	MaintenanceMode    bool      `json:"maintenance_mode"`
	Timezone           string    `json:"timezone"`
	Currency           string    `json:"currency"`
	DateFormat         string    `json:"date_format"`
	TimeFormat         string    `json:"time_format"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToSettingsResponse(s *model.ChurchSettingsModel) *SettingsResponse {
	return &SettingsResponse{
		ChurchName:         s.SettingsChurchName,
		PastorName:         s.SettingsPastorName,
		Email:              s.SettingsEmail,
		Phone:              s.SettingsPhone,
		Address:            s.SettingsAddress,
		EmailNotifications: s.SettingsEmailNotifications,
		MaintenanceMode:    s.SettingsMaintenanceMode,
		Timezone:           s.SettingsTimezone,
		Currency:           s.SettingsCurrency,
		DateFormat:         s.SettingsDateFormat,
		TimeFormat:         s.SettingsTimeFormat,
		UpdatedAt:          s.SettingsUpdatedAt,
	}
}
