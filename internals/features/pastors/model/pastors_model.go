package model

import (
	"time"

	"github.com/google/uuid"
)

type PastorModel struct {
	PastorID             uuid.UUID `gorm:"column:pastor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pastor_id"`
	PastorName           string    `gorm:"column:pastor_name;type:varchar(255);not null"                   json:"pastor_name"`
	PastorDateAppointed  time.Time `gorm:"column:pastor_date_appointed;type:timestamptz;not null"          json:"pastor_date_appointed"`
	PastorCurrentStation string    `gorm:"column:pastor_current_station;type:varchar(255);not null"        json:"pastor_current_station"`

	PastorCreatedAt time.Time `gorm:"column:pastor_created_at;type:timestamptz;autoCreateTime" json:"pastor_created_at"`
	PastorUpdatedAt time.Time `gorm:"column:pastor_updated_at;type:timestamptz;autoUpdateTime" json:"pastor_updated_at"`
}

func (PastorModel) TableName() string {
	return "pastors"
}
