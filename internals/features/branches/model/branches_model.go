package model

import (
	"time"

	"github.com/google/uuid"

	PastorModel "churchms_backend/internals/features/pastors/model"
)

type BranchModel struct {
	BranchID             uuid.UUID `gorm:"column:branch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"branch_id"`
	BranchName           string    `gorm:"column:branch_name;type:varchar(255);not null"                   json:"branch_name"`
	BranchMemberCount    int       `gorm:"column:branch_member_count;not null;default:0"                   json:"branch_member_count"`
	BranchIncome         float64   `gorm:"column:branch_income;type:numeric(14,2);not null;default:0"      json:"branch_income"`
	BranchExpenditure    float64   `gorm:"column:branch_expenditure;type:numeric(14,2);not null;default:0" json:"branch_expenditure"`
	BranchEvents         string    `gorm:"column:branch_events;type:text;not null;default:''"              json:"branch_events"`
	BranchCurrentProject string    `gorm:"column:branch_current_project;type:text;not null;default:''"     json:"branch_current_project"`
	BranchAddress        string    `gorm:"column:branch_address;type:varchar(255);not null"                json:"branch_address"`
	BranchDescription    string    `gorm:"column:branch_description;type:text;not null;default:''"         json:"branch_description"`
	BranchPastorID       uuid.UUID `gorm:"column:branch_pastor_id;type:uuid;not null;index:idx_branches_pastor_id" json:"branch_pastor_id"`

	Pastor *PastorModel.PastorModel `gorm:"foreignKey:BranchPastorID;references:PastorID" json:"pastor,omitempty"`

	BranchCreatedAt time.Time `gorm:"column:branch_created_at;type:timestamptz;autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt time.Time `gorm:"column:branch_updated_at;type:timestamptz;autoUpdateTime" json:"branch_updated_at"`
}

func (BranchModel) TableName() string {
	return "branches"
}
