package dto

import (
	"time"

	"github.com/google/uuid"

	"churchms_backend/internals/features/branches/model"
	pastordto "churchms_backend/internals/features/pastors/dto"
)

type BranchRequest struct {
	Name           string    `json:"name"           validate:"required,max=255"`
	MemberCount    int       `json:"memberCount"    validate:"min=0"`
	Income         float64   `json:"income"         validate:"min=0"`
	Expenditure    float64   `json:"expenditure"    validate:"min=0"`
	Events         string    `json:"events"`
	CurrentProject string    `json:"currentProject"`
	Address        string    `json:"address"        validate:"required,max=255"`
	Description    string    `json:"description"`
	PastorID       uuid.UUID `json:"pastorId"       validate:"required"`
}

type BranchUpdateRequest struct {
	Name           *string    `json:"name"           validate:"omitempty,max=255"`
	MemberCount    *int       `json:"memberCount"    validate:"omitempty,min=0"`
	Income         *float64   `json:"income"         validate:"omitempty,min=0"`
	Expenditure    *float64   `json:"expenditure"    validate:"omitempty,min=0"`
	Events         *string    `json:"events"`
	CurrentProject *string    `json:"currentProject"`
	Address        *string    `json:"address"        validate:"omitempty,max=255"`
	Description    *string    `json:"description"`
	PastorID       *uuid.UUID `json:"pastorId"`
}

type BranchResponse struct {
	BranchID             uuid.UUID                 `json:"branch_id"`
	BranchName           string                    `json:"branch_name"`
	BranchMemberCount    int                       `json:"branch_member_count"`
	BranchIncome         float64                   `json:"branch_income"`
	BranchExpenditure    float64                   `json:"branch_expenditure"`
	BranchEvents         string                    `json:"branch_events"`
	BranchCurrentProject string                    `json:"branch_current_project"`
	BranchAddress        string                    `json:"branch_address"`
	BranchDescription    string                    `json:"branch_description"`
	BranchPastorID       uuid.UUID                 `json:"branch_pastor_id"`
	Pastor               *pastordto.PastorResponse `json:"pastor,omitempty"`
	BranchCreatedAt      time.Time                 `json:"branch_created_at"`
	BranchUpdatedAt      time.Time                 `json:"branch_updated_at"`
}

func (r *BranchRequest) ToModel() *model.BranchModel {
	return &model.BranchModel{
		BranchName:           r.Name,
		BranchMemberCount:    r.MemberCount,
		BranchIncome:         r.Income,
		BranchExpenditure:    r.Expenditure,
		BranchEvents:         r.Events,
		BranchCurrentProject: r.CurrentProject,
		BranchAddress:        r.Address,
		BranchDescription:    r.Description,
		BranchPastorID:       r.PastorID,
	}
}

func ToBranchResponse(m *model.BranchModel) *BranchResponse {
	resp := &BranchResponse{
		BranchID:             m.BranchID,
		BranchName:           m.BranchName,
		BranchMemberCount:    m.BranchMemberCount,
		BranchIncome:         m.BranchIncome,
		BranchExpenditure:    m.BranchExpenditure,
		BranchEvents:         m.BranchEvents,
		BranchCurrentProject: m.BranchCurrentProject,
		BranchAddress:        m.BranchAddress,
		BranchDescription:    m.BranchDescription,
		BranchPastorID:       m.BranchPastorID,
		BranchCreatedAt:      m.BranchCreatedAt,
		BranchUpdatedAt:      m.BranchUpdatedAt,
	}
	if m.Pastor != nil {
		resp.Pastor = pastordto.ToPastorResponse(m.Pastor)
	}
	return resp
}

func ToBranchResponseList(models []model.BranchModel) []BranchResponse {
	out := make([]BranchResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToBranchResponse(&models[i]))
	}
	return out
}
