package dto

import (
	"time"

	"github.com/google/uuid"

	"churchms_backend/internals/features/pastors/model"
)

type PastorRequest struct {
	Name           string `json:"name"           validate:"required,max=255"`
	DateAppointed  string `json:"dateAppointed"  validate:"required"`
	CurrentStation string `json:"currentStation" validate:"required,max=255"`
}

type PastorUpdateRequest struct {
	Name           *string `json:"name"           validate:"omitempty,max=255"`
	DateAppointed  *string `json:"dateAppointed"  validate:"omitempty"`
	CurrentStation *string `json:"currentStation" validate:"omitempty,max=255"`
}

type PastorResponse struct {
	PastorID             uuid.UUID `json:"pastor_id"`
	PastorName           string    `json:"pastor_name"`
	PastorDateAppointed  time.Time `json:"pastor_date_appointed"`
	PastorCurrentStation string    `json:"pastor_current_station"`
	PastorCreatedAt      time.Time `json:"pastor_created_at"`
	PastorUpdatedAt      time.Time `json:"pastor_updated_at"`
}

func ToPastorResponse(m *model.PastorModel) *PastorResponse {
	return &PastorResponse{
		PastorID:             m.PastorID,
		PastorName:           m.PastorName,
		PastorDateAppointed:  m.PastorDateAppointed,
		PastorCurrentStation: m.PastorCurrentStation,
		PastorCreatedAt:      m.PastorCreatedAt,
		PastorUpdatedAt:      m.PastorUpdatedAt,
	}
}

func ToPastorResponseList(models []model.PastorModel) []PastorResponse {
	out := make([]PastorResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToPastorResponse(&models[i]))
	}
	return out
}
