package dto

import (
	"time"

	"github.com/google/uuid"

	"churchms_backend/internals/features/tithes/model"
)

type TitheRequest struct {
	MemberID      uuid.UUID `json:"memberId"      validate:"required"`
	Amount        float64   `json:"amount"        validate:"required,gt=0"`
	PaymentDate   *string   `json:"paymentDate"`
	PaymentMethod *string   `json:"paymentMethod" validate:"omitempty,oneof=CASH BANK_TRANSFER MOBILE_MONEY CREDIT_CARD OTHER"`
	PaymentType   *string   `json:"paymentType"   validate:"omitempty,oneof=TITHE OFFERING DONATION OTHER"`
	Reference     *string   `json:"reference"     validate:"omitempty,max=100"`
	Notes         *string   `json:"notes"`
	RecordedBy    *string   `json:"recordedBy"    validate:"omitempty,max=255"`
}

type TitheUpdateRequest struct {
	Amount        *float64 `json:"amount"        validate:"omitempty,gt=0"`
	PaymentDate   *string  `json:"paymentDate"`
	PaymentMethod *string  `json:"paymentMethod" validate:"omitempty,oneof=CASH BANK_TRANSFER MOBILE_MONEY CREDIT_CARD OTHER"`
	PaymentType   *string  `json:"paymentType"   validate:"omitempty,oneof=TITHE OFFERING DONATION OTHER"`
	Reference     *string  `json:"reference"     validate:"omitempty,max=100"`
	Notes         *string  `json:"notes"`
	RecordedBy    *string  `json:"recordedBy"    validate:"omitempty,max=255"`
}

type TitheResponse struct {
	TitheID       uuid.UUID `json:"tithe_id"`
	MemberID      uuid.UUID `json:"member_id"`
	MemberName    string    `json:"member_name,omitempty"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	PaymentType   string    `json:"payment_type"`
	Reference     *string   `json:"reference,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	RecordedBy    *string   `json:"recorded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToTitheResponse(t *model.TitheModel) *TitheResponse {
	resp := &TitheResponse{
		TitheID:       t.TitheID,
		MemberID:      t.TitheMemberID,
		Amount:        t.TitheAmount,
		PaymentDate:   t.TithePaymentDate,
		PaymentMethod: t.TithePaymentMethod,
		PaymentType:   t.TithePaymentType,
		Reference:     t.TitheReference,
		Notes:         t.TitheNotes,
		RecordedBy:    t.TitheRecordedBy,
		CreatedAt:     t.TitheCreatedAt,
		UpdatedAt:     t.TitheUpdatedAt,
	}
	if t.Member != nil {
		resp.MemberName = t.Member.MemberFirstName + " " + t.Member.MemberLastName
	}
	return resp
}

func ToTitheResponseList(models []model.TitheModel) []TitheResponse {
	out := make([]TitheResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToTitheResponse(&models[i]))
	}
	return out
}
