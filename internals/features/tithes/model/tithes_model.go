package model

import (
	"time"

	"github.com/google/uuid"

	MemberModel "churchms_backend/internals/features/members/model"
)

const (
	PaymentTypeTithe    = "TITHE"
	PaymentTypeOffering = "OFFERING"
	PaymentTypeDonation = "DONATION"
	PaymentTypeOther    = "OTHER"
)

const (
	PaymentMethodCash         = "CASH"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodMobileMoney  = "MOBILE_MONEY"
	PaymentMethodCreditCard   = "CREDIT_CARD"
	PaymentMethodOther        = "OTHER"
)

type TitheModel struct {
	TitheID       uuid.UUID `gorm:"column:tithe_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tithe_id"`
	TitheMemberID uuid.UUID `gorm:"column:tithe_member_id;type:uuid;not null;index:idx_tithes_member_id" json:"tithe_member_id"`

	TitheAmount        float64   `gorm:"column:tithe_amount;type:numeric(12,2);not null" json:"tithe_amount"`
	TithePaymentDate   time.Time `gorm:"column:tithe_payment_date;type:timestamptz;not null;index:idx_tithes_payment_date" json:"tithe_payment_date"`
	TithePaymentMethod string    `gorm:"column:tithe_payment_method;type:varchar(16);not null;default:'CASH'" json:"tithe_payment_method"`
	TithePaymentType   string    `gorm:"column:tithe_payment_type;type:varchar(12);not null;default:'TITHE'"  json:"tithe_payment_type"`

	TitheReference  *string `gorm:"column:tithe_reference;type:varchar(100)" json:"tithe_reference,omitempty"`
	TitheNotes      *string `gorm:"column:tithe_notes;type:text"             json:"tithe_notes,omitempty"`
	TitheRecordedBy *string `gorm:"column:tithe_recorded_by;type:varchar(255)" json:"tithe_recorded_by,omitempty"`

	Member *MemberModel.MemberModel `gorm:"foreignKey:TitheMemberID;references:MemberID" json:"member,omitempty"`

	TitheCreatedAt time.Time `gorm:"column:tithe_created_at;type:timestamptz;autoCreateTime" json:"tithe_created_at"`
	TitheUpdatedAt time.Time `gorm:"column:tithe_updated_at;type:timestamptz;autoUpdateTime" json:"tithe_updated_at"`
}

func (TitheModel) TableName() string {
	return "tithes"
}
