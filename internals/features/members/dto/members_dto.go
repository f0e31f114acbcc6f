package dto

import (
	"time"

	"github.com/google/uuid"

	"churchms_backend/internals/features/members/model"
)

type FamilyMemberInput struct {
	Name         string `json:"name"         validate:"required,max=255"`
	Relationship string `json:"relationship" validate:"required,max=50"`
}

type MemberRequest struct {
	FirstName        string              `json:"firstName"        validate:"required,max=100"`
	LastName         string              `json:"lastName"         validate:"required,max=100"`
	Email            *string             `json:"email"            validate:"omitempty,email"`
	Phone            *string             `json:"phone"            validate:"omitempty,max=32"`
	DateOfBirth      *string             `json:"dateOfBirth"`
	Gender           *string             `json:"gender"           validate:"omitempty,oneof=MALE FEMALE"`
	MaritalStatus    *string             `json:"maritalStatus"    validate:"omitempty,oneof=SINGLE MARRIED DIVORCED WIDOWED"`
	MembershipStatus *string             `json:"membershipStatus" validate:"omitempty,oneof=ACTIVE INACTIVE TRANSFERRED DECEASED"`
	Address          *string             `json:"address"          validate:"omitempty,max=255"`
	City             *string             `json:"city"             validate:"omitempty,max=100"`
	State            *string             `json:"state"            validate:"omitempty,max=100"`
	Country          *string             `json:"country"          validate:"omitempty,max=100"`
	PostalCode       *string             `json:"postalCode"       validate:"omitempty,max=20"`
	JoinDate         *string             `json:"joinDate"`
	Baptized         bool                `json:"baptized"`
	BaptismDate      *string             `json:"baptismDate"`
	Occupation       *string             `json:"occupation"       validate:"omitempty,max=100"`
	EmergencyContact *string             `json:"emergencyContact" validate:"omitempty,max=255"`
	EmergencyPhone   *string             `json:"emergencyPhone"   validate:"omitempty,max=32"`
	Notes            *string             `json:"notes"`
	CreatedByID      *uuid.UUID          `json:"createdById"`
	FamilyMembers    []FamilyMemberInput `json:"familyMembers"    validate:"omitempty,dive"`
}

// Update accepts the same fields; nil means "leave alone". FamilyMembers,
// when present, replaces the whole set.
type MemberUpdateRequest struct {
	FirstName        *string              `json:"firstName"        validate:"omitempty,max=100"`
	LastName         *string              `json:"lastName"         validate:"omitempty,max=100"`
	Email            *string              `json:"email"            validate:"omitempty,email"`
	Phone            *string              `json:"phone"            validate:"omitempty,max=32"`
	DateOfBirth      *string              `json:"dateOfBirth"`
	Gender           *string              `json:"gender"           validate:"omitempty,oneof=MALE FEMALE"`
	MaritalStatus    *string              `json:"maritalStatus"    validate:"omitempty,oneof=SINGLE MARRIED DIVORCED WIDOWED"`
	MembershipStatus *string              `json:"membershipStatus" validate:"omitempty,oneof=ACTIVE INACTIVE TRANSFERRED DECEASED"`
	Address          *string              `json:"address"          validate:"omitempty,max=255"`
	City             *string              `json:"city"             validate:"omitempty,max=100"`
	State            *string              `json:"state"            validate:"omitempty,max=100"`
	Country          *string              `json:"country"          validate:"omitempty,max=100"`
	PostalCode       *string              `json:"postalCode"       validate:"omitempty,max=20"`
	JoinDate         *string              `json:"joinDate"`
	Baptized         *bool                `json:"baptized"`
	BaptismDate      *string              `json:"baptismDate"`
	Occupation       *string              `json:"occupation"       validate:"omitempty,max=100"`
	EmergencyContact *string              `json:"emergencyContact" validate:"omitempty,max=255"`
	EmergencyPhone   *string              `json:"emergencyPhone"   validate:"omitempty,max=32"`
	Notes            *string              `json:"notes"`
	FamilyMembers    *[]FamilyMemberInput `json:"familyMembers"    validate:"omitempty,dive"`
}

type FamilyMemberResponse struct {
	FamilyMemberID uuid.UUID `json:"family_member_id"`
	Name           string    `json:"name"`
	Relationship   string    `json:"relationship"`
}

// Compact giving/attendance history shown on the member detail page.
type TitheSummary struct {
	TitheID     uuid.UUID `json:"tithe_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	PaymentType string    `json:"payment_type"`
}

type AttendanceSummary struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	ServiceType  string    `json:"service_type"`
	Date         time.Time `json:"date"`
}

type MemberResponse struct {
	MemberID         uuid.UUID              `json:"member_id"`
	MemberNumber     string                 `json:"member_number"`
	FirstName        string                 `json:"first_name"`
	LastName         string                 `json:"last_name"`
	Email            *string                `json:"email,omitempty"`
	Phone            *string                `json:"phone,omitempty"`
	DateOfBirth      *time.Time             `json:"date_of_birth,omitempty"`
	Gender           *string                `json:"gender,omitempty"`
	MaritalStatus    *string                `json:"marital_status,omitempty"`
	MembershipStatus string                 `json:"membership_status"`
	Address          *string                `json:"address,omitempty"`
	City             *string                `json:"city,omitempty"`
	State            *string                `json:"state,omitempty"`
	Country          *string                `json:"country,omitempty"`
	PostalCode       *string                `json:"postal_code,omitempty"`
	JoinDate         time.Time              `json:"join_date"`
	Baptized         bool                   `json:"baptized"`
	BaptismDate      *time.Time             `json:"baptism_date,omitempty"`
	Occupation       *string                `json:"occupation,omitempty"`
	EmergencyContact *string                `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string                `json:"emergency_phone,omitempty"`
	Notes            *string                `json:"notes,omitempty"`
	CreatedByID      *uuid.UUID             `json:"created_by_id,omitempty"`
	FamilyMembers    []FamilyMemberResponse `json:"family_members"`
	Tithes           []TitheSummary         `json:"tithes,omitempty"`
	Attendance       []AttendanceSummary    `json:"attendance,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func ToMemberResponse(m *model.MemberModel) *MemberResponse {
	fams := make([]FamilyMemberResponse, 0, len(m.FamilyMembers))
	for _, fm := range m.FamilyMembers {
		fams = append(fams, FamilyMemberResponse{
			FamilyMemberID: fm.FamilyMemberID,
			Name:           fm.FamilyMemberName,
			Relationship:   fm.FamilyMemberRelationship,
		})
	}
	return &MemberResponse{
		MemberID:         m.MemberID,
		MemberNumber:     m.MemberNumber,
		FirstName:        m.MemberFirstName,
		LastName:         m.MemberLastName,
		Email:            m.MemberEmail,
		Phone:            m.MemberPhone,
		DateOfBirth:      m.MemberDateOfBirth,
		Gender:           m.MemberGender,
		MaritalStatus:    m.MemberMaritalStatus,
		MembershipStatus: m.MemberStatus,
		Address:          m.MemberAddress,
		City:             m.MemberCity,
		State:            m.MemberState,
		Country:          m.MemberCountry,
		PostalCode:       m.MemberPostalCode,
		JoinDate:         m.MemberJoinDate,
		Baptized:         m.MemberBaptized,
		BaptismDate:      m.MemberBaptismDate,
		Occupation:       m.MemberOccupation,
		EmergencyContact: m.MemberEmergencyContact,
		EmergencyPhone:   m.MemberEmergencyPhone,
		Notes:            m.MemberNotes,
		CreatedByID:      m.MemberCreatedByID,
		FamilyMembers:    fams,
		CreatedAt:        m.MemberCreatedAt,
		UpdatedAt:        m.MemberUpdatedAt,
	}
}

func ToMemberResponseList(models []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToMemberResponse(&models[i]))
	}
	return out
}
