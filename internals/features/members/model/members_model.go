package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"

	MaritalSingle   = "SINGLE"
	MaritalMarried  = "MARRIED"
	MaritalDivorced = "DIVORCED"
	MaritalWidowed  = "WIDOWED"

	MembershipActive      = "ACTIVE"
	MembershipInactive    = "INACTIVE"
	MembershipTransferred = "TRANSFERRED"
	MembershipDeceased    = "DECEASED"
)

type MemberModel struct {
	MemberID     uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`
	MemberNumber string    `gorm:"column:member_number;type:varchar(10);not null;uniqueIndex:ux_members_number" json:"member_number"`

	MemberFirstName string  `gorm:"column:member_first_name;type:varchar(100);not null" json:"member_first_name"`
	MemberLastName  string  `gorm:"column:member_last_name;type:varchar(100);not null"  json:"member_last_name"`
	MemberEmail     *string `gorm:"column:member_email;type:varchar(255)"               json:"member_email,omitempty"`
	MemberPhone     *string `gorm:"column:member_phone;type:varchar(32)"                json:"member_phone,omitempty"`

	MemberDateOfBirth   *time.Time `gorm:"column:member_date_of_birth;type:timestamptz"         json:"member_date_of_birth,omitempty"`
	MemberGender        *string    `gorm:"column:member_gender;type:varchar(10)"                json:"member_gender,omitempty"`
	MemberMaritalStatus *string    `gorm:"column:member_marital_status;type:varchar(10)"        json:"member_marital_status,omitempty"`
	MemberStatus        string     `gorm:"column:member_status;type:varchar(12);not null;default:'ACTIVE'" json:"member_status"`

	MemberAddress    *string `gorm:"column:member_address;type:varchar(255)"     json:"member_address,omitempty"`
	MemberCity       *string `gorm:"column:member_city;type:varchar(100)"        json:"member_city,omitempty"`
	MemberState      *string `gorm:"column:member_state;type:varchar(100)"       json:"member_state,omitempty"`
	MemberCountry    *string `gorm:"column:member_country;type:varchar(100)"     json:"member_country,omitempty"`
	MemberPostalCode *string `gorm:"column:member_postal_code;type:varchar(20)"  json:"member_postal_code,omitempty"`

	MemberJoinDate    time.Time  `gorm:"column:member_join_date;type:timestamptz;not null"  json:"member_join_date"`
	MemberBaptized    bool       `gorm:"column:member_baptized;not null;default:false"      json:"member_baptized"`
	MemberBaptismDate *time.Time `gorm:"column:member_baptism_date;type:timestamptz"        json:"member_baptism_date,omitempty"`

	MemberOccupation       *string `gorm:"column:member_occupation;type:varchar(100)"        json:"member_occupation,omitempty"`
	MemberEmergencyContact *string `gorm:"column:member_emergency_contact;type:varchar(255)" json:"member_emergency_contact,omitempty"`
	MemberEmergencyPhone   *string `gorm:"column:member_emergency_phone;type:varchar(32)"    json:"member_emergency_phone,omitempty"`
	MemberNotes            *string `gorm:"column:member_notes;type:text"                     json:"member_notes,omitempty"`

	MemberCreatedByID *uuid.UUID `gorm:"column:member_created_by_id;type:uuid" json:"member_created_by_id,omitempty"`

	FamilyMembers []FamilyMemberModel `gorm:"foreignKey:FamilyMemberMemberID;references:MemberID" json:"family_members,omitempty"`

	MemberCreatedAt time.Time `gorm:"column:member_created_at;type:timestamptz;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time `gorm:"column:member_updated_at;type:timestamptz;autoUpdateTime" json:"member_updated_at"`

	// NOTE: case-insensitive email uniqueness lives in a migration:
	//   CREATE UNIQUE INDEX ux_members_email_lower ON members (LOWER(member_email))
	//   WHERE member_email IS NOT NULL;
	// The controller still prechecks so the client gets a clean 409.
}

func (MemberModel) TableName() string {
	return "members"
}

type FamilyMemberModel struct {
	FamilyMemberID           uuid.UUID `gorm:"column:family_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"family_member_id"`
	FamilyMemberMemberID     uuid.UUID `gorm:"column:family_member_member_id;type:uuid;not null;index:idx_family_members_member_id" json:"family_member_member_id"`
	FamilyMemberName         string    `gorm:"column:family_member_name;type:varchar(255);not null"         json:"family_member_name"`
	FamilyMemberRelationship string    `gorm:"column:family_member_relationship;type:varchar(50);not null"  json:"family_member_relationship"`

	FamilyMemberCreatedAt time.Time `gorm:"column:family_member_created_at;type:timestamptz;autoCreateTime" json:"family_member_created_at"`
}

func (FamilyMemberModel) TableName() string {
	return "family_members"
}
