package model

import (
	"time"

	"github.com/google/uuid"

	MemberModel "churchms_backend/internals/features/members/model"
)

const (
	ServiceSunday       = "SUNDAY_SERVICE"
	ServiceMidweek      = "MIDWEEK_SERVICE"
	ServiceBibleStudy   = "BIBLE_STUDY"
	ServicePrayer       = "PRAYER_MEETING"
	ServiceSpecialEvent = "SPECIAL_EVENT"
	ServiceOther        = "OTHER"
)

// A row records either a member (attendance_member_id set) or a walk-in
// visitor (attendance_is_visitor with the visitor_* fields), never both.
type AttendanceModel struct {
	AttendanceID       uuid.UUID  `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceMemberID *uuid.UUID `gorm:"column:attendance_member_id;type:uuid;index:idx_attendance_member_id" json:"attendance_member_id,omitempty"`

	AttendanceIsVisitor      bool    `gorm:"column:attendance_is_visitor;not null;default:false" json:"attendance_is_visitor"`
	AttendanceVisitorName    *string `gorm:"column:attendance_visitor_name;type:varchar(255)"    json:"attendance_visitor_name,omitempty"`
	AttendanceVisitorContact *string `gorm:"column:attendance_visitor_contact;type:varchar(100)" json:"attendance_visitor_contact,omitempty"`
	AttendanceVisitorAddress *string `gorm:"column:attendance_visitor_address;type:varchar(255)" json:"attendance_visitor_address,omitempty"`

	AttendanceServiceType string    `gorm:"column:attendance_service_type;type:varchar(20);not null" json:"attendance_service_type"`
	AttendanceDate        time.Time `gorm:"column:attendance_date;type:timestamptz;not null;index:idx_attendance_date" json:"attendance_date"`

	AttendanceNotes   *string `gorm:"column:attendance_notes;type:text"           json:"attendance_notes,omitempty"`
	AttendanceTakenBy *string `gorm:"column:attendance_taken_by;type:varchar(255)" json:"attendance_taken_by,omitempty"`

	Member *MemberModel.MemberModel `gorm:"foreignKey:AttendanceMemberID;references:MemberID" json:"member,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;type:timestamptz;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;type:timestamptz;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}
