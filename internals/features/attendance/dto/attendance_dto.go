package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"churchms_backend/internals/features/attendance/model"
)

var (
	ErrNoAttendee   = errors.New("either memberId or visitorName is required")
	ErrBothAttendee = errors.New("memberId and visitor fields are mutually exclusive")
)

// AttendeeRef is the resolved identity of an attendance row: exactly one of
// Member or visitor name is set.
type AttendeeRef struct {
	MemberID    *uuid.UUID
	VisitorName string
}

func (a AttendeeRef) IsVisitor() bool {
	return a.MemberID == nil
}

type AttendanceRequest struct {
	MemberID       *uuid.UUID `json:"memberId"`
	VisitorName    *string    `json:"visitorName"    validate:"omitempty,max=255"`
	VisitorContact *string    `json:"visitorContact" validate:"omitempty,max=100"`
	VisitorAddress *string    `json:"visitorAddress" validate:"omitempty,max=255"`
	ServiceType    string     `json:"serviceType"    validate:"required,oneof=SUNDAY_SERVICE MIDWEEK_SERVICE BIBLE_STUDY PRAYER_MEETING SPECIAL_EVENT OTHER"`
	Date           *string    `json:"date"`
	Notes          *string    `json:"notes"`
	TakenBy        *string    `json:"takenBy"        validate:"required,max=255"`
}

// Attendee enforces the member-or-visitor exclusivity the row shape cannot.
func (r *AttendanceRequest) Attendee() (AttendeeRef, error) {
	hasMember := r.MemberID != nil
	hasVisitor := r.VisitorName != nil && *r.VisitorName != ""

	switch {
	case hasMember && hasVisitor:
		return AttendeeRef{}, ErrBothAttendee
	case hasMember:
		return AttendeeRef{MemberID: r.MemberID}, nil
	case hasVisitor:
		return AttendeeRef{VisitorName: *r.VisitorName}, nil
	default:
		return AttendeeRef{}, ErrNoAttendee
	}
}

type AttendanceUpdateRequest struct {
	ServiceType *string `json:"serviceType" validate:"omitempty,oneof=SUNDAY_SERVICE MIDWEEK_SERVICE BIBLE_STUDY PRAYER_MEETING SPECIAL_EVENT OTHER"`
	Date        *string `json:"date"`
	Notes       *string `json:"notes"`
	TakenBy     *string `json:"takenBy"     validate:"omitempty,max=255"`
}

type AttendanceResponse struct {
	AttendanceID   uuid.UUID  `json:"attendance_id"`
	MemberID       *uuid.UUID `json:"member_id,omitempty"`
	MemberName     string     `json:"member_name,omitempty"`
	IsVisitor      bool       `json:"is_visitor"`
	VisitorName    *string    `json:"visitor_name,omitempty"`
	VisitorContact *string    `json:"visitor_contact,omitempty"`
	VisitorAddress *string    `json:"visitor_address,omitempty"`
	ServiceType    string     `json:"service_type"`
	Date           time.Time  `json:"date"`
	Notes          *string    `json:"notes,omitempty"`
	TakenBy        *string    `json:"taken_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToAttendanceResponse(a *model.AttendanceModel) *AttendanceResponse {
	resp := &AttendanceResponse{
		AttendanceID:   a.AttendanceID,
		MemberID:       a.AttendanceMemberID,
		IsVisitor:      a.AttendanceIsVisitor,
		VisitorName:    a.AttendanceVisitorName,
		VisitorContact: a.AttendanceVisitorContact,
		VisitorAddress: a.AttendanceVisitorAddress,
		ServiceType:    a.AttendanceServiceType,
		Date:           a.AttendanceDate,
		Notes:          a.AttendanceNotes,
		TakenBy:        a.AttendanceTakenBy,
		CreatedAt:      a.AttendanceCreatedAt,
	}
	if a.Member != nil {
		resp.MemberName = a.Member.MemberFirstName + " " + a.Member.MemberLastName
	}
	return resp
}

func ToAttendanceResponseList(models []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToAttendanceResponse(&models[i]))
	}
	return out
}
