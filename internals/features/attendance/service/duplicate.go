package service

import (
	"time"

	"churchms_backend/internals/features/attendance/dto"
	"churchms_backend/internals/features/attendance/model"
	helper "churchms_backend/internals/helpers"
)

// IsDuplicate reports whether any existing row already marks the same
// attendee for the given service type on the same UTC calendar day. Member
// rows match on member id, visitor rows on the exact visitor name.
func IsDuplicate(existing []model.AttendanceModel, attendee dto.AttendeeRef, serviceType string, date time.Time) bool {
	dayStart, dayEnd := helper.DayBounds(date)
	for i := range existing {
		r := &existing[i]
		if r.AttendanceServiceType != serviceType {
			continue
		}
		d := r.AttendanceDate.UTC()
		if d.Before(dayStart) || d.After(dayEnd) {
			continue
		}
		if attendee.IsVisitor() {
			if r.AttendanceIsVisitor && r.AttendanceVisitorName != nil &&
				*r.AttendanceVisitorName == attendee.VisitorName {
				return true
			}
			continue
		}
		if !r.AttendanceIsVisitor && r.AttendanceMemberID != nil &&
			*r.AttendanceMemberID == *attendee.MemberID {
			return true
		}
	}
	return false
}
