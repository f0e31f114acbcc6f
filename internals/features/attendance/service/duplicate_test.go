package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"churchms_backend/internals/features/attendance/dto"
	"churchms_backend/internals/features/attendance/model"
)

func TestIsDuplicate(t *testing.T) {
	memberID := uuid.New()
	otherID := uuid.New()
	morning := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)

	memberRef := dto.AttendeeRef{MemberID: &memberID}
	visitorRef := dto.AttendeeRef{VisitorName: "Jordan"}

	existing := []model.AttendanceModel{
		memberRow(memberID, model.ServiceSunday, morning, nil),
		visitorRow("Jordan", model.ServiceSunday, morning),
	}

	tests := []struct {
		name        string
		attendee    dto.AttendeeRef
		serviceType string
		date        time.Time
		want        bool
	}{
		{"same member same service same day", memberRef, model.ServiceSunday, morning.Add(6 * time.Hour), true},
		{"same member different day", memberRef, model.ServiceSunday, morning.AddDate(0, 0, 1), false},
		{"same member different service", memberRef, model.ServiceBibleStudy, morning, false},
		{"different member same slot", dto.AttendeeRef{MemberID: &otherID}, model.ServiceSunday, morning, false},
		{"same visitor same service same day", visitorRef, model.ServiceSunday, morning.Add(2 * time.Hour), true},
		{"same visitor different day", visitorRef, model.ServiceSunday, morning.AddDate(0, 0, 7), false},
		{"different visitor name", dto.AttendeeRef{VisitorName: "Sam"}, model.ServiceSunday, morning, false},
		{"no prior rows", memberRef, model.ServiceSunday, morning, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := existing
			if tt.name == "no prior rows" {
				rows = nil
			}
			assert.Equal(t, tt.want, IsDuplicate(rows, tt.attendee, tt.serviceType, tt.date))
		})
	}
}

func TestIsDuplicateMemberNeverMatchesVisitorRow(t *testing.T) {
	memberID := uuid.New()
	morning := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)

	// a visitor row on the same slot must not block a member, and vice versa
	existing := []model.AttendanceModel{visitorRow("Jordan", model.ServiceSunday, morning)}
	assert.False(t, IsDuplicate(existing, dto.AttendeeRef{MemberID: &memberID}, model.ServiceSunday, morning))

	existing = []model.AttendanceModel{memberRow(memberID, model.ServiceSunday, morning, nil)}
	assert.False(t, IsDuplicate(existing, dto.AttendeeRef{VisitorName: "Jordan"}, model.ServiceSunday, morning))
}
