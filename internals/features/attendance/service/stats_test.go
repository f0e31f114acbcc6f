package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchms_backend/internals/features/attendance/model"
	MemberModel "churchms_backend/internals/features/members/model"
)

func memberRow(memberID uuid.UUID, serviceType string, date time.Time, member *MemberModel.MemberModel) model.AttendanceModel {
	return model.AttendanceModel{
		AttendanceID:          uuid.New(),
		AttendanceMemberID:    &memberID,
		AttendanceServiceType: serviceType,
		AttendanceDate:        date,
		Member:                member,
	}
}

func visitorRow(name, serviceType string, date time.Time) model.AttendanceModel {
	return model.AttendanceModel{
		AttendanceID:          uuid.New(),
		AttendanceIsVisitor:   true,
		AttendanceVisitorName: &name,
		AttendanceServiceType: serviceType,
		AttendanceDate:        date,
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalAttendance)
	assert.Equal(t, 0, stats.MemberCount)
	assert.Equal(t, 0, stats.VisitorCount)
	assert.Zero(t, stats.AverageAttendance)
	assert.Empty(t, stats.ByServiceType)
	assert.Empty(t, stats.VisitorsByService)
	assert.Empty(t, stats.TopMembers)
}

func TestComputeStatsServiceBreakdown(t *testing.T) {
	day := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)
	var rows []model.AttendanceModel
	for i := 0; i < 3; i++ {
		rows = append(rows, memberRow(uuid.New(), model.ServiceSunday, day, nil))
	}
	for i := 0; i < 2; i++ {
		rows = append(rows, memberRow(uuid.New(), model.ServiceBibleStudy, day.AddDate(0, 0, 3), nil))
	}

	stats := ComputeStats(rows)

	assert.Equal(t, 5, stats.TotalAttendance)
	assert.Equal(t, 3, stats.ByServiceType[model.ServiceSunday])
	assert.Equal(t, 2, stats.ByServiceType[model.ServiceBibleStudy])
	assert.Equal(t, 5, stats.MemberCount)
	assert.Equal(t, 0, stats.VisitorCount)
}

func TestComputeStatsVisitorBreakdown(t *testing.T) {
	day := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)
	rows := []model.AttendanceModel{
		memberRow(uuid.New(), model.ServiceSunday, day, nil),
		visitorRow("Jordan", model.ServiceSunday, day),
		visitorRow("Sam", model.ServiceSunday, day),
		visitorRow("Ama", model.ServiceBibleStudy, day.AddDate(0, 0, 3)),
	}

	stats := ComputeStats(rows)

	assert.Equal(t, 4, stats.TotalAttendance)
	assert.Equal(t, 1, stats.MemberCount)
	assert.Equal(t, 3, stats.VisitorCount)
	// visitors get their own per-service partition, members stay out of it
	assert.Equal(t, 2, stats.VisitorsByService[model.ServiceSunday])
	assert.Equal(t, 1, stats.VisitorsByService[model.ServiceBibleStudy])
	assert.Equal(t, 3, stats.ByServiceType[model.ServiceSunday])
	// visitors never rank
	assert.Len(t, stats.TopMembers, 1)
}

func TestComputeStatsAverageByDistinctDays(t *testing.T) {
	day1 := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC)
	rows := []model.AttendanceModel{
		memberRow(uuid.New(), model.ServiceSunday, day1, nil),
		memberRow(uuid.New(), model.ServiceSunday, day1, nil),
		memberRow(uuid.New(), model.ServiceSunday, day1.Add(8*time.Hour), nil),
		memberRow(uuid.New(), model.ServiceSunday, day2, nil),
	}

	stats := ComputeStats(rows)

	// two services on the same calendar day count as one gathering day
	assert.InDelta(t, 2.0, stats.AverageAttendance, 1e-9)
}

func TestComputeStatsTopMembers(t *testing.T) {
	day := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)

	regular := uuid.New()
	regularMember := &MemberModel.MemberModel{
		MemberID:        regular,
		MemberFirstName: "Grace",
		MemberLastName:  "Mensah",
	}
	orphan := uuid.New()

	var rows []model.AttendanceModel
	for i := 0; i < 3; i++ {
		rows = append(rows, memberRow(regular, model.ServiceSunday, day.AddDate(0, 0, 7*i), regularMember))
	}
	rows = append(rows, memberRow(orphan, model.ServiceSunday, day, nil))

	stats := ComputeStats(rows)

	require.Len(t, stats.TopMembers, 2)
	assert.Equal(t, regular, stats.TopMembers[0].MemberID)
	assert.Equal(t, "Grace", stats.TopMembers[0].FirstName)
	assert.Equal(t, "Mensah", stats.TopMembers[0].LastName)
	assert.Equal(t, 3, stats.TopMembers[0].Count)

	// member row deleted since the attendance was taken
	assert.Equal(t, "Unknown", stats.TopMembers[1].FirstName)
	assert.Equal(t, "Member", stats.TopMembers[1].LastName)
}

func TestComputeStatsTopMembersCappedAtTen(t *testing.T) {
	day := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)

	var rows []model.AttendanceModel
	for i := 0; i < 15; i++ {
		id := uuid.New()
		member := &MemberModel.MemberModel{
			MemberID:        id,
			MemberFirstName: fmt.Sprintf("Member%d", i),
			MemberLastName:  "Test",
		}
		// rank member i with i+1 attendances
		for j := 0; j <= i; j++ {
			rows = append(rows, memberRow(id, model.ServiceSunday, day.AddDate(0, 0, j), member))
		}
	}

	stats := ComputeStats(rows)

	require.Len(t, stats.TopMembers, 10)
	assert.Equal(t, 15, stats.TopMembers[0].Count)
	for i := 1; i < len(stats.TopMembers); i++ {
		assert.GreaterOrEqual(t, stats.TopMembers[i-1].Count, stats.TopMembers[i].Count)
	}
}
