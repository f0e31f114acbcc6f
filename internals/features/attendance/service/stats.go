package service

import (
	"sort"

	"github.com/google/uuid"

	"churchms_backend/internals/features/attendance/model"
)

type TopMember struct {
	MemberID  uuid.UUID `json:"member_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Count     int       `json:"count"`
}

type Stats struct {
	TotalAttendance   int            `json:"total_attendance"`
	ByServiceType     map[string]int `json:"by_service_type"`
	MemberCount       int            `json:"member_count"`
	VisitorCount      int            `json:"visitor_count"`
	VisitorsByService map[string]int `json:"visitors_by_service"`
	AverageAttendance float64        `json:"average_attendance"`
	TopMembers        []TopMember    `json:"top_members"`
}

// ComputeStats aggregates a window of attendance rows.
//
// The average divides the total by the number of distinct UTC calendar dates
// in the window, which treats two services on the same day as one gathering.
// Member names come from the preloaded Member association; rows whose member
// row is gone fall back to "Unknown Member".
func ComputeStats(rows []model.AttendanceModel) Stats {
	stats := Stats{
		TotalAttendance:   len(rows),
		ByServiceType:     map[string]int{},
		VisitorsByService: map[string]int{},
		TopMembers:        []TopMember{},
	}

	days := map[string]struct{}{}
	perMember := map[uuid.UUID]*TopMember{}

	for i := range rows {
		r := &rows[i]
		stats.ByServiceType[r.AttendanceServiceType]++
		days[r.AttendanceDate.UTC().Format("2006-01-02")] = struct{}{}

		if r.AttendanceIsVisitor || r.AttendanceMemberID == nil {
			stats.VisitorCount++
			stats.VisitorsByService[r.AttendanceServiceType]++
			continue
		}
		stats.MemberCount++

		tm, ok := perMember[*r.AttendanceMemberID]
		if !ok {
			tm = &TopMember{MemberID: *r.AttendanceMemberID, FirstName: "Unknown", LastName: "Member"}
			if r.Member != nil {
				tm.FirstName = r.Member.MemberFirstName
				tm.LastName = r.Member.MemberLastName
			}
			perMember[*r.AttendanceMemberID] = tm
		}
		tm.Count++
	}

	if len(days) > 0 {
		stats.AverageAttendance = float64(stats.TotalAttendance) / float64(len(days))
	}

	for _, tm := range perMember {
		stats.TopMembers = append(stats.TopMembers, *tm)
	}
	sort.Slice(stats.TopMembers, func(i, j int) bool {
		a, b := stats.TopMembers[i], stats.TopMembers[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.MemberID.String() < b.MemberID.String()
	})
	if len(stats.TopMembers) > 10 {
		stats.TopMembers = stats.TopMembers[:10]
	}

	return stats
}
