package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchms_backend/internals/features/events/model"
)

func strPtr(s string) *string { return &s }

func makeEvent(start time.Time, duration time.Duration, pattern *string) model.EventModel {
	return model.EventModel{
		EventID:               uuid.New(),
		EventTitle:            "Service",
		EventStartTime:        start,
		EventEndTime:          start.Add(duration),
		EventIsRecurring:      pattern != nil,
		EventRecurringPattern: pattern,
		EventStatus:           model.StatusPublished,
		EventIsActive:         true,
	}
}

func TestExpandNonRecurring(t *testing.T) {
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  int
	}{
		{"inside window", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), 1},
		{"at window start", windowStart, 1},
		{"before window", time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC), 0},
		{"after window", time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := makeEvent(tt.start, time.Hour, nil)
			occs := Expand([]model.EventModel{ev}, windowStart, windowEnd, 0)
			require.Len(t, occs, tt.want)
			if tt.want == 1 {
				assert.Equal(t, ev.EventID.String(), occs[0].ID)
				assert.Equal(t, tt.start, occs[0].StartTime)
			}
		})
	}
}

func TestExpandWeekly(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 1, 22, 23, 59, 59, 0, time.UTC)

	ev := makeEvent(start, time.Hour, strPtr(model.PatternWeekly))
	occs := Expand([]model.EventModel{ev}, windowStart, windowEnd, 0)

	require.Len(t, occs, 4)
	for i, occ := range occs {
		wantStart := start.AddDate(0, 0, 7*i)
		assert.Equal(t, wantStart, occ.StartTime, "occurrence %d", i)
		assert.Equal(t, time.Hour, occ.EndTime.Sub(occ.StartTime), "duration preserved")
	}

	// the first instance is the master itself
	assert.Equal(t, ev.EventID.String(), occs[0].ID)
	for _, occ := range occs[1:] {
		assert.Equal(t, FormatOccurrenceID(ev.EventID, occ.StartTime), occ.ID)
	}
}

func TestExpandMasterBeforeWindow(t *testing.T) {
	start := time.Date(2023, 12, 4, 9, 0, 0, 0, time.UTC)
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)

	ev := makeEvent(start, 30*time.Minute, strPtr(model.PatternWeekly))
	occs := Expand([]model.EventModel{ev}, windowStart, windowEnd, 0)

	require.Len(t, occs, 3) // Jan 1, 8, 15
	for _, occ := range occs {
		assert.False(t, occ.StartTime.Before(windowStart))
		// every instance is synthetic since the master predates the window
		assert.Contains(t, occ.ID, OccurrenceIDPrefix)
	}
}

func TestExpandDailyCap(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	windowEnd := start.AddDate(0, 0, 20)

	ev := makeEvent(start, time.Hour, strPtr(model.PatternDaily))

	occs := Expand([]model.EventModel{ev}, start, windowEnd, 5)
	assert.Len(t, occs, 5)

	uncapped := Expand([]model.EventModel{ev}, start, windowEnd, 0)
	assert.Len(t, uncapped, 21)
}

func TestExpandOneOccurrencePerEvent(t *testing.T) {
	windowStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, 30)

	daily := makeEvent(windowStart.Add(8*time.Hour), time.Hour, strPtr(model.PatternDaily))
	single := makeEvent(windowStart.AddDate(0, 0, 10), 2*time.Hour, nil)

	// a cap of one keeps the daily series from crowding out other events
	occs := Expand([]model.EventModel{daily, single}, windowStart, windowEnd, 1)

	require.Len(t, occs, 2)
	assert.Equal(t, daily.EventID, occs[0].MasterID)
	assert.Equal(t, single.EventID, occs[1].MasterID)
}

func TestExpandMonthlyOverflow(t *testing.T) {
	// Jan 31 monthly: AddDate pushes the February instance into March
	start := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	ev := makeEvent(start, time.Hour, strPtr(model.PatternMonthly))
	occs := Expand([]model.EventModel{ev}, start, windowEnd, 0)

	require.GreaterOrEqual(t, len(occs), 2)
	assert.Equal(t, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), occs[1].StartTime)
}

func TestExpandUnknownPattern(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	windowEnd := start.AddDate(0, 1, 0)

	ev := makeEvent(start, time.Hour, strPtr("FORTNIGHTLY"))
	occs := Expand([]model.EventModel{ev}, start, windowEnd, 0)

	require.Len(t, occs, 1)
	assert.Equal(t, ev.EventID.String(), occs[0].ID)
}

func TestExpandSortedAcrossEvents(t *testing.T) {
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC)

	weekly := makeEvent(time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC), time.Hour, strPtr(model.PatternWeekly))
	single := makeEvent(time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), 2*time.Hour, nil)

	occs := Expand([]model.EventModel{single, weekly}, windowStart, windowEnd, 0)
	require.Len(t, occs, 3)
	for i := 1; i < len(occs); i++ {
		assert.False(t, occs[i].StartTime.Before(occs[i-1].StartTime), "occurrences out of order at %d", i)
	}
	assert.Equal(t, weekly.EventID, occs[0].MasterID)
	assert.Equal(t, single.EventID, occs[1].MasterID)
}

func TestOccurrenceIDRoundTrip(t *testing.T) {
	masterID := uuid.New()
	start := time.Date(2024, 6, 9, 10, 30, 0, 0, time.UTC)

	id := FormatOccurrenceID(masterID, start)
	gotID, gotStart, ok := ParseOccurrenceID(id)

	require.True(t, ok)
	assert.Equal(t, masterID, gotID)
	assert.True(t, start.Equal(gotStart))
}

func TestParseOccurrenceIDRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		uuid.New().String(),
		"occ:",
		"occ:not-a-uuid:1700000000000",
		"occ:" + uuid.New().String(),
		"occ:" + uuid.New().String() + ":not-millis",
	}
	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			_, _, ok := ParseOccurrenceID(id)
			assert.False(t, ok)
		})
	}
}

func TestResolveOccurrencePreservesDuration(t *testing.T) {
	ev := makeEvent(time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC), 90*time.Minute, strPtr(model.PatternWeekly))
	start := ev.EventStartTime.AddDate(0, 0, 14)

	occ := ResolveOccurrence(&ev, start)
	assert.Equal(t, start, occ.StartTime)
	assert.Equal(t, 90*time.Minute, occ.EndTime.Sub(occ.StartTime))
	assert.Equal(t, FormatOccurrenceID(ev.EventID, start), occ.ID)
}
