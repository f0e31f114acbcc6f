package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"churchms_backend/internals/features/events/model"
)

// OccurrenceIDPrefix marks a synthetic occurrence id of the form
// occ:<masterId>:<startEpochMillis>.
const OccurrenceIDPrefix = "occ:"

// Occurrence is one concrete instance of an event inside a window. The
// master row itself keeps its real id; later instances of a recurring event
// get synthetic occ: ids.
type Occurrence struct {
	ID        string
	MasterID  uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Source    *model.EventModel
}

// step advances a start time by one recurrence interval. Month and year
// steps use AddDate, so a Jan 31 monthly event lands on Mar 2/3 after
// February, matching time.Time's native overflow.
func step(t time.Time, pattern string) (time.Time, bool) {
	switch pattern {
	case model.PatternDaily:
		return t.AddDate(0, 0, 1), true
	case model.PatternWeekly:
		return t.AddDate(0, 0, 7), true
	case model.PatternMonthly:
		return t.AddDate(0, 1, 0), true
	case model.PatternYearly:
		return t.AddDate(1, 0, 0), true
	default:
		return t, false
	}
}

// Expand materializes every occurrence of the given events whose start falls
// inside [windowStart, windowEnd], sorted ascending by start across all
// events. maxPerEvent caps how many instances a single event may contribute,
// the master row included; a cap of zero or less means uncapped. An unknown
// recurrence pattern stops expansion for that event, leaving at most the
// master row.
func Expand(events []model.EventModel, windowStart, windowEnd time.Time, maxPerEvent int) []Occurrence {
	var out []Occurrence

	for i := range events {
		ev := &events[i]
		duration := ev.EventEndTime.Sub(ev.EventStartTime)

		if !ev.EventIsRecurring || ev.EventRecurringPattern == nil {
			if inWindow(ev.EventStartTime, windowStart, windowEnd) {
				out = append(out, masterOccurrence(ev))
			}
			continue
		}

		pattern := *ev.EventRecurringPattern
		emitted := 0
		first := true
		for start := ev.EventStartTime; !start.After(windowEnd); {
			if maxPerEvent > 0 && emitted >= maxPerEvent {
				break
			}
			if !start.Before(windowStart) {
				if first {
					out = append(out, masterOccurrence(ev))
				} else {
					out = append(out, Occurrence{
						ID:        FormatOccurrenceID(ev.EventID, start),
						MasterID:  ev.EventID,
						StartTime: start,
						EndTime:   start.Add(duration),
						Source:    ev,
					})
				}
				emitted++
			}

			next, ok := step(start, pattern)
			if !ok {
				break
			}
			start = next
			first = false
		}
	}

	sortOccurrences(out)
	return out
}

func masterOccurrence(ev *model.EventModel) Occurrence {
	return Occurrence{
		ID:        ev.EventID.String(),
		MasterID:  ev.EventID,
		StartTime: ev.EventStartTime,
		EndTime:   ev.EventEndTime,
		Source:    ev,
	}
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func sortOccurrences(occs []Occurrence) {
	// insertion sort keeps already mostly-ordered per-event runs cheap
	for i := 1; i < len(occs); i++ {
		for j := i; j > 0 && occs[j].StartTime.Before(occs[j-1].StartTime); j-- {
			occs[j], occs[j-1] = occs[j-1], occs[j]
		}
	}
}

func FormatOccurrenceID(masterID uuid.UUID, start time.Time) string {
	return OccurrenceIDPrefix + masterID.String() + ":" + strconv.FormatInt(start.UnixMilli(), 10)
}

// ParseOccurrenceID splits a synthetic occ: id back into its master id and
// start time. Returns false for anything that is not a well-formed occ: id.
func ParseOccurrenceID(id string) (uuid.UUID, time.Time, bool) {
	rest, found := strings.CutPrefix(id, OccurrenceIDPrefix)
	if !found {
		return uuid.Nil, time.Time{}, false
	}
	idx := strings.LastIndex(rest, ":")
	if idx < 0 {
		return uuid.Nil, time.Time{}, false
	}
	masterID, err := uuid.Parse(rest[:idx])
	if err != nil {
		return uuid.Nil, time.Time{}, false
	}
	millis, err := strconv.ParseInt(rest[idx+1:], 10, 64)
	if err != nil {
		return uuid.Nil, time.Time{}, false
	}
	return masterID, time.UnixMilli(millis).UTC(), true
}

// ResolveOccurrence rebuilds the occurrence of a master event at the given
// start, preserving the master's duration.
func ResolveOccurrence(ev *model.EventModel, start time.Time) Occurrence {
	return Occurrence{
		ID:        FormatOccurrenceID(ev.EventID, start),
		MasterID:  ev.EventID,
		StartTime: start,
		EndTime:   start.Add(ev.EventEndTime.Sub(ev.EventStartTime)),
		Source:    ev,
	}
}
