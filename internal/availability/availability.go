// Package availability decides whether a spot's schedule overlaps a requested
// date range.
//
// Evaluate is the sole availability filter in the pipeline: spots it marks
// unavailable are dropped before scoring. It is pure and must be re-run
// whenever the date range or the include-recurring flag changes.
package availability

import (
	"time"

	"github.com/se0sangh0/otaple/internal/spot"
)

// Labels used when a schedule carries no note of its own.
const (
	LabelAlwaysOpen  = "always open"
	LabelAnnualEvent = "annual event"
)

// Availability is the evaluation result for one spot against one date range.
type Availability struct {
	Available             bool
	Label                 string
	OfficialCheckRequired bool
}

// Evaluate matches the schedule kind exhaustively:
//
//   - always/rolling: always available, confirmation flag passed through
//   - range: available iff the closed intervals overlap; unparsable bounds
//     make the spot unavailable
//   - recurring: unavailable unless includeRecurring is set, then available
//     iff the trip's calendar months intersect the schedule's months; the
//     confirmation flag is forced on
//   - anything else: unavailable
func Evaluate(s spot.Spot, reqStart, reqEnd time.Time, includeRecurring bool) Availability {
	schedule := s.Schedule
	if schedule.Kind == "" {
		schedule.Kind = spot.ScheduleAlways
	}

	switch schedule.Kind {
	case spot.ScheduleAlways, spot.ScheduleRolling:
		label := schedule.Note
		if label == "" {
			label = LabelAlwaysOpen
		}
		return Availability{
			Available:             true,
			Label:                 label,
			OfficialCheckRequired: s.OfficialCheckRequired,
		}

	case spot.ScheduleRange:
		start, okStart := parseDay(schedule.Start)
		end, okEnd := parseDay(schedule.End)
		if !okStart || !okEnd {
			return Availability{}
		}
		return Availability{
			Available:             overlaps(reqStart, reqEnd, start, end),
			Label:                 schedule.Start + " ~ " + schedule.End,
			OfficialCheckRequired: s.OfficialCheckRequired,
		}

	case spot.ScheduleRecurring:
		if !includeRecurring {
			return Availability{}
		}
		label := schedule.Note
		if label == "" {
			label = LabelAnnualEvent
		}
		return Availability{
			Available:             monthsOverlap(reqStart, reqEnd, schedule.Months),
			Label:                 label,
			OfficialCheckRequired: true,
		}
	}

	return Availability{}
}

// overlaps reports whether the closed intervals [aStart,aEnd] and
// [bStart,bEnd] intersect.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// monthsOverlap reports whether any calendar month spanned by a day in
// [start,end] appears in months.
func monthsOverlap(start, end time.Time, months []int) bool {
	trip := tripMonths(start, end)
	for _, m := range months {
		if trip[m] {
			return true
		}
	}
	return false
}

// tripMonths collects the calendar months covered by every day in the
// inclusive range.
func tripMonths(start, end time.Time) map[int]bool {
	months := make(map[int]bool)
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		months[int(cursor.Month())] = true
	}
	return months
}

func parseDay(value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
