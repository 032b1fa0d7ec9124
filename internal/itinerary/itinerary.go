// Package itinerary places ranked candidates into day and time slots.
//
// The builder is a single deterministic greedy pass: it walks the calendar
// days of the trip, picks a preferred district per day (favoring a change
// from the previous day), and fills that day's slots with candidates from
// the preferred district before falling back to any remaining candidate.
package itinerary

import (
	"time"

	"github.com/se0sangh0/otaple/internal/spot"
)

// MixedDistrict labels a day whose candidates share no dominant district.
const MixedDistrict = "Mixed"

// slotsByPace maps pace keys to ordered time-slot labels.
var slotsByPace = map[string][]string{
	"relaxed":  {"10:30", "14:30", "18:30"},
	"balanced": {"10:00", "13:00", "16:00", "19:30"},
	"hardcore": {"09:30", "12:00", "14:30", "17:00", "20:00"},
}

// DefaultPace applies when the pace key is unrecognized.
const DefaultPace = "balanced"

// Stop is one itinerary entry: a candidate assigned to a time slot.
type Stop struct {
	spot.Candidate
	Slot string `json:"slot"`
}

// Day is one itinerary day with its dominant district.
type Day struct {
	Date     time.Time `json:"date"`
	District string    `json:"district"`
	Items    []Stop    `json:"items"`
}

// Slots returns the slot labels for a pace key, falling back to the
// balanced pace.
func Slots(pace string) []string {
	if slots, ok := slotsByPace[pace]; ok {
		return slots
	}
	return slotsByPace[DefaultPace]
}

// Build greedily places score-ordered candidates into the inclusive date
// range. Candidates beyond dayCount*slotCount are discarded. Days after the
// candidates run out receive no entry.
func Build(candidates []spot.Candidate, start, end time.Time, pace string) []Day {
	slots := Slots(pace)
	days := dateRange(start, end)

	maxItems := len(days) * len(slots)
	if len(candidates) > maxItems {
		candidates = candidates[:maxItems]
	}
	remaining := append([]spot.Candidate(nil), candidates...)

	var itinerary []Day
	prevDistrict := ""

	for _, date := range days {
		if len(remaining) == 0 {
			break
		}

		preferred := preferredDistrict(remaining, prevDistrict)

		var dayItems []spot.Candidate
		remaining, dayItems = take(remaining, preferred, len(slots))

		day := Day{Date: date, District: preferred}
		for i, item := range dayItems {
			day.Items = append(day.Items, Stop{Candidate: item, Slot: slots[i]})
		}
		itinerary = append(itinerary, day)
		prevDistrict = preferred
	}

	return itinerary
}

// preferredDistrict tallies remaining candidates by district, in first-seen
// order, and picks the highest-count district that differs from the previous
// day. Falls back to the overall highest, then to MixedDistrict.
func preferredDistrict(remaining []spot.Candidate, prevDistrict string) string {
	counts := make(map[string]int)
	var order []string
	for _, c := range remaining {
		if counts[c.District] == 0 {
			order = append(order, c.District)
		}
		counts[c.District]++
	}
	if len(order) == 0 {
		return MixedDistrict
	}

	// Stable sort by count descending: ties keep first-seen order.
	sorted := append([]string(nil), order...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && counts[sorted[j]] > counts[sorted[j-1]]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	for _, district := range sorted {
		if district != prevDistrict {
			return district
		}
	}
	return sorted[0]
}

// take removes up to max candidates from remaining, preferring those in the
// preferred district and preserving existing order throughout.
func take(remaining []spot.Candidate, preferred string, max int) (rest, taken []spot.Candidate) {
	rest = remaining[:0:0]
	for _, c := range remaining {
		if len(taken) < max && c.District == preferred {
			taken = append(taken, c)
		} else {
			rest = append(rest, c)
		}
	}

	if len(taken) < max {
		filler := rest
		rest = rest[:0:0]
		for _, c := range filler {
			if len(taken) < max {
				taken = append(taken, c)
			} else {
				rest = append(rest, c)
			}
		}
	}
	return rest, taken
}

// dateRange enumerates calendar days in the inclusive range.
func dateRange(start, end time.Time) []time.Time {
	var days []time.Time
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		days = append(days, cursor)
	}
	return days
}
