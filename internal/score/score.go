// Package score ranks available candidates with a weighted rule model.
//
// Every applicable rule applies; deltas are purely additive so rule order
// never matters. The final score is clamped at zero and candidates are
// sorted descending with a stable sort, so ties keep encounter order.
package score

import (
	"sort"
	"strings"

	"github.com/se0sangh0/otaple/internal/classify"
	"github.com/se0sangh0/otaple/internal/spot"
)

// Base is the starting score before any rule applies.
const Base = 18

// Selection is the user's content selection, parsed from selectors of the
// form "franchise:<name>" or "genre:<name>". The sentinel selector "all"
// matches every candidate.
type Selection struct {
	All        bool
	Franchises []string
	Genres     []string
}

// ParseSelection parses raw selectors. Unrecognized selectors are ignored.
func ParseSelection(raw []string) Selection {
	var sel Selection
	for _, r := range raw {
		r = strings.TrimSpace(r)
		switch {
		case r == "":
		case strings.EqualFold(r, "all"):
			sel.All = true
		case strings.HasPrefix(r, "franchise:"):
			if v := strings.TrimSpace(strings.TrimPrefix(r, "franchise:")); v != "" {
				sel.Franchises = append(sel.Franchises, v)
			}
		case strings.HasPrefix(r, "genre:"):
			if v := strings.TrimSpace(strings.TrimPrefix(r, "genre:")); v != "" {
				sel.Genres = append(sel.Genres, v)
			}
		}
	}
	return sel
}

// Matches reports whether a spot satisfies the selection. An empty selection
// matches nothing; the "all" sentinel matches everything.
func (sel Selection) Matches(s spot.Spot) bool {
	if sel.All {
		return true
	}
	for _, f := range sel.Franchises {
		if s.Franchise == f {
			return true
		}
	}
	for _, g := range sel.Genres {
		if s.Genre == g {
			return true
		}
	}
	return false
}

// Score computes the relevance score for an available candidate.
func Score(s spot.Spot, sel Selection, collabPriority bool) int {
	total := Base

	switch s.Type {
	case spot.TypeEvent:
		total += 30
	case spot.TypeCafe:
		total += 26
	case spot.TypeStore:
		total += 10
	case spot.TypeComplex:
		total += 8
	}

	kind := s.Schedule.Kind
	if kind == "" {
		kind = spot.ScheduleAlways
	}
	switch kind {
	case spot.ScheduleRange:
		total += 10
	case spot.ScheduleRolling:
		total += 6
	case spot.ScheduleRecurring:
		total += 4
	}

	if s.OfficialCheckRequired {
		total++
	}
	if s.Realtime {
		total += 15
		if s.Type == spot.TypeEvent || s.Type == spot.TypeCafe {
			total += 10
		}
	}
	if s.Franchise != "" && s.Franchise != classify.FranchiseUnknown {
		total += 6
	}
	if s.VenueHint != "" && !strings.HasSuffix(s.VenueHint, classify.GenericVenueSuffix) {
		total += 2
	}
	if kind == spot.ScheduleAlways && !s.Realtime {
		total -= 4
	}
	if collabPriority && s.Type == spot.TypeCafe {
		total += 14
	}

	// An empty selection counts as a non-match; only the explicit "all"
	// selector is neutral.
	if sel.Matches(s) {
		total += 26
	} else {
		total -= 20
	}

	if total < 0 {
		return 0
	}
	return total
}

// Rank sorts candidates by score descending. The sort is stable so equal
// scores keep their encounter order.
func Rank(candidates []spot.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
