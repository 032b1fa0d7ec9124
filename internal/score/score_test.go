package score

import (
	"testing"

	"github.com/se0sangh0/otaple/internal/classify"
	"github.com/se0sangh0/otaple/internal/spot"
)

func TestParseSelection(t *testing.T) {
	sel := ParseSelection([]string{"franchise:Hololive", "genre:VTuber", "all", "", "bogus"})
	if !sel.All {
		t.Error("ParseSelection() missed the all sentinel")
	}
	if len(sel.Franchises) != 1 || sel.Franchises[0] != "Hololive" {
		t.Errorf("ParseSelection() franchises = %v", sel.Franchises)
	}
	if len(sel.Genres) != 1 || sel.Genres[0] != "VTuber" {
		t.Errorf("ParseSelection() genres = %v", sel.Genres)
	}
}

func TestSelection_Matches(t *testing.T) {
	s := spot.Spot{Franchise: "Hololive", Genre: "VTuber"}

	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{name: "all matches anything", sel: Selection{All: true}, want: true},
		{name: "empty matches nothing", sel: Selection{}, want: false},
		{name: "franchise match", sel: Selection{Franchises: []string{"Hololive"}}, want: true},
		{name: "genre match", sel: Selection{Genres: []string{"VTuber"}}, want: true},
		{name: "no overlap", sel: Selection{Franchises: []string{"One Piece"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Matches(s); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_ReferenceScenarios(t *testing.T) {
	// Curated event, unknown franchise, always-open, not realtime, empty
	// selection: 18 + 30 - 4 - 20 = 24.
	a := spot.Spot{
		Type:      spot.TypeEvent,
		Franchise: classify.FranchiseUnknown,
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways},
	}
	if got := Score(a, Selection{}, false); got != 24 {
		t.Errorf("Score(A) = %d, want 24", got)
	}

	// Same spot but realtime: 18 + 30 + 15 + 10 - 20 = 53. The always-open
	// penalty no longer applies because the spot is realtime.
	b := a
	b.Realtime = true
	if got := Score(b, Selection{}, false); got != 53 {
		t.Errorf("Score(B) = %d, want 53", got)
	}
}

func TestScore_RealtimeEventGap(t *testing.T) {
	// A realtime event always beats its non-realtime twin by at least 25.
	base := spot.Spot{
		Type:      spot.TypeEvent,
		Franchise: "Hololive",
		Schedule:  spot.Schedule{Kind: spot.ScheduleRolling},
	}
	live := base
	live.Realtime = true

	sel := Selection{All: true}
	gap := Score(live, sel, false) - Score(base, sel, false)
	if gap < 25 {
		t.Errorf("realtime gap = %d, want >= 25", gap)
	}
}

func TestScore_Rules(t *testing.T) {
	tests := []struct {
		name           string
		s              spot.Spot
		sel            Selection
		collabPriority bool
		want           int
	}{
		{
			name: "cafe with collab priority",
			// 18 + 26 + 6 + 14 + 26 = 90
			s: spot.Spot{
				Type:     spot.TypeCafe,
				Schedule: spot.Schedule{Kind: spot.ScheduleRolling},
			},
			sel:            Selection{All: true},
			collabPriority: true,
			want:           90,
		},
		{
			name: "range schedule and franchise bonus",
			// 18 + 30 + 10 + 1 + 6 + 26 = 91
			s: spot.Spot{
				Type:                  spot.TypeEvent,
				Franchise:             "Jujutsu Kaisen",
				Schedule:              spot.Schedule{Kind: spot.ScheduleRange, Start: "2026-01-01", End: "2026-01-05"},
				OfficialCheckRequired: true,
			},
			sel:  Selection{All: true},
			want: 91,
		},
		{
			name: "venue hint bonus skipped for generic label",
			// 18 + 10 - 4 - 20 = 4
			s: spot.Spot{
				Type:      spot.TypeStore,
				VenueHint: "Tokyo " + classify.GenericVenueSuffix,
				Schedule:  spot.Schedule{Kind: spot.ScheduleAlways},
			},
			sel:  Selection{},
			want: 4,
		},
		{
			name: "specific venue hint counts",
			// 18 + 10 + 2 - 4 - 20 = 6
			s: spot.Spot{
				Type:      spot.TypeStore,
				VenueHint: "Tokyo Big Sight",
				Schedule:  spot.Schedule{Kind: spot.ScheduleAlways},
			},
			sel:  Selection{},
			want: 6,
		},
		{
			name: "score clamped at zero",
			// 18 - 4 - 20 = -6, clamped to 0
			s:    spot.Spot{Schedule: spot.Schedule{Kind: spot.ScheduleAlways}},
			sel:  Selection{},
			want: 0,
		},
		{
			name: "recurring selection match",
			// 18 + 30 + 4 + 1 + 26 = 79
			s: spot.Spot{
				Type:                  spot.TypeEvent,
				Genre:                 "Anime",
				OfficialCheckRequired: true,
				Schedule:              spot.Schedule{Kind: spot.ScheduleRecurring, Months: []int{3}},
			},
			sel:  Selection{Genres: []string{"Anime"}},
			want: 79,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.s, tt.sel, tt.collabPriority); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRank_StableDescending(t *testing.T) {
	candidates := []spot.Candidate{
		{Spot: spot.Spot{ID: "low"}, Score: 10},
		{Spot: spot.Spot{ID: "high"}, Score: 90},
		{Spot: spot.Spot{ID: "mid-a"}, Score: 50},
		{Spot: spot.Spot{ID: "mid-b"}, Score: 50},
	}

	Rank(candidates)

	wantOrder := []string{"high", "mid-a", "mid-b", "low"}
	for i, id := range wantOrder {
		if candidates[i].ID != id {
			t.Errorf("Rank()[%d] = %q, want %q", i, candidates[i].ID, id)
		}
	}
}
