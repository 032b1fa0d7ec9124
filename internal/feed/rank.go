package feed

import (
	"strings"
	"time"

	"github.com/se0sangh0/otaple/internal/classify"
	"github.com/se0sangh0/otaple/internal/spot"
)

// liveRank orders freshly collected spots before truncation. It favors
// concrete, recent, well-attributed items so the cap keeps the best ones.
// It is independent of the preference-driven candidate score.
func liveRank(s spot.Spot, cityKey, destination string, now time.Time) float64 {
	var score float64

	if s.Realtime {
		score += 7
	}

	switch s.Type {
	case spot.TypeEvent:
		score += 15
	case spot.TypeCafe:
		score += 12
	case spot.TypeStore:
		score += 4
	}

	// Term matching runs over the name, the label the schedule resolves
	// to, and the venue hint.
	haystack := strings.ToLower(s.Name + " " + s.Schedule.Note + " " + s.VenueHint)
	for _, term := range cityTerms[cityKey] {
		if strings.Contains(haystack, strings.ToLower(term)) {
			score += 2
		}
	}
	if destination != "" && strings.Contains(haystack, strings.ToLower(destination)) {
		score += 3
	}

	score += float64(len(s.Tags)) * 1.5
	for _, tag := range s.Tags {
		switch tag {
		case "event":
			score += 4
		case "collab-cafe":
			score += 5
		}
	}

	if s.Franchise != "" && s.Franchise != classify.FranchiseUnknown {
		score += 8
	}
	if s.Genre == "VTuber" {
		score += 3
	}
	if s.VenueHint != "" && !strings.HasSuffix(s.VenueHint, "central area") {
		score += 4
	}

	if !s.PublishedAt.IsZero() {
		age := now.Sub(s.PublishedAt)
		switch {
		case age <= 3*24*time.Hour:
			score += 8
		case age <= 7*24*time.Hour:
			score += 6
		case age <= 14*24*time.Hour:
			score += 4
		case age <= 30*24*time.Hour:
			score += 2
		}
	}

	if s.OfficialCheckRequired {
		score++
	}

	return score
}
