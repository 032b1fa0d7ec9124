package catalog

import "github.com/se0sangh0/otaple/internal/spot"

// Merge unions curated and live spots, dropping duplicates by ID and by
// source link. Curated entries are processed first so curated data wins over
// a duplicate live entry. Output preserves first-occurrence order, and
// merging a list with itself reproduces the original list.
func Merge(curated, live []spot.Spot) []spot.Spot {
	seenIDs := make(map[string]bool)
	seenLinks := make(map[string]bool)
	merged := make([]spot.Spot, 0, len(curated)+len(live))

	for _, item := range append(append([]spot.Spot(nil), curated...), live...) {
		if item.ID != "" && seenIDs[item.ID] {
			continue
		}
		if item.Source != "" && seenLinks[item.Source] {
			continue
		}

		if item.ID != "" {
			seenIDs[item.ID] = true
		}
		if item.Source != "" {
			seenLinks[item.Source] = true
		}
		merged = append(merged, item)
	}
	return merged
}
