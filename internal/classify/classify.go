package classify

import (
	"strings"

	"github.com/se0sangh0/otaple/internal/spot"
)

// cityOrder fixes the traversal order when a district lookup falls through to
// other cities' alias tables.
var cityOrder = []string{"tokyo", "osaka", "seoul"}

// hintBias is added to the query template's type hint before keyword voting.
const hintBias = 1.5

// Type infers a spot type from text using keyword voting. The hint from the
// originating query template gets a fixed bias toward itself. Ties resolve in
// the order event, cafe, store.
func Type(text string, hint spot.Type) spot.Type {
	t := strings.ToLower(text)
	scores := map[spot.Type]float64{
		spot.TypeEvent: 0,
		spot.TypeCafe:  0,
		spot.TypeStore: 0,
	}
	if _, ok := scores[hint]; ok {
		scores[hint] += hintBias
	}

	for _, k := range eventKeywords {
		if strings.Contains(t, strings.ToLower(k)) {
			scores[spot.TypeEvent]++
		}
	}
	for _, k := range cafeKeywords {
		if strings.Contains(t, strings.ToLower(k)) {
			scores[spot.TypeCafe]++
		}
	}
	for _, k := range storeKeywords {
		if strings.Contains(t, strings.ToLower(k)) {
			scores[spot.TypeStore]++
		}
	}

	best := spot.TypeEvent
	for _, candidate := range []spot.Type{spot.TypeEvent, spot.TypeCafe, spot.TypeStore} {
		if scores[candidate] > scores[best] {
			best = candidate
		}
	}
	return best
}

// Tags matches text against the keyword-to-tag table. When nothing matches it
// returns the default tag set, so the result is never empty.
func Tags(text string) []string {
	t := strings.ToLower(text)
	var tags []string
	for _, entry := range tagTable {
		for _, kw := range entry.keywords {
			if strings.Contains(t, strings.ToLower(kw)) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		return append([]string(nil), defaultTags...)
	}
	return tags
}

// District resolves a district name from text. It tries the requesting city's
// alias list first, then every other city's list, then bare known district
// names, and finally falls back to DistrictFallback.
func District(cityKey, text string) string {
	lowered := strings.ToLower(text)

	if name, ok := matchAliases(districtAliases[cityKey], lowered); ok {
		return name
	}
	for _, city := range cityOrder {
		if city == cityKey {
			continue
		}
		if name, ok := matchAliases(districtAliases[city], lowered); ok {
			return name
		}
	}
	for _, known := range cityDistricts[cityKey] {
		if strings.Contains(lowered, strings.ToLower(known)) {
			return known
		}
	}
	return DistrictFallback
}

// Genre classifies text into a content genre using a fixed priority chain:
// VTuber keywords beat Game, Game beats Manga, Manga beats Anime.
func Genre(text string) string {
	t := strings.ToLower(text)
	if containsAny(t, vtuberKeywords) {
		return "VTuber"
	}
	if containsAny(t, gameKeywords) {
		return "Game"
	}
	if containsAny(t, mangaKeywords) {
		return "Manga"
	}
	if containsAny(t, animeKeywords) {
		return "Anime"
	}
	return GenreFallback
}

// Franchise identifies a franchise from the known pattern table, then falls
// back to heuristic phrase extraction. Returns FranchiseUnknown if neither
// produces a plausible name.
func Franchise(text string) string {
	lowered := strings.ToLower(text)
	for _, item := range franchisePatterns {
		for _, term := range item.terms {
			if strings.Contains(lowered, strings.ToLower(term)) {
				return item.name
			}
		}
	}
	if name, ok := defaultExtractor.Franchise(text); ok {
		return name
	}
	return FranchiseUnknown
}

// VenueHint resolves the most specific venue reference available: a known
// venue alias, a phrase extracted near "at"/"@" markers, the resolved
// district, or the generic "<destination> central area" label.
func VenueHint(cityKey, text, district, destinationLabel string) string {
	lowered := strings.ToLower(text)
	if name, ok := matchAliases(cityVenues[cityKey], lowered); ok {
		return name
	}
	if venue, ok := defaultExtractor.Venue(text); ok {
		return venue
	}
	if district != "" && district != DistrictFallback {
		return district
	}
	label := destinationLabel
	if label == "" {
		label = cityKey
	}
	if label == "" {
		label = "local"
	}
	return label + " " + GenericVenueSuffix
}

func matchAliases(entries []aliasEntry, lowered string) (string, bool) {
	for _, entry := range entries {
		for _, term := range entry.terms {
			if strings.Contains(lowered, strings.ToLower(term)) {
				return entry.name, true
			}
		}
	}
	return "", false
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
