package catalog

import (
	"regexp"
	"strings"

	"github.com/se0sangh0/otaple/internal/spot"
)

// cityAliases maps canonical city keys to the spellings users type in.
var cityAliases = map[string][]string{
	"tokyo": {"tokyo", "도쿄", "東京"},
	"osaka": {"osaka", "오사카", "大阪"},
	"seoul": {"seoul", "서울", "ソウル"},
}

// cityOrder keeps alias resolution deterministic.
var cityOrder = []string{"tokyo", "osaka", "seoul"}

var spaceRun = regexp.MustCompile(`\s+`)

// normalizeDestination lowercases input and strips all whitespace so
// "  TOKYO " and "도 쿄" resolve the same way.
func normalizeDestination(value string) string {
	return spaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "")
}

// ResolveCityKey maps a free-form destination to a canonical city key.
// Unknown destinations resolve to their normalized form so live collection
// can still run against them. Returns "" for empty input.
func ResolveCityKey(destination string) string {
	norm := normalizeDestination(destination)
	if norm == "" {
		return ""
	}

	for _, key := range cityOrder {
		for _, alias := range cityAliases[key] {
			if normalizeDestination(alias) == norm {
				return key
			}
		}
	}
	for _, key := range cityOrder {
		for _, alias := range cityAliases[key] {
			if strings.Contains(norm, normalizeDestination(alias)) {
				return key
			}
		}
	}
	return norm
}

// SpotsForCity returns curated spots scoped to the given city key, preserving
// dataset order.
func SpotsForCity(cityKey string) []spot.Spot {
	var out []spot.Spot
	for _, s := range Spots {
		if s.City == cityKey {
			out = append(out, s)
		}
	}
	return out
}
