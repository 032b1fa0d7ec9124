package feed

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/se0sangh0/otaple/internal/classify"
	"github.com/se0sangh0/otaple/internal/spot"
)

// MaxArticleAge is the recency window: older articles are rejected outright,
// never score-penalized.
const MaxArticleAge = 95 * 24 * time.Hour

// publishedLayouts cover the date formats the two retrieval paths emit.
var publishedLayouts = []string{
	time.RFC1123Z, // "Mon, 02 Jan 2006 15:04:05 -0700"
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05", // rss2json
	time.RFC3339,
}

var spaceRun = regexp.MustCompile(`\s+`)

// Normalize converts one raw feed item into a live Spot. The second return
// is false when the item is rejected: empty title or link after markup
// stripping, unparsable publish date, or age beyond the recency window.
func Normalize(raw RawItem, cityKey, destination string, tpl Template, now time.Time) (spot.Spot, bool) {
	title := stripMarkup(raw.Title)
	description := stripMarkup(raw.Description)
	link := strings.TrimSpace(raw.Link)

	if title == "" || link == "" {
		return spot.Spot{}, false
	}
	published, ok := parsePublished(raw.PublishedAt)
	if !ok {
		return spot.Spot{}, false
	}
	if now.Sub(published) > MaxArticleAge {
		return spot.Spot{}, false
	}

	hint := tpl.TypeHint
	if hint == "" {
		hint = spot.TypeEvent
	}

	text := title + " " + description
	spotType := classify.Type(text, hint)
	tags := classify.Tags(text)
	district := classify.District(cityKey, text)

	// Template hints only override generic classifier results, never a
	// specific one.
	franchise := classify.Franchise(text)
	if franchise == classify.FranchiseUnknown && tpl.FranchiseHint != "" {
		franchise = tpl.FranchiseHint
	}
	genre := classify.Genre(text)
	if genre == classify.GenreFallback && tpl.GenreHint != "" {
		genre = tpl.GenreHint
	}

	destLabel := CityName(cityKey, destination)
	venueHint := classify.VenueHint(cityKey, text, district, destLabel)

	sourceName := raw.SourceName
	if sourceName == "" {
		sourceName = "Google News RSS"
	}

	return spot.Spot{
		ID:       spot.GenerateID(cityKey, link),
		City:     cityKey,
		Country:  countryFor(cityKey),
		Name:     title,
		Type:     spotType,
		District: district,
		Tags:     tags,
		Schedule: spot.Schedule{
			Kind: spot.ScheduleRolling,
			Note: fmt.Sprintf("live pickup (%s article)", published.Format("2006-01-02")),
		},
		Franchise:             franchise,
		Genre:                 genre,
		VenueHint:             venueHint,
		Source:                link,
		MapsQuery:             mapsQuery(destLabel, venueHint, franchise, spotType),
		OfficialCheckRequired: true, // provenance unverified
		Realtime:              true,
		RealtimeSource:        sourceName,
		PublishedAt:           published,
	}, true
}

// stripMarkup extracts visible text from possibly-HTML input and collapses
// whitespace.
func stripMarkup(value string) string {
	if value == "" {
		return ""
	}
	text := value
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(value)); err == nil {
		text = doc.Text()
	}
	return strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
}

func parsePublished(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func countryFor(cityKey string) string {
	switch cityKey {
	case "seoul":
		return "KR"
	case "tokyo", "osaka":
		return "JP"
	}
	return "UN"
}

func mapsQuery(destLabel, venueHint, franchise string, spotType spot.Type) string {
	suffix := franchise
	if suffix == classify.FranchiseUnknown {
		if spotType == spot.TypeCafe {
			suffix = "collab cafe"
		} else {
			suffix = "anime event"
		}
	}
	return destLabel + " " + venueHint + " " + suffix
}
