package feed

import (
	"fmt"
	"net/url"

	"github.com/se0sangh0/otaple/internal/spot"
)

// RawItem is one syndicated feed entry before normalization. Every field may
// be empty or malformed; the normalizer decides admission.
type RawItem struct {
	Title       string
	Link        string
	PublishedAt string
	Description string
	SourceName  string
}

// Template is one search query plus the classification bias it carries.
type Template struct {
	TypeHint      spot.Type
	GenreHint     string
	FranchiseHint string
	Query         string
}

// Meta summarizes one collection run. Failures are data here, not faults.
type Meta struct {
	Enabled      bool     `json:"enabled"`
	FeedCount    int      `json:"feed_count"`
	SuccessFeeds int      `json:"success_feeds"`
	Collected    int      `json:"collected"`
	Errors       []string `json:"errors,omitempty"`
}

// cityTerms are the search spellings for each supported city; the first term
// doubles as the display name when the user gave no destination label.
var cityTerms = map[string][]string{
	"tokyo": {"도쿄", "東京", "tokyo"},
	"osaka": {"오사카", "大阪", "osaka"},
	"seoul": {"서울", "seoul", "ソウル"},
}

// focusQuery describes a per-franchise search with strong hints.
type focusQuery struct {
	franchise string
	genre     string
	terms     []string
	typeHint  spot.Type
}

var focusQueries = []focusQuery{
	{
		franchise: "Jujutsu Kaisen",
		genre:     "Anime",
		terms:     []string{"주술회전", "呪術廻戦", "jujutsu kaisen"},
		typeHint:  spot.TypeCafe,
	},
	{
		franchise: "Hololive",
		genre:     "VTuber",
		terms:     []string{"홀로라이브", "ホロライブ", "hololive"},
		typeHint:  spot.TypeCafe,
	},
	{
		franchise: "Nijisanji",
		genre:     "VTuber",
		terms:     []string{"니지산지", "にじさんじ", "nijisanji"},
		typeHint:  spot.TypeEvent,
	},
}

// CityName picks the display label used in queries and venue fallbacks.
func CityName(cityKey, destination string) string {
	if destination != "" {
		return destination
	}
	if terms := cityTerms[cityKey]; len(terms) > 0 {
		return terms[0]
	}
	if cityKey != "" {
		return cityKey
	}
	return "local"
}

// BuildTemplates produces the query set for one city: four broad queries and
// one focused query per known franchise.
func BuildTemplates(cityName string) []Template {
	templates := []Template{
		{
			TypeHint: spot.TypeEvent,
			Query:    cityName + " (애니 OR アニメ OR anime OR game OR VTuber) (이벤트 OR event OR 開催 OR 開催中 OR 행사)",
		},
		{
			TypeHint: spot.TypeCafe,
			Query:    cityName + " (콜라보 카페 OR コラボカフェ OR collaboration cafe OR pop-up cafe) (개최 OR 진행 OR 開催中 OR 기간한정)",
		},
		{
			TypeHint: spot.TypeEvent,
			Query:    cityName + " (전시 OR 특설전 OR 展示会 OR pop-up OR 팝업스토어) (애니 OR 게임 OR VTuber)",
		},
		{
			TypeHint: spot.TypeEvent,
			Query:    cityName + " (주술회전 OR 홀로라이브 OR 니지산지 OR 呪術廻戦 OR ホロライブ OR にじさんじ) (콜라보 OR コラボ OR 특설전 OR 팝업 OR 카페)",
		},
	}

	for _, focus := range focusQueries {
		query := cityName + " ("
		for i, term := range focus.terms {
			if i > 0 {
				query += " OR "
			}
			query += term
		}
		query += ") (콜라보 카페 OR コラボカフェ OR 특설전 OR 전시 OR popup)"

		templates = append(templates, Template{
			TypeHint:      focus.typeHint,
			GenreHint:     focus.genre,
			FranchiseHint: focus.franchise,
			Query:         query,
		})
	}
	return templates
}

// GoogleNewsURL builds the RSS search URL for a query.
func GoogleNewsURL(query string) string {
	return fmt.Sprintf("https://news.google.com/rss/search?q=%s&hl=ko&gl=KR&ceid=KR:ko",
		url.QueryEscape(query))
}
