package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Extractor guesses structured hints from free text. Implementations must be
// pure; a false second return means no plausible phrase was found.
type Extractor interface {
	// Franchise extracts a franchise-like phrase preceding collaboration or
	// exhibition keywords.
	Franchise(text string) (string, bool)
	// Venue extracts a venue-like phrase near "at"/"@"/hosted-at markers.
	Venue(text string) (string, bool)
}

// HeuristicExtractor implements Extractor with regex-based phrase guessing.
// Accuracy is best-effort; callers fall back to sentinel values when it
// returns false.
type HeuristicExtractor struct{}

var defaultExtractor Extractor = HeuristicExtractor{}

var (
	headlineSplit = regexp.MustCompile(`\s[-|:]\s`)

	// Phrase of 2-30 chars directly before a collaboration/exhibition keyword.
	collabPhrase = regexp.MustCompile(`(?i)([A-Za-z0-9가-힣·・:'"“”‘’\-\s]{2,30})\s*(?:콜라보|コラボ|collab|특설전|전시|팝업)`)

	// Generic terms that disqualify an extracted franchise phrase.
	franchiseBlocklist = regexp.MustCompile(`일본서|특별|캠페인|개최|진행|오픈|뉴스|행사|전시|팝업|카페|소식|공식`)

	venuePhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:at|in|＠|@)\s*([A-Za-z0-9가-힣ぁ-んァ-ヶ一-龯·・:'"“”‘’\-\s]{2,42})`),
		regexp.MustCompile(`([A-Za-z0-9가-힣ぁ-んァ-ヶ一-龯·・:'"“”‘’\-\s]{2,42})\s*(?:에서|개최|会場|점|店)`),
	}

	venueCleanup = regexp.MustCompile(`[|()\[\]{}]`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// venueBlockers disqualify extracted venue phrases that are clearly not
// place names.
var venueBlockers = []string{
	"event", "news", "google", "anime", "eventually",
	"캠페인", "특별", "개최", "진행", "오픈",
}

// Franchise extracts a candidate franchise name from the headline portion of
// the text. The candidate must be 2-26 chars, at most 3 words, and miss the
// generic-term blocklist.
func (HeuristicExtractor) Franchise(text string) (string, bool) {
	headline := text
	if parts := headlineSplit.Split(text, 2); len(parts) > 0 && parts[0] != "" {
		headline = parts[0]
	}

	match := collabPhrase.FindStringSubmatch(headline)
	if match == nil {
		return "", false
	}

	candidate := spaceRun.ReplaceAllString(strings.TrimSpace(match[1]), " ")
	length := utf8.RuneCountInString(candidate)
	if length < 2 || length > 26 {
		return "", false
	}
	if len(strings.Fields(candidate)) > 3 {
		return "", false
	}
	if franchiseBlocklist.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

// Venue extracts a candidate venue name. The candidate must be 2-22 chars,
// at most 4 words, and contain no blocker terms.
func (HeuristicExtractor) Venue(text string) (string, bool) {
	for _, pattern := range venuePhrases {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		candidate := spaceRun.ReplaceAllString(match[1], " ")
		candidate = venueCleanup.ReplaceAllString(candidate, " ")
		candidate = strings.TrimSpace(spaceRun.ReplaceAllString(candidate, " "))
		if candidate == "" {
			continue
		}

		length := utf8.RuneCountInString(candidate)
		if length < 2 || length > 22 {
			continue
		}
		if len(strings.Fields(candidate)) > 4 {
			continue
		}
		if venueBlocked(candidate) {
			continue
		}
		return candidate, true
	}
	return "", false
}

func venueBlocked(candidate string) bool {
	lowered := strings.ToLower(candidate)
	for _, word := range venueBlockers {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
