package plan

import (
	"sort"

	"github.com/se0sangh0/otaple/internal/classify"
	"github.com/se0sangh0/otaple/internal/spot"
)

// briefingLimit caps how many event-focused candidates feed the briefing.
const briefingLimit = 30

// bucketLimit caps the entries kept per franchise bucket.
const bucketLimit = 3

// FranchiseBucket groups a genre's candidates by franchise.
type FranchiseBucket struct {
	Franchise string           `json:"franchise"`
	Items     []spot.Candidate `json:"items"`
}

// GenreGroup is one genre section of the event briefing.
type GenreGroup struct {
	Genre   string            `json:"genre"`
	Buckets []FranchiseBucket `json:"buckets"`
}

// TypeCounts are the result counts shown as headline figures. Stores covers
// both store and complex spots.
type TypeCounts struct {
	Total  int `json:"total"`
	Events int `json:"events"`
	Cafes  int `json:"cafes"`
	Stores int `json:"stores"`
}

// CountTypes tallies ranked candidates by spot type.
func CountTypes(candidates []spot.Candidate) TypeCounts {
	counts := TypeCounts{Total: len(candidates)}
	for _, c := range candidates {
		switch c.Type {
		case spot.TypeEvent:
			counts.Events++
		case spot.TypeCafe:
			counts.Cafes++
		case spot.TypeStore, spot.TypeComplex:
			counts.Stores++
		}
	}
	return counts
}

// eventFocused picks the candidates the briefing is about: live events and
// cafes when any exist, otherwise all events and cafes.
func eventFocused(candidates []spot.Candidate) []spot.Candidate {
	var live, all []spot.Candidate
	for _, c := range candidates {
		if c.Type != spot.TypeEvent && c.Type != spot.TypeCafe {
			continue
		}
		all = append(all, c)
		if c.Realtime {
			live = append(live, c)
		}
	}
	if len(live) > 0 {
		return live
	}
	return all
}

// BuildBriefing groups the top event-focused candidates by genre and
// franchise. Groups and buckets are ordered by their best score; each bucket
// keeps at most its top entries.
func BuildBriefing(candidates []spot.Candidate) []GenreGroup {
	items := eventFocused(candidates)
	if len(items) > briefingLimit {
		items = items[:briefingLimit]
	}

	type bucketKey struct{ genre, franchise string }
	byGenre := make(map[string][]string)        // genre -> franchise order
	byBucket := make(map[bucketKey][]spot.Candidate)
	var genreOrder []string

	for _, c := range items {
		genre := c.Genre
		if genre == "" {
			genre = classify.GenreFallback
		}
		franchise := c.Franchise
		if franchise == "" {
			franchise = classify.FranchiseUnknown
		}

		key := bucketKey{genre, franchise}
		if _, seen := byBucket[key]; !seen {
			if len(byGenre[genre]) == 0 {
				genreOrder = append(genreOrder, genre)
			}
			byGenre[genre] = append(byGenre[genre], franchise)
		}
		byBucket[key] = append(byBucket[key], c)
	}

	groups := make([]GenreGroup, 0, len(genreOrder))
	for _, genre := range genreOrder {
		group := GenreGroup{Genre: genre}
		for _, franchise := range byGenre[genre] {
			bucket := FranchiseBucket{
				Franchise: franchise,
				Items:     byBucket[bucketKey{genre, franchise}],
			}
			sort.SliceStable(bucket.Items, func(a, b int) bool {
				return bucket.Items[a].Score > bucket.Items[b].Score
			})
			if len(bucket.Items) > bucketLimit {
				bucket.Items = bucket.Items[:bucketLimit]
			}
			group.Buckets = append(group.Buckets, bucket)
		}
		sort.SliceStable(group.Buckets, func(a, b int) bool {
			return topScore(group.Buckets[a]) > topScore(group.Buckets[b])
		})
		groups = append(groups, group)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groupScore(groups[a]) > groupScore(groups[b])
	})
	return groups
}

func topScore(b FranchiseBucket) int {
	if len(b.Items) == 0 {
		return 0
	}
	return b.Items[0].Score
}

func groupScore(g GenreGroup) int {
	if len(g.Buckets) == 0 {
		return 0
	}
	return topScore(g.Buckets[0])
}
