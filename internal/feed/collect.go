package feed

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/se0sangh0/otaple/internal/config"
	"github.com/se0sangh0/otaple/internal/logger"
	"github.com/se0sangh0/otaple/internal/spot"
)

const (
	// MinLiveSpots and MaxLiveSpots clamp the caller-requested cap on live
	// spots kept after ranking.
	MinLiveSpots = 4
	MaxLiveSpots = 30

	// DefaultLiveSpots applies when the caller passes a non-positive cap.
	DefaultLiveSpots = 12
)

// Collector runs the full retrieval pipeline: template fan-out, per-feed
// fetch with fallback, normalization, dedup, ranking, and truncation.
type Collector struct {
	client *Client
	log    *logger.Logger
	now    func() time.Time
}

// NewCollector creates a collector from feed config.
func NewCollector(cfg config.Feed, log *logger.Logger) *Collector {
	return &Collector{
		client: NewClient(cfg),
		log:    log,
		now:    time.Now,
	}
}

// ClampLiveMax normalizes the requested live-spot cap into the allowed range.
func ClampLiveMax(requested int) int {
	if requested <= 0 {
		requested = DefaultLiveSpots
	}
	if requested < MinLiveSpots {
		return MinLiveSpots
	}
	if requested > MaxLiveSpots {
		return MaxLiveSpots
	}
	return requested
}

// Collect fetches all feed templates for a city concurrently and returns the
// ranked, deduplicated live spots. Per-feed failures are recorded in Meta and
// never abort the run; a run where every feed fails returns an empty slice
// and a Meta listing the errors.
func (c *Collector) Collect(ctx context.Context, cityKey, destination string, maxItems int) ([]spot.Spot, Meta) {
	cityName := CityName(cityKey, destination)
	templates := BuildTemplates(cityName)
	now := c.now()

	meta := Meta{Enabled: true, FeedCount: len(templates)}

	results := make([][]spot.Spot, len(templates))
	errs := make([]error, len(templates))

	var wg sync.WaitGroup
	for i, tpl := range templates {
		wg.Add(1)
		go func(i int, tpl Template) {
			defer wg.Done()
			raw, err := c.client.Fetch(ctx, GoogleNewsURL(tpl.Query))
			if err != nil {
				errs[i] = fmt.Errorf("%s feed: %w", tpl.TypeHint, err)
				return
			}
			spots := make([]spot.Spot, 0, len(raw))
			for _, item := range raw {
				if s, ok := Normalize(item, cityKey, destination, tpl, now); ok {
					spots = append(spots, s)
				}
			}
			results[i] = spots
		}(i, tpl)
	}
	wg.Wait()

	// Merge in template order so output is deterministic regardless of
	// goroutine completion order.
	seen := make(map[string]bool)
	var collected []spot.Spot
	for i := range templates {
		if errs[i] != nil {
			meta.Errors = append(meta.Errors, errs[i].Error())
			c.log.Warn("live feed failed", logger.Fields{
				"city":  cityKey,
				"error": errs[i].Error(),
			})
			continue
		}
		meta.SuccessFeeds++
		for _, s := range results[i] {
			key := s.Source + "|" + strings.ToLower(s.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			collected = append(collected, s)
		}
	}

	sort.SliceStable(collected, func(a, b int) bool {
		ra := liveRank(collected[a], cityKey, destination, now)
		rb := liveRank(collected[b], cityKey, destination, now)
		if ra != rb {
			return ra > rb
		}
		return collected[a].PublishedAt.After(collected[b].PublishedAt)
	})

	limit := ClampLiveMax(maxItems)
	if len(collected) > limit {
		collected = collected[:limit]
	}

	meta.Collected = len(collected)
	c.log.Info("live collection finished", logger.Fields{
		"city":      cityKey,
		"feeds":     meta.FeedCount,
		"succeeded": meta.SuccessFeeds,
		"collected": meta.Collected,
	})
	return collected, meta
}
