// Package plan orchestrates a full planning run: resolve the destination,
// merge curated and live spots, filter by schedule availability, score and
// rank, and place the winners into a day-by-day itinerary.
package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/se0sangh0/otaple/internal/availability"
	"github.com/se0sangh0/otaple/internal/catalog"
	"github.com/se0sangh0/otaple/internal/feed"
	"github.com/se0sangh0/otaple/internal/itinerary"
	"github.com/se0sangh0/otaple/internal/logger"
	"github.com/se0sangh0/otaple/internal/score"
	"github.com/se0sangh0/otaple/internal/spot"
)

// MaxTripDays caps the inclusive trip length a single plan covers.
const MaxTripDays = 14

var (
	// ErrNoCandidates means the destination matched nothing: no curated
	// spots for the city and no live spots collected.
	ErrNoCandidates = errors.New("no candidate spots for destination")

	// ErrNoneAvailable means candidates existed but none run during the
	// requested dates.
	ErrNoneAvailable = errors.New("no spots available for the requested dates")
)

// Request holds one planning request.
type Request struct {
	ID               string    `json:"id"`
	Destination      string    `json:"destination"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	Pace             string    `json:"pace"`
	IncludeRecurring bool      `json:"include_recurring"`
	CollabPriority   bool      `json:"collab_priority"`
	Live             bool      `json:"live"`
	LiveMax          int       `json:"live_max"`
	Selection        []string  `json:"selection,omitempty"`
}

// NewRequest returns a request with defaults filled in: a fresh ID, the
// balanced pace, recurring events included, live collection on, and a trip
// starting two weeks out lasting four days.
func NewRequest(now time.Time) Request {
	start := now.AddDate(0, 0, 14)
	return Request{
		ID:               uuid.NewString(),
		Start:            start,
		End:              start.AddDate(0, 0, 3),
		Pace:             itinerary.DefaultPace,
		IncludeRecurring: true,
		Live:             true,
		LiveMax:          feed.DefaultLiveSpots,
	}
}

// Validate checks the request is complete and coherent.
func (r Request) Validate() error {
	if r.Destination == "" {
		return errors.New("destination is required")
	}
	if r.Start.IsZero() || r.End.IsZero() {
		return errors.New("start and end dates are required")
	}
	if r.Start.After(r.End) {
		return errors.New("end date must not precede start date")
	}
	days := int(r.End.Sub(r.Start).Hours()/24) + 1
	if days > MaxTripDays {
		return fmt.Errorf("trip covers %d days, at most %d supported", days, MaxTripDays)
	}
	return nil
}

// FeedCollector retrieves live spots for a city. Satisfied by
// *feed.Collector; declared here so the planner can be tested without the
// network.
type FeedCollector interface {
	Collect(ctx context.Context, cityKey, destination string, maxItems int) ([]spot.Spot, feed.Meta)
}

// Result is the complete output of one planning run.
type Result struct {
	RequestID   string           `json:"request_id"`
	Destination string           `json:"destination"`
	CityKey     string           `json:"city_key"`
	Start       string           `json:"start"`
	End         string           `json:"end"`
	Days        int              `json:"days"`
	Candidates  []spot.Candidate `json:"candidates"`
	Itinerary   []itinerary.Day  `json:"itinerary"`
	Briefing    []GenreGroup     `json:"briefing"`
	TypeCounts  TypeCounts       `json:"type_counts"`
	FeedMeta    feed.Meta        `json:"feed_meta"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Planner wires the catalog and the live feed collector together.
type Planner struct {
	Feeds FeedCollector
	Log   *logger.Logger
	now   func() time.Time
}

// NewPlanner creates a planner. feeds may be nil when live collection is
// never requested.
func NewPlanner(feeds FeedCollector, log *logger.Logger) *Planner {
	if log == nil {
		log = logger.Default()
	}
	return &Planner{Feeds: feeds, Log: log, now: time.Now}
}

// Plan executes the pipeline for one request.
func (p *Planner) Plan(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cityKey := catalog.ResolveCityKey(req.Destination)
	curated := catalog.SpotsForCity(cityKey)

	var live []spot.Spot
	meta := feed.Meta{Enabled: req.Live}
	if req.Live && p.Feeds != nil {
		live, meta = p.Feeds.Collect(ctx, cityKey, req.Destination, req.LiveMax)
	}

	candidates := catalog.Merge(curated, live)
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	sel := score.ParseSelection(req.Selection)

	scored := make([]spot.Candidate, 0, len(candidates))
	for _, s := range candidates {
		avail := availability.Evaluate(s, req.Start, req.End, req.IncludeRecurring)
		if !avail.Available {
			continue
		}
		c := spot.Candidate{
			Spot:          s,
			ScheduleLabel: avail.Label,
			Score:         score.Score(s, sel, req.CollabPriority),
		}
		c.OfficialCheckRequired = avail.OfficialCheckRequired
		scored = append(scored, c)
	}
	if len(scored) == 0 {
		return nil, ErrNoneAvailable
	}

	score.Rank(scored)

	days := int(req.End.Sub(req.Start).Hours()/24) + 1
	result := &Result{
		RequestID:   req.ID,
		Destination: req.Destination,
		CityKey:     cityKey,
		Start:       req.Start.Format("2006-01-02"),
		End:         req.End.Format("2006-01-02"),
		Days:        days,
		Candidates:  scored,
		Itinerary:   itinerary.Build(scored, req.Start, req.End, req.Pace),
		Briefing:    BuildBriefing(scored),
		TypeCounts:  CountTypes(scored),
		FeedMeta:    meta,
		GeneratedAt: p.now(),
	}

	p.Log.Info("plan generated", logger.Fields{
		"request_id": req.ID,
		"city":       cityKey,
		"candidates": len(scored),
		"days":       days,
		"live":       meta.Collected,
	})
	return result, nil
}
