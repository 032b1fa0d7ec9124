package plan

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/se0sangh0/otaple/internal/feed"
	"github.com/se0sangh0/otaple/internal/logger"
	"github.com/se0sangh0/otaple/internal/spot"
)

type stubCollector struct {
	spots  []spot.Spot
	meta   feed.Meta
	called bool
}

func (s *stubCollector) Collect(ctx context.Context, cityKey, destination string, maxItems int) ([]spot.Spot, feed.Meta) {
	s.called = true
	return s.spots, s.meta
}

func testLogger() *logger.Logger {
	return logger.New(logger.LevelError, io.Discard)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRequestValidate(t *testing.T) {
	base := Request{
		Destination: "도쿄",
		Start:       day(2025, 8, 1),
		End:         day(2025, 8, 4),
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{"valid", func(r *Request) {}, false},
		{"missing destination", func(r *Request) { r.Destination = "" }, true},
		{"missing start", func(r *Request) { r.Start = time.Time{} }, true},
		{"missing end", func(r *Request) { r.End = time.Time{} }, true},
		{"end before start", func(r *Request) { r.End = day(2025, 7, 30) }, true},
		{"exactly 14 days", func(r *Request) { r.End = day(2025, 8, 14) }, false},
		{"15 days too long", func(r *Request) { r.End = day(2025, 8, 15) }, true},
		{"single day", func(r *Request) { r.End = r.Start }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRequestDefaults(t *testing.T) {
	now := day(2025, 8, 1)
	req := NewRequest(now)

	if req.ID == "" {
		t.Error("NewRequest() ID is empty")
	}
	if !req.Start.Equal(day(2025, 8, 15)) {
		t.Errorf("Start = %v, want two weeks out", req.Start)
	}
	if !req.End.Equal(day(2025, 8, 18)) {
		t.Errorf("End = %v, want start plus three days", req.End)
	}
	if req.Pace != "balanced" || !req.IncludeRecurring || !req.Live {
		t.Errorf("defaults = pace %q recurring %v live %v, want balanced/true/true",
			req.Pace, req.IncludeRecurring, req.Live)
	}
	if req.LiveMax != feed.DefaultLiveSpots {
		t.Errorf("LiveMax = %d, want %d", req.LiveMax, feed.DefaultLiveSpots)
	}
}

func TestPlanCuratedOnly(t *testing.T) {
	planner := NewPlanner(nil, testLogger())

	req := NewRequest(day(2025, 8, 1))
	req.Destination = "도쿄"
	req.Live = false

	result, err := planner.Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if result.CityKey != "tokyo" {
		t.Errorf("CityKey = %q, want tokyo", result.CityKey)
	}
	if len(result.Candidates) == 0 {
		t.Fatal("Plan() produced no candidates from the curated catalog")
	}
	for i := 1; i < len(result.Candidates); i++ {
		if result.Candidates[i].Score > result.Candidates[i-1].Score {
			t.Fatalf("candidates not sorted: index %d score %d > %d",
				i, result.Candidates[i].Score, result.Candidates[i-1].Score)
		}
	}
	if len(result.Itinerary) == 0 {
		t.Error("Plan() produced an empty itinerary")
	}
	if result.TypeCounts.Total != len(result.Candidates) {
		t.Errorf("TypeCounts.Total = %d, want %d", result.TypeCounts.Total, len(result.Candidates))
	}
	if result.FeedMeta.Enabled {
		t.Error("FeedMeta.Enabled = true with live collection off")
	}
	if result.Days != 4 {
		t.Errorf("Days = %d, want 4", result.Days)
	}
}

func TestPlanMergesLiveSpots(t *testing.T) {
	liveSpot := spot.Spot{
		ID:       "rt-tokyo-deadbeef00000000",
		City:     "tokyo",
		Name:     "주술회전 콜라보 카페",
		Type:     spot.TypeCafe,
		District: "Shibuya",
		Tags:     []string{"collab-cafe", "anime"},
		Schedule: spot.Schedule{Kind: spot.ScheduleRolling, Note: "live pickup"},
		Source:   "https://example.com/live",
		Realtime: true,
	}
	stub := &stubCollector{
		spots: []spot.Spot{liveSpot},
		meta:  feed.Meta{Enabled: true, FeedCount: 7, SuccessFeeds: 7, Collected: 1},
	}
	planner := NewPlanner(stub, testLogger())

	req := NewRequest(day(2025, 8, 1))
	req.Destination = "Tokyo"

	result, err := planner.Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if !stub.called {
		t.Fatal("collector not called although Live = true")
	}

	var found bool
	for _, c := range result.Candidates {
		if c.ID == liveSpot.ID {
			found = true
		}
	}
	if !found {
		t.Error("live spot missing from candidates")
	}
	if result.FeedMeta.Collected != 1 {
		t.Errorf("FeedMeta.Collected = %d, want 1", result.FeedMeta.Collected)
	}
}

func TestPlanUnknownDestination(t *testing.T) {
	planner := NewPlanner(nil, testLogger())

	req := NewRequest(day(2025, 8, 1))
	req.Destination = "Reykjavik"
	req.Live = false

	_, err := planner.Plan(context.Background(), req)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Plan() error = %v, want ErrNoCandidates", err)
	}
}

func TestPlanNoneAvailable(t *testing.T) {
	// A range-only live spot that ended long before the trip, with curated
	// spots excluded by targeting an unknown city through the collector.
	expired := spot.Spot{
		ID:       "rt-kyoto-0000000000000001",
		City:     "kyoto",
		Name:     "ended exhibition",
		Type:     spot.TypeEvent,
		Schedule: spot.Schedule{Kind: spot.ScheduleRange, Start: "2024-01-01", End: "2024-01-05"},
		Source:   "https://example.com/ended",
	}
	stub := &stubCollector{spots: []spot.Spot{expired}, meta: feed.Meta{Enabled: true}}
	planner := NewPlanner(stub, testLogger())

	req := NewRequest(day(2025, 8, 1))
	req.Destination = "Kyoto"

	_, err := planner.Plan(context.Background(), req)
	if !errors.Is(err, ErrNoneAvailable) {
		t.Errorf("Plan() error = %v, want ErrNoneAvailable", err)
	}
}

func TestPlanRecurringForcesOfficialCheck(t *testing.T) {
	planner := NewPlanner(nil, testLogger())

	// August trip overlaps Comiket's usual months.
	req := Request{
		ID:               "test",
		Destination:      "tokyo",
		Start:            day(2025, 8, 10),
		End:              day(2025, 8, 13),
		Pace:             "balanced",
		IncludeRecurring: true,
	}

	result, err := planner.Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	var checked bool
	for _, c := range result.Candidates {
		if c.Schedule.Kind == spot.ScheduleRecurring {
			if !c.OfficialCheckRequired {
				t.Errorf("recurring candidate %s not flagged for official check", c.ID)
			}
			checked = true
		}
	}
	if !checked {
		t.Fatal("no recurring candidate matched an August trip; Comiket should")
	}
}
