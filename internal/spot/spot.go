package spot

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// Type categorizes a spot.
type Type string

const (
	TypeEvent   Type = "event"
	TypeStore   Type = "store"
	TypeCafe    Type = "cafe"
	TypeComplex Type = "complex"
)

// ScheduleKind discriminates the schedule union.
type ScheduleKind string

const (
	// ScheduleAlways marks a permanent venue with no closing date.
	ScheduleAlways ScheduleKind = "always"
	// ScheduleRolling marks a venue whose program rotates continuously
	// (collab cafes, pop-up floors, live feed items).
	ScheduleRolling ScheduleKind = "rolling"
	// ScheduleRange marks an event with explicit start and end dates.
	ScheduleRange ScheduleKind = "range"
	// ScheduleRecurring marks an annual event known only by its usual months.
	ScheduleRecurring ScheduleKind = "recurring"
)

// Schedule describes when a spot is open or running. Exactly one kind applies;
// the zero value is treated as ScheduleAlways.
type Schedule struct {
	Kind   ScheduleKind `json:"kind"`
	Note   string       `json:"note,omitempty"`
	Start  string       `json:"start,omitempty"`  // range only, "2006-01-02"
	End    string       `json:"end,omitempty"`    // range only, "2006-01-02"
	Months []int        `json:"months,omitempty"` // recurring only, 1-12
}

// Spot represents a catalog or feed-derived place/event candidate.
type Spot struct {
	ID                    string    `json:"id"`
	City                  string    `json:"city"`
	Country               string    `json:"country"`
	Name                  string    `json:"name"`
	Type                  Type      `json:"type"`
	District              string    `json:"district"`
	Tags                  []string  `json:"tags"`
	Schedule              Schedule  `json:"schedule"`
	Franchise             string    `json:"franchise,omitempty"`
	Genre                 string    `json:"genre,omitempty"`
	VenueHint             string    `json:"venue_hint,omitempty"`
	Source                string    `json:"source"`
	MapsQuery             string    `json:"maps_query,omitempty"`
	OfficialCheckRequired bool      `json:"official_check_required,omitempty"`
	Realtime              bool      `json:"realtime,omitempty"`
	RealtimeSource        string    `json:"realtime_source,omitempty"`
	PublishedAt           time.Time `json:"published_at,omitempty"`
}

// Candidate is a Spot annotated with its resolved schedule label,
// confirmation flag, and relevance score, ready for ranking and placement.
type Candidate struct {
	Spot
	ScheduleLabel string `json:"schedule_label"`
	Score         int    `json:"score"`
}

// GenerateID creates a deterministic ID for a feed-derived spot based on the
// city key and the source link. The same article always maps to the same ID.
func GenerateID(city, link string) string {
	h := sha1.New()
	h.Write([]byte(city + "|" + link))
	return fmt.Sprintf("rt-%s-%x", city, h.Sum(nil)[:8])
}
