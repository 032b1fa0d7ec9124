package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/se0sangh0/otaple/internal/feed"
	"github.com/se0sangh0/otaple/internal/itinerary"
	"github.com/se0sangh0/otaple/internal/plan"
	"github.com/se0sangh0/otaple/internal/spot"
	"github.com/se0sangh0/otaple/internal/storage"
)

func sampleResult() *plan.Result {
	cafe := spot.Candidate{
		Spot: spot.Spot{
			ID:             "rt-tokyo-0011223344556677",
			Name:           "Jujutsu Kaisen Collab Cafe",
			Type:           spot.TypeCafe,
			District:       "Shibuya",
			Tags:           []string{"collab-cafe", "anime"},
			Genre:          "Anime",
			Franchise:      "Jujutsu Kaisen",
			VenueHint:      "Shibuya PARCO",
			Source:         "https://example.com/cafe",
			MapsQuery:      "Tokyo Shibuya PARCO Jujutsu Kaisen",
			RealtimeSource: "Anime News",
			Realtime:       true,

			OfficialCheckRequired: true,
		},
		ScheduleLabel: "live pickup (2025-08-01 article)",
		Score:         88,
	}
	store := spot.Candidate{
		Spot: spot.Spot{
			ID:       "tk-animate-ikebukuro",
			Name:     "Animate Ikebukuro Main Store",
			Type:     spot.TypeStore,
			District: "Ikebukuro",
			Tags:     []string{"anime", "goods"},
			Source:   "https://example.com/animate",
		},
		ScheduleLabel: "always open",
		Score:         32,
	}

	return &plan.Result{
		RequestID:   "req-1",
		Destination: "Tokyo",
		CityKey:     "tokyo",
		Start:       "2025-08-15",
		End:         "2025-08-16",
		Days:        2,
		Candidates:  []spot.Candidate{cafe, store},
		Itinerary: []itinerary.Day{
			{
				Date:     time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
				District: "Shibuya",
				Items:    []itinerary.Stop{{Candidate: cafe, Slot: "10:00"}},
			},
		},
		Briefing: []plan.GenreGroup{
			{
				Genre: "Anime",
				Buckets: []plan.FranchiseBucket{
					{Franchise: "Jujutsu Kaisen", Items: []spot.Candidate{cafe}},
				},
			},
		},
		TypeCounts:  plan.TypeCounts{Total: 2, Cafes: 1, Stores: 1},
		FeedMeta:    feed.Meta{Enabled: true, FeedCount: 7, SuccessFeeds: 6, Collected: 1, Errors: []string{"event feed: timeout"}},
		GeneratedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriteTextOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Tokyo · 2025-08-15 ~ 2025-08-16 · 2 days",
		"Candidates: 2 (events 0, cafes 1, stores 1)",
		"Live collection: 1 spots (feeds 6/7 succeeded), 1 failed",
		"Jujutsu Kaisen Collab Cafe",
		"confirm the official schedule",
		"2025-08-15 (Shibuya)",
		"10:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\noutput:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Live source:") {
		t.Error("text output includes verbose detail without --verbose")
	}
}

func TestWriteTextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"IP: Jujutsu Kaisen", "Venue: Shibuya PARCO", "Live source: Anime News"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q", want)
		}
	}
}

func TestWriteJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	var decoded plan.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.CityKey != "tokyo" || len(decoded.Candidates) != 2 {
		t.Errorf("decoded = %+v, want round-tripped result", decoded)
	}
}

func TestWriteMarkdownOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatMarkdown, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Otaku trip plan - Tokyo",
		"## Genre/IP event briefing",
		"- Jujutsu Kaisen: Shibuya PARCO (1)",
		"**Jujutsu Kaisen Collab Cafe**",
		"https://www.google.com/maps/search/?api=1&query=",
		"### 2025-08-15 (Shibuya)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("xml"), false); err == nil {
		t.Error("WriteOutput() error = nil for unknown format")
	}
}

func TestMapsLink(t *testing.T) {
	got := MapsLink("Tokyo Shibuya PARCO")
	if !strings.HasPrefix(got, mapsSearchURL) {
		t.Errorf("MapsLink() = %q, wrong base", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("MapsLink() = %q, query not escaped", got)
	}
	if MapsLink("") != "" {
		t.Error("MapsLink(\"\") should be empty")
	}
}

func TestRenderLastPlan(t *testing.T) {
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	var buf bytes.Buffer
	if err := renderLastPlan(store, &buf, FormatText, false); err == nil {
		t.Error("renderLastPlan() error = nil with no saved plan")
	}

	if err := store.SavePlan(sampleResult()); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}
	buf.Reset()
	if err := renderLastPlan(store, &buf, FormatText, false); err != nil {
		t.Fatalf("renderLastPlan() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Tokyo · 2025-08-15 ~ 2025-08-16") {
		t.Errorf("re-rendered plan missing header, output:\n%s", out)
	}
	if !strings.Contains(out, "Jujutsu Kaisen Collab Cafe") {
		t.Errorf("re-rendered plan missing candidates, output:\n%s", out)
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{
		"destination", "start", "end", "pace", "include-recurring",
		"collab-priority", "live", "live-max", "select", "format",
		"config", "data-dir", "verbose", "reuse-last", "show-last",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("root command missing --%s flag", name)
		}
	}
}
