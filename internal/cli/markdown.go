package cli

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/se0sangh0/otaple/internal/classify"
	"github.com/se0sangh0/otaple/internal/plan"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// MapsLink builds a Google Maps search link for a candidate's maps query.
func MapsLink(query string) string {
	if query == "" {
		return ""
	}
	return mapsSearchURL + url.QueryEscape(query)
}

// writeMarkdown renders the plan as a shareable Markdown document.
func writeMarkdown(w io.Writer, result *plan.Result) error {
	fmt.Fprintf(w, "# Otaku trip plan - %s\n\n", result.Destination)
	fmt.Fprintf(w, "- Dates: %s ~ %s (%d days)\n", result.Start, result.End, result.Days)
	fmt.Fprintf(w, "- %s\n", feedSummary(result))
	fmt.Fprintln(w)

	if len(result.Briefing) > 0 {
		fmt.Fprintln(w, "## Genre/IP event briefing")
		for _, group := range result.Briefing {
			fmt.Fprintf(w, "- %s\n", group.Genre)
			for _, bucket := range group.Buckets {
				place := "-"
				if len(bucket.Items) > 0 {
					if bucket.Items[0].VenueHint != "" {
						place = bucket.Items[0].VenueHint
					} else if bucket.Items[0].District != "" {
						place = bucket.Items[0].District
					}
				}
				fmt.Fprintf(w, "  - %s: %s (%d)\n", bucket.Franchise, place, len(bucket.Items))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "## Recommended spots")
	for _, c := range result.Candidates {
		fmt.Fprintf(w, "- **%s** (%s)\n", c.Name, c.Type)
		fmt.Fprintf(w, "  - District: %s\n", c.District)
		fmt.Fprintf(w, "  - Schedule: %s\n", c.ScheduleLabel)
		if c.Genre != "" {
			fmt.Fprintf(w, "  - Genre: %s\n", c.Genre)
		}
		if c.Franchise != "" && c.Franchise != classify.FranchiseUnknown {
			fmt.Fprintf(w, "  - IP: %s\n", c.Franchise)
		}
		if c.VenueHint != "" {
			fmt.Fprintf(w, "  - Venue hint: %s\n", c.VenueHint)
		}
		if len(c.Tags) > 0 {
			fmt.Fprintf(w, "  - Tags: %s\n", strings.Join(c.Tags, ", "))
		}
		fmt.Fprintf(w, "  - Link: %s\n", c.Source)
		if link := MapsLink(c.MapsQuery); link != "" {
			fmt.Fprintf(w, "  - Map: %s\n", link)
		}
		if c.RealtimeSource != "" {
			fmt.Fprintf(w, "  - Live source: %s\n", c.RealtimeSource)
		}
		if c.OfficialCheckRequired {
			fmt.Fprintln(w, "  - Note: confirm the official schedule before visiting")
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Daily plan")
	for _, day := range result.Itinerary {
		fmt.Fprintf(w, "### %s (%s)\n", day.Date.Format("2006-01-02"), day.District)
		for _, stop := range day.Items {
			fmt.Fprintf(w, "- %s %s (%s)\n", stop.Slot, stop.Name, stop.Type)
		}
	}
	return nil
}
