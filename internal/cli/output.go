package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/se0sangh0/otaple/internal/classify"
	"github.com/se0sangh0/otaple/internal/plan"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
)

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *plan.Result, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatMarkdown:
		return writeMarkdown(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *plan.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *plan.Result, verbose bool) error {
	fmt.Fprintf(w, "%s · %s ~ %s · %d days\n", result.Destination, result.Start, result.End, result.Days)
	fmt.Fprintf(w, "Candidates: %d (events %d, cafes %d, stores %d)\n",
		result.TypeCounts.Total, result.TypeCounts.Events, result.TypeCounts.Cafes, result.TypeCounts.Stores)
	fmt.Fprintln(w, feedSummary(result))

	if len(result.Briefing) > 0 {
		fmt.Fprintln(w, "\nEvent briefing:")
		for _, group := range result.Briefing {
			fmt.Fprintf(w, "  %s\n", group.Genre)
			for _, bucket := range group.Buckets {
				place := "-"
				if len(bucket.Items) > 0 {
					if bucket.Items[0].VenueHint != "" {
						place = bucket.Items[0].VenueHint
					} else if bucket.Items[0].District != "" {
						place = bucket.Items[0].District
					}
				}
				fmt.Fprintf(w, "    %s: %s (%d)\n", bucket.Franchise, place, len(bucket.Items))
			}
		}
	}

	fmt.Fprintln(w, "\nRecommended spots:")
	for _, c := range result.Candidates {
		fmt.Fprintf(w, "  [%3d] %s (%s, %s)\n", c.Score, c.Name, c.Type, c.District)
		fmt.Fprintf(w, "        %s\n", c.ScheduleLabel)
		if verbose {
			if c.Genre != "" {
				fmt.Fprintf(w, "        Genre: %s\n", c.Genre)
			}
			if c.Franchise != "" && c.Franchise != classify.FranchiseUnknown {
				fmt.Fprintf(w, "        IP: %s\n", c.Franchise)
			}
			if c.VenueHint != "" {
				fmt.Fprintf(w, "        Venue: %s\n", c.VenueHint)
			}
			if len(c.Tags) > 0 {
				fmt.Fprintf(w, "        Tags: %s\n", strings.Join(c.Tags, ", "))
			}
			fmt.Fprintf(w, "        Link: %s\n", c.Source)
			if c.RealtimeSource != "" {
				fmt.Fprintf(w, "        Live source: %s\n", c.RealtimeSource)
			}
		}
		if c.OfficialCheckRequired {
			fmt.Fprintln(w, "        Note: confirm the official schedule before visiting")
		}
	}

	fmt.Fprintln(w, "\nDaily plan:")
	for _, day := range result.Itinerary {
		fmt.Fprintf(w, "  %s (%s)\n", day.Date.Format("2006-01-02"), day.District)
		for _, stop := range day.Items {
			fmt.Fprintf(w, "    %s  %s (%s)\n", stop.Slot, stop.Name, stop.Type)
		}
	}
	return nil
}

// feedSummary describes the live-collection outcome in one line.
func feedSummary(result *plan.Result) string {
	meta := result.FeedMeta
	if !meta.Enabled {
		return "Live collection: off"
	}
	base := fmt.Sprintf("Live collection: %d spots (feeds %d/%d succeeded)",
		meta.Collected, meta.SuccessFeeds, meta.FeedCount)
	if len(meta.Errors) > 0 {
		return fmt.Sprintf("%s, %d failed", base, len(meta.Errors))
	}
	return base
}
