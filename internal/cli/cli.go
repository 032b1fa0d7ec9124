package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/se0sangh0/otaple/internal/config"
	"github.com/se0sangh0/otaple/internal/feed"
	"github.com/se0sangh0/otaple/internal/logger"
	"github.com/se0sangh0/otaple/internal/plan"
	"github.com/se0sangh0/otaple/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitNoPlan  = 2
)

const dateLayout = "2006-01-02"

var (
	flagDestination    string
	flagStart          string
	flagEnd            string
	flagPace           string
	flagRecurring      bool
	flagCollabPriority bool
	flagLive           bool
	flagLiveMax        int
	flagSelect         []string
	flagFormat         string
	flagConfig         string
	flagDataDir        string
	flagVerbose        bool
	flagReuseLast      bool
	flagShowLast       bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otaple",
		Short: "Plan an otaku trip from curated spots and live event feeds",
		Long: `A CLI tool that builds a day-by-day otaku trip itinerary.
Merges a curated spot catalog with live event feeds, filters by your travel
dates, scores candidates against your interests, and lays them out into
time slots.`,
		RunE: runPlan,
	}

	cmd.Flags().StringVarP(&flagDestination, "destination", "d", "", "Destination city (e.g., Tokyo, 도쿄, Osaka, Seoul)")
	cmd.Flags().StringVar(&flagStart, "start", "", "Trip start date (YYYY-MM-DD, default two weeks out)")
	cmd.Flags().StringVar(&flagEnd, "end", "", "Trip end date (YYYY-MM-DD, default start plus three days)")
	cmd.Flags().StringVar(&flagPace, "pace", "balanced", "Trip pace: relaxed, balanced, or hardcore")
	cmd.Flags().BoolVar(&flagRecurring, "include-recurring", true, "Include annual events known only by month")
	cmd.Flags().BoolVar(&flagCollabPriority, "collab-priority", false, "Boost collab cafes in scoring")
	cmd.Flags().BoolVar(&flagLive, "live", true, "Collect live spots from event feeds")
	cmd.Flags().IntVar(&flagLiveMax, "live-max", feed.DefaultLiveSpots, "Maximum live spots to keep (4-30)")
	cmd.Flags().StringArrayVar(&flagSelect, "select", nil, "Content selection: all, franchise:NAME, or genre:NAME (repeatable)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or markdown")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for saved requests and plans")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flagReuseLast, "reuse-last", false, "Reuse the last saved request, overridden by explicit flags")
	cmd.Flags().BoolVar(&flagShowLast, "show-last", false, "Re-display the last saved plan without planning again")

	return cmd
}

// runPlan is the main command logic
func runPlan(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatMarkdown {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'markdown')", flagFormat)
	}

	level := logger.LevelWarn
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)
	logger.SetDefault(log)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	if flagShowLast {
		return renderLastPlan(store, os.Stdout, format, flagVerbose)
	}

	req, err := buildRequest(cmd, store)
	if err != nil {
		return err
	}

	planner := plan.NewPlanner(feed.NewCollector(cfg.Feed, log), log)

	result, err := planner.Plan(cmd.Context(), req)
	if err != nil {
		if saveErr := store.SaveRequest(req); saveErr != nil {
			log.Warn("saving request failed", logger.Fields{"error": saveErr.Error()})
		}
		switch {
		case errors.Is(err, plan.ErrNoCandidates):
			fmt.Fprintln(os.Stderr, "No candidate spots found. Supported catalog cities are Tokyo, Osaka, and Seoul; for other cities keep live collection on.")
			os.Exit(ExitNoPlan)
		case errors.Is(err, plan.ErrNoneAvailable):
			fmt.Fprintln(os.Stderr, "Candidates exist but none run during your dates. Widen the trip window or include recurring events.")
			os.Exit(ExitNoPlan)
		}
		return err
	}

	if err := store.SaveRequest(req); err != nil {
		log.Warn("saving request failed", logger.Fields{"error": err.Error()})
	}
	if err := store.SavePlan(result); err != nil {
		log.Warn("saving plan failed", logger.Fields{"error": err.Error()})
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// renderLastPlan re-renders the last saved plan snapshot without running
// the pipeline again.
func renderLastPlan(store *storage.Storage, w io.Writer, format OutputFormat, verbose bool) error {
	result, ok, err := store.LoadPlan()
	if err != nil {
		return fmt.Errorf("loading last plan: %w", err)
	}
	if !ok {
		return errors.New("no saved plan yet; generate one first")
	}
	return WriteOutput(w, result, format, verbose)
}

// buildRequest assembles the plan request from defaults, the optionally
// reused last request, and explicit flags. Explicit flags always win.
func buildRequest(cmd *cobra.Command, store *storage.Storage) (plan.Request, error) {
	req := plan.NewRequest(time.Now())

	if flagReuseLast {
		last, ok, err := store.LoadRequest()
		if err != nil {
			return req, fmt.Errorf("loading last request: %w", err)
		}
		if ok {
			id := req.ID
			req = last
			req.ID = id
		}
	}

	if cmd.Flags().Changed("destination") || !flagReuseLast {
		req.Destination = strings.TrimSpace(flagDestination)
	}
	if flagStart != "" {
		start, err := time.Parse(dateLayout, flagStart)
		if err != nil {
			return req, fmt.Errorf("invalid --start date %q: use YYYY-MM-DD", flagStart)
		}
		req.Start = start
		if flagEnd == "" && !flagReuseLast {
			req.End = start.AddDate(0, 0, 3)
		}
	}
	if flagEnd != "" {
		end, err := time.Parse(dateLayout, flagEnd)
		if err != nil {
			return req, fmt.Errorf("invalid --end date %q: use YYYY-MM-DD", flagEnd)
		}
		req.End = end
	}
	if cmd.Flags().Changed("pace") || !flagReuseLast {
		req.Pace = flagPace
	}
	if cmd.Flags().Changed("include-recurring") || !flagReuseLast {
		req.IncludeRecurring = flagRecurring
	}
	if cmd.Flags().Changed("collab-priority") || !flagReuseLast {
		req.CollabPriority = flagCollabPriority
	}
	if cmd.Flags().Changed("live") || !flagReuseLast {
		req.Live = flagLive
	}
	if cmd.Flags().Changed("live-max") || !flagReuseLast {
		req.LiveMax = feed.ClampLiveMax(flagLiveMax)
	}
	if cmd.Flags().Changed("select") || !flagReuseLast {
		req.Selection = flagSelect
	}

	return req, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
