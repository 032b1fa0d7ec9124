// Package cli implements the command-line interface for otaple.
//
// The cli package provides the Cobra-based CLI with support for generating a
// trip plan, formatting output (text/JSON/Markdown), and reusing the last
// saved request. It coordinates the plan, feed, config, and storage packages
// to build a ranked candidate set and a day-by-day itinerary.
package cli
