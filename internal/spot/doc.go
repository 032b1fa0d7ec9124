// Package spot provides the core types for catalog and feed-derived trip
// candidates.
//
// A Spot is a place or event that can appear in a plan: a permanent store,
// a collaboration cafe, a pop-up, or a dated event. Each spot carries a
// schedule expressed as a tagged union (always, rolling, range, recurring)
// and, for feed-derived spots, a deterministic SHA1-based ID generated from
// the city key and source link so repeated ingestion of the same article is
// idempotent.
package spot
