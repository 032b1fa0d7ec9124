// Package classify infers structured spot attributes from free-form feed text.
//
// All classification functions are pure and total: they operate on the
// concatenated title and description of a feed item plus optional hints from
// the originating query template, and always return a value. When no keyword
// or pattern matches, each function degrades to a fixed fallback (a default
// tag set, the "City Center" district, the "Subculture" genre, or the
// "general/other" franchise sentinel) rather than failing.
//
// Phrase-level guessing (franchise names before collaboration keywords, venue
// names after "at"/"@" markers) is isolated behind the Extractor interface so
// the heuristics can evolve without touching scoring or itinerary output.
package classify
