// Package catalog holds the curated spot dataset and combines it with
// feed-derived spots.
//
// The curated data is a fixed, versioned set of well-known otaku destinations
// for Tokyo, Osaka, and Seoul, loaded once per process. Merge unions curated
// and live spots while dropping duplicates by ID and by source link, with
// curated entries winning over live duplicates.
package catalog
