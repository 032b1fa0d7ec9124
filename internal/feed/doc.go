// Package feed collects live spot candidates from syndicated news feeds.
//
// Collection fans out one query per template (four city-wide queries plus one
// per focus franchise). Each query tries a primary retrieval path (an
// RSS-to-JSON conversion API) and, only on its failure, a raw-XML fallback
// through a passthrough proxy; both paths are bounded by a cancellable
// timeout. The collection always waits for every query to settle: per-feed
// failures accumulate into Meta instead of aborting the run.
//
// Accepted items pass through the classifier to become Spots. Admission is
// strict: items with no title, no link, an unparsable publish date, or a
// publish date older than the recency window are dropped before
// classification.
package feed
