// Package storage provides JSON-based persistence for planning runs.
//
// The storage package keeps the last submitted request (request.json) and the
// last generated plan (plan.json) in a local data directory, so a run can be
// repeated or re-displayed without typing the parameters again. Saved plans
// are display snapshots only; planning always recomputes from scratch.
// The default storage location is ~/.local/share/otaple/.
package storage
