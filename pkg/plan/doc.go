// Package plan classifies scanned source and destination trees into
// per-file changes and aggregates them into the plan a sync invocation
// previews, confirms, and applies.
package plan
