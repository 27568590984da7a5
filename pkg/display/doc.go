// Package display renders plans, diffs, reports, and configuration
// listings for the terminal. All renderers return strings; commands decide
// where they go.
package display
