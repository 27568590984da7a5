// Package types holds the value types and interfaces shared across doot's
// packages: the FS abstraction, scan entries, and warnings. It has no
// dependencies on other doot packages so anything may import it.
package types
