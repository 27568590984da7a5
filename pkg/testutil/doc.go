// Package testutil provides test infrastructure for doot: an in-memory
// types.FS implementation with symlink support and error injection, plus
// small helpers for building fixture trees.
package testutil
