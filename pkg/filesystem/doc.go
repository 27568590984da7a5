// Package filesystem provides the production implementation of types.FS,
// backed by the os package. Tests use testutil.MemoryFS instead.
package filesystem
