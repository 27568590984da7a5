// Package config loads and validates doot's configuration file: the
// version gate, the materialization mode, and the group/plan/resolver
// tables every command starts from.
package config
