// Package style centralizes doot's lipgloss styles so every renderer
// shares one palette.
package style
