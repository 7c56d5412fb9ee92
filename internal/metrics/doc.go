// Package metrics exposes scoreboard activity to Prometheus and samples Go
// runtime statistics for the TUI status line.
package metrics
