// Package logging provides the logging interface shared by the registry, the
// HTTP server and the front ends. Entries are written through zerolog; the
// TUI uses the no-op logger so nothing draws over the screen.
package logging
