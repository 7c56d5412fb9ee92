// Package ui holds the color themes shared by the line-oriented front ends
// (REPL, script runner, summary printer) and the TUI dashboard.
//
// Line output uses ANSI escape codes through the Color* helpers; the TUI uses
// the lipgloss palette returned by GetCurrentTUITheme. Both follow the single
// active theme selected with InitTheme.
package ui
