// Package ui provides the color themes and lipgloss styles used when fibiter
// writes diagnostics to a terminal.
package ui
