package ui

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette for terminal output.
type Theme struct {
	// Name is the identifier of the theme.
	Name   string
	Accent lipgloss.TerminalColor
	Error  lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
}

var (
	// DarkTheme is the orange-accented palette used by default.
	DarkTheme = Theme{
		Name:   "dark",
		Accent: lipgloss.Color("#FF8C00"),
		Error:  lipgloss.Color("#FF4444"),
		Dim:    lipgloss.Color("#666666"),
	}

	// NoColorTheme renders text with the terminal's default colors.
	// Used when NO_COLOR is set or FIBITER_NO_COLOR is true.
	NoColorTheme = Theme{
		Name:   "none",
		Accent: lipgloss.NoColor{},
		Error:  lipgloss.NoColor{},
		Dim:    lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used by tests to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme selects the theme from the noColor setting and the NO_COLOR
// environment variable (https://no-color.org/).
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// Styles are lipgloss styles bound to one output writer. The renderer
// detects the writer's color support, so a pipe or buffer gets plain text.
type Styles struct {
	Error lipgloss.Style
	Label lipgloss.Style
	Dim   lipgloss.Style
}

// NewStyles builds Styles for w from the current theme.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	t := GetCurrentTheme()
	return Styles{
		Error: r.NewStyle().Foreground(t.Error).Bold(true),
		Label: r.NewStyle().Foreground(t.Accent),
		Dim:   r.NewStyle().Foreground(t.Dim),
	}
}
