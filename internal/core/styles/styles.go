// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#89b4fa"),
		Secondary:  lipgloss.Color("#94e2d5"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7086"),
		Surface:    lipgloss.Color("#313244"),
		Success:    lipgloss.Color("#a6e3a1"),
		Warning:    lipgloss.Color("#f9e2af"),
		Error:      lipgloss.Color("#f38ba8"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Style exports.
var (
	// CLI styles.
	SuccessStyle lipgloss.Style
	WarnStyle    lipgloss.Style

	// TUI styles.
	TitleStyle           lipgloss.Style
	FacePanelStyle       lipgloss.Style
	FacePanelBusyStyle   lipgloss.Style
	TriggerStyle         lipgloss.Style
	TriggerDisabledStyle lipgloss.Style
	HistoryLabelStyle    lipgloss.Style
	HistoryEntryStyle    lipgloss.Style
	HistoryLatestStyle   lipgloss.Style
	StatusWarnStyle      lipgloss.Style
	HelpStyle            lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	WarnStyle = lipgloss.NewStyle().
		Foreground(p.Warning)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	FacePanelStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Padding(0, 2)
	FacePanelBusyStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Padding(0, 2)

	TriggerStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Primary).
		Foreground(p.Surface).
		Bold(true)
	TriggerDisabledStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Muted)

	HistoryLabelStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	HistoryEntryStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	HistoryLatestStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	StatusWarnStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
