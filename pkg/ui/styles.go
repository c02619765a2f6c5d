package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, light and dark variants.
var (
	Normal     = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}
	Subtle     = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}
	BrightGray = lipgloss.AdaptiveColor{Light: "#847A85", Dark: "#979797"}
	Green      = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	Fuchsia    = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	Indigo     = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	Red        = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}

	// instagram color palette
	// https://www.color-hex.com/color-palette/44340
	InstaYellow  = lipgloss.Color("#feda75")
	InstaMagenta = lipgloss.Color("#d62976")
	InstaPurple  = lipgloss.Color("#962fbf")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(InstaPurple).
			Padding(0, 1)

	CounterStyle = lipgloss.NewStyle().Foreground(Green)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)
	HintStyle    = lipgloss.NewStyle().Foreground(BrightGray)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)
	CardTitleStyle = lipgloss.NewStyle().Foreground(Normal).Bold(true)
	PriceStyle     = lipgloss.NewStyle().Foreground(InstaYellow)
	WishlistStyle  = lipgloss.NewStyle().Foreground(InstaMagenta)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(Indigo).
			Padding(0, 2, 0, 1)
	PanelHeadingStyle = lipgloss.NewStyle().Foreground(Fuchsia).Bold(true)
	SelectedStyle     = lipgloss.NewStyle().Foreground(Fuchsia)
	LoadingStyle      = lipgloss.NewStyle().Foreground(Indigo)
)
