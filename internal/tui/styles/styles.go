package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber     = lipgloss.Color("#F59E0B")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
	Green     = lipgloss.Color("#10B981")
	Red       = lipgloss.Color("#EF4444")
	Pink      = lipgloss.Color("#EC4899")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Amber).
			Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Padding(0, 1)

	HeartStyle = lipgloss.NewStyle().Foreground(Pink)
)

// Favorite marker characters
const (
	HeartChar      = "♥"
	HeartEmptyChar = "♡"
)

// Pre-rendered favorite markers
var (
	Heart      = HeartStyle.Render(HeartChar)
	HeartEmpty = DimStyle.Render(HeartEmptyChar)
)
