package tui

import "github.com/charmbracelet/lipgloss"

var (
	comicYellow = lipgloss.Color("#FFD600")
	comicBlue   = lipgloss.Color("#2563EB")
	comicRed    = lipgloss.Color("#EF4444")
	comicGreen  = lipgloss.Color("#4ADE80")
	inkMuted    = lipgloss.Color("#6B7280")
	inkBright   = lipgloss.Color("#F9FAFB")

	titleStyle = lipgloss.NewStyle().
			Foreground(comicYellow).
			Bold(true).
			MarginBottom(1)

	headingStyle = lipgloss.NewStyle().
			Foreground(comicBlue).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(inkMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(comicRed).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(comicGreen)

	selectedStyle = lipgloss.NewStyle().
			Foreground(comicYellow).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(inkMuted).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(inkBright).
			Background(comicBlue).
			Bold(true).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(comicYellow).
			Padding(0, 1)

	speechUserStyle = lipgloss.NewStyle().
			Foreground(comicBlue)

	speechModelStyle = lipgloss.NewStyle().
				Foreground(comicYellow)
)

// skillColors maps the stored color tokens to terminal colors.
var skillColors = map[string]lipgloss.Color{
	"bg-comic-accent":    comicYellow,
	"bg-comic-secondary": comicBlue,
	"bg-comic-alert":     comicRed,
	"bg-green-400":       comicGreen,
	"bg-red-500":         lipgloss.Color("#DC2626"),
}
