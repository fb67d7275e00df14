package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorBgHighlight = lipgloss.Color("#2C313C")

	ColorFgPrimary   = lipgloss.Color("#ABB2BF")
	ColorFgSecondary = lipgloss.Color("#828997")
	ColorFgMuted     = lipgloss.Color("#636B78")
	ColorFgComment   = lipgloss.Color("#5C6370")

	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")

	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	// Menu tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorFgSecondary).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Background(ColorBgHighlight).
			Foreground(ColorFgPrimary).
			Bold(true).
			Padding(0, 1)

	SectionHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorMagenta).
				Bold(true).
				MarginBottom(1)

	// Board panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SelectedPanelStyle = PanelStyle.
				BorderForeground(ColorBlue)

	PanelHeadingStyle = lipgloss.NewStyle().
				Foreground(ColorFgPrimary)

	SelectedHeadingStyle = lipgloss.NewStyle().
				Foreground(ColorFgPrimary).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorFgSecondary).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Underline(true)

	PaidStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	UnpaidStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	// Finance metrics
	MetricStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2).
			MarginRight(1)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorFgPrimary).
				Bold(true)

	// Form
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	// Help overlay styles
	HelpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	// Dimmed/info style for less important messages
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)
