package ui

import "github.com/charmbracelet/lipgloss"

// fheforge palette, high-contrast colors tuned for dark terminal backgrounds
const (
	ColorWhite = "#FFFFFF"

	// Gray scale
	ColorGray300 = "#D1D6DE"
	ColorGray500 = "#6C7585"
	ColorGray600 = "#4E5560"
	ColorGray800 = "#212732"

	// Gold, the primary accent
	ColorGold300 = "#FFE08A"
	ColorGold400 = "#FFD54A"
	ColorGold500 = "#F5C518"
	ColorGold600 = "#D4A80E"

	// Green
	ColorGreen400 = "#63D78E"

	// Red
	ColorRed400 = "#F87171"

	// Yellow (warnings, distinct from the gold accent)
	ColorYellow400 = "#F9C424"

	// Teal
	ColorTeal400 = "#80D0C3"
)

var (
	// TitleStyle - for main headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorGold500))

	// SuccessStyle - for success messages
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorGreen400))

	// ErrorStyle - for error messages
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorRed400))

	// WarningStyle - for warnings
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorYellow400))

	// DimStyle - for less important/secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray500))

	// BoldStyle - plain bold
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// CommandStyle - for CLI commands
	CommandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorGold400))

	// CodeStyle - for code snippets and file paths
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGold300))

	// URLStyle - for links
	URLStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(ColorTeal400))
)
