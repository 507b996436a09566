// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output, taken from the Ubuntu brand colors.
const (
	// ColorPrimary is Ubuntu orange - used for titles and headers.
	ColorPrimary = lipgloss.Color("#E95420")

	// ColorMuted is warm grey - used for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#AEA79F")

	// ColorSuccess is green - used for success states and checkmarks.
	ColorSuccess = lipgloss.Color("#0E8420")

	// ColorError is red - used for errors and failed checks.
	ColorError = lipgloss.Color("#C7162B")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F99B11")

	// ColorHighlight is aubergine - used for keys and commands.
	ColorHighlight = lipgloss.Color("#A76EB6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// KeyStyle is for setting keys and command names.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
