// Package theme holds the vocabcards palette and the shared lipgloss
// styles built from it.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#10B981") // Emerald
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgBar     = lipgloss.Color("#1E1B4B") // Deep indigo
	Border    = lipgloss.Color("#3F3F5A")
)

// Text roles
var (
	Body   = lipgloss.NewStyle().Foreground(Text)
	Strong = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(TextDim)
	Hint   = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	// Headline is the large line on the results screen.
	Headline = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)

// Word cards
var (
	Term          = lipgloss.NewStyle().Foreground(Text).Bold(true)
	TermFocused   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	PartOfSpeech  = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Pronunciation = lipgloss.NewStyle().Foreground(Secondary)
	Playing       = lipgloss.NewStyle().Foreground(Accent)
)

// Frame bars
var (
	Bar = lipgloss.NewStyle().
		Background(BgBar).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)

	Brand = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Badge = lipgloss.NewStyle().Foreground(Accent)
)

// Answer states
var (
	Selected  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Widgets
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Centered returns a full-width centered block in style s.
func Centered(s lipgloss.Style, width int) lipgloss.Style {
	return s.Width(width).Align(lipgloss.Center)
}
