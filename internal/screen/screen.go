// Package screen defines what the router stacks: word list, quiz,
// results and history all satisfy Screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabcards/internal/ui/layout"
)

// Screen is one page of the app. The app draws the header and footer;
// View only fills the space between them. Every key except ctrl+c
// reaches Update, esc included, so each screen decides what esc means.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen fill the footer with its own key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen show a short status, like quiz progress,
// at the right of the header.
type StatusProvider interface {
	Status() string
}
