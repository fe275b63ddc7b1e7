package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabcards/internal/ui/theme"
)

// NoticeTTL is how long a transient notice stays on screen.
const NoticeTTL = 4 * time.Second

// Notice is a message shown to the learner. A blocking notice stays until
// the next key press; a transient one clears itself after NoticeTTL.
type Notice struct {
	Text     string
	Blocking bool

	// seq tells an expiry tick which notice it belongs to.
	seq int
}

// NoticeExpiredMsg clears the transient notice with the matching sequence.
type NoticeExpiredMsg struct {
	Seq int
}

// Active reports whether a notice is showing.
func (n Notice) Active() bool {
	return n.Text != ""
}

// ShowBlocking replaces the notice with a blocking one.
func (n *Notice) ShowBlocking(text string) {
	n.seq++
	n.Text = text
	n.Blocking = true
}

// ShowTransient replaces the notice with one that expires on its own.
func (n *Notice) ShowTransient(text string) tea.Cmd {
	n.seq++
	n.Text = text
	n.Blocking = false
	seq := n.seq
	return tea.Tick(NoticeTTL, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{Seq: seq}
	})
}

// Expire clears the notice if msg belongs to it.
func (n *Notice) Expire(msg NoticeExpiredMsg) {
	if msg.Seq == n.seq && !n.Blocking {
		n.Text = ""
	}
}

// Dismiss clears the notice.
func (n *Notice) Dismiss() {
	n.seq++
	n.Text = ""
	n.Blocking = false
}

// View renders the notice box, or an empty string when none is showing.
func (n Notice) View(width int) string {
	if !n.Active() {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(width).
		Padding(0, 1)
	if n.Blocking {
		text := n.Text + "\n" + theme.Hint.Render("Press any key to continue")
		return style.BorderForeground(theme.Error).Foreground(theme.Error).Render(text)
	}
	return style.BorderForeground(theme.Accent).Foreground(theme.Accent).Render(n.Text)
}
