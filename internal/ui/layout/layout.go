// Package layout draws the frame around every screen: a header bar with
// the app name, screen title and status, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabcards/internal/ui/theme"
)

// Minimum terminal size. Cards and quiz options wrap badly below it.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small.\n\nvocabcards needs %d x %d, this is %d x %d.",
		MinWidth, MinHeight, width, height)
	return theme.Centered(theme.Body, width).Height(height).Render(msg)
}

// RenderHeader renders the header bar: brand on the left, title in the
// middle and status (may be empty) on the right.
func RenderHeader(title, status string, width int) string {
	left := theme.Brand.Render(" vocabcards")
	center := theme.Body.Render(title)
	right := theme.Badge.Render(status)

	// Two columns of border and one of padding on each side.
	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	line := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return theme.Bar.Width(width).Render(line)
}

// RenderFooter renders the key hint bar.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = theme.Strong.Render(h.Key) + " " + theme.Muted.Render(h.Description)
	}
	return theme.Bar.Width(width).Render(" " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
