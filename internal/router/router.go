// Package router keeps the screen stack: word list at the bottom, then
// quiz or history, then results. Screens navigate by returning one of
// the messages below as a command.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabcards/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct{ Screen screen.Screen }

// PopScreenMsg goes back one screen. The root screen is never popped.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen, keeping the depth. A finished
// quiz replaces itself with its results this way.
type ReplaceScreenMsg struct{ Screen screen.Screen }

// PopToRootMsg returns to the word list.
type PopToRootMsg struct{}

// Open returns a command that pushes s.
func Open(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Swap returns a command that replaces the top screen with s.
func Swap(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Back returns a command that pops one screen.
func Back() tea.Msg { return PopScreenMsg{} }

// Home returns to the root screen.
func Home() tea.Msg { return PopToRootMsg{} }

// Router owns the stack. It always holds at least the root screen.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop drops the top screen unless it is the root.
func (r *Router) Pop() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Replace puts s in place of the top screen and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// PopToRoot drops everything above the root.
func (r *Router) PopToRoot() {
	r.stack = r.stack[:1]
}

// Active is the screen that receives input.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and sends everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case PopToRootMsg:
		r.PopToRoot()
		return nil
	}

	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
