package router

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabcards/internal/screen"
)

// page is a screen that counts Init calls and remembers its last message.
type page struct {
	name  string
	inits int
	last  tea.Msg
}

func (p *page) Init() tea.Cmd                               { p.inits++; return nil }
func (p *page) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { p.last = msg; return p, nil }
func (p *page) View(int, int) string                        { return p.name }
func (p *page) Title() string                               { return p.name }

// trail renders the stack bottom to top, e.g. "list>quiz".
func trail(r *Router) string {
	names := make([]string, len(r.stack))
	for i, s := range r.stack {
		names[i] = s.Title()
	}
	return strings.Join(names, ">")
}

func TestRouter_Navigation(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{"open quiz", []tea.Msg{PushScreenMsg{&page{name: "quiz"}}}, "list>quiz"},
		{"back from quiz", []tea.Msg{PushScreenMsg{&page{name: "quiz"}}, PopScreenMsg{}}, "list"},
		{"back at root", []tea.Msg{PopScreenMsg{}, PopScreenMsg{}}, "list"},
		{"quiz becomes results", []tea.Msg{PushScreenMsg{&page{name: "quiz"}}, ReplaceScreenMsg{&page{name: "results"}}}, "list>results"},
		{"results home", []tea.Msg{
			PushScreenMsg{&page{name: "quiz"}},
			ReplaceScreenMsg{&page{name: "results"}},
			PopToRootMsg{},
		}, "list"},
		{"replace root", []tea.Msg{ReplaceScreenMsg{&page{name: "other"}}}, "other"},
		{"history over history", []tea.Msg{PushScreenMsg{&page{name: "history"}}, PushScreenMsg{&page{name: "history"}}}, "list>history>history"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&page{name: "list"})
			for _, msg := range tt.msgs {
				r.Update(msg)
			}
			if got := trail(r); got != tt.want {
				t.Errorf("stack = %s, want %s", got, tt.want)
			}
			if r.Depth() != strings.Count(tt.want, ">")+1 {
				t.Errorf("depth = %d", r.Depth())
			}
		})
	}
}

func TestRouter_InitsIncomingScreens(t *testing.T) {
	root, quiz, results := &page{name: "list"}, &page{name: "quiz"}, &page{name: "results"}
	r := New(root)

	r.Update(PushScreenMsg{quiz})
	r.Update(ReplaceScreenMsg{results})
	r.Update(PopToRootMsg{})

	if root.inits != 0 || quiz.inits != 1 || results.inits != 1 {
		t.Errorf("inits: root=%d quiz=%d results=%d", root.inits, quiz.inits, results.inits)
	}
}

func TestRouter_OnlyActiveScreenSeesInput(t *testing.T) {
	root, top := &page{name: "list"}, &page{name: "history"}
	r := New(root)
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if _, ok := top.last.(tea.WindowSizeMsg); !ok {
		t.Errorf("top screen got %T", top.last)
	}
	if root.last != nil {
		t.Errorf("root screen got %T", root.last)
	}
	if r.View(80, 24) != "history" {
		t.Errorf("view = %q", r.View(80, 24))
	}
}

func TestCommands(t *testing.T) {
	next := &page{name: "quiz"}

	if msg, ok := Open(next)().(PushScreenMsg); !ok || msg.Screen != next {
		t.Errorf("Open produced %#v", msg)
	}
	if msg, ok := Swap(next)().(ReplaceScreenMsg); !ok || msg.Screen != next {
		t.Errorf("Swap produced %#v", msg)
	}
	if _, ok := Back().(PopScreenMsg); !ok {
		t.Error("Back should pop")
	}
	if _, ok := Home().(PopToRootMsg); !ok {
		t.Error("Home should pop to root")
	}
}
