package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabcards/internal/ui/theme"
)

// Button is a key-bound action drawn as a button. It ignores its key
// and renders dimmed while inactive.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd

	binding key.Binding
}

func NewButton(label, keyName string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
		binding: key.NewBinding(key.WithKeys(keyName), key.WithHelp(keyName, label)),
	}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !b.Active || b.OnPress == nil || !key.Matches(kmsg, b.binding) {
		return b, nil
	}
	return b, b.OnPress()
}

func (b Button) View() string {
	style := theme.ButtonInactive
	if b.Active {
		style = theme.ButtonActive
	}
	return style.Render(b.Label + "  " + b.binding.Help().Key)
}
