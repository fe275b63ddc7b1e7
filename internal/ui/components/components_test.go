package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoice_NumberKeySubmits(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"})

	m, _ = m.Update(keyPress('3'))

	chosen, ok := m.Chosen()
	require.True(t, ok)
	assert.Equal(t, "c", chosen)
	assert.Equal(t, 2, m.ChosenIndex)
}

func TestMultiChoice_NumberKeyOutOfRange(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b"})

	m, _ = m.Update(keyPress('4'))

	assert.False(t, m.Submitted)
	_, ok := m.Chosen()
	assert.False(t, ok)
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c"})

	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, m.Selected, "cursor stops at the last option")

	m, _ = m.Update(specialKey(tea.KeyUp))
	m, _ = m.Update(specialKey(tea.KeyEnter))

	chosen, ok := m.Chosen()
	require.True(t, ok)
	assert.Equal(t, "b", chosen)
}

func TestMultiChoice_IgnoresKeysAfterSubmit(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"})
	m, _ = m.Update(keyPress('1'))
	m, _ = m.Update(keyPress('2'))

	chosen, _ := m.Chosen()
	assert.Equal(t, "a", chosen)
}

func TestMultiChoice_ViewListsOptions(t *testing.T) {
	m := NewMultiChoice([]string{"a feline", "a canine"})
	m, _ = m.Update(keyPress('2'))
	m.Reveal("a feline")

	view := m.View(60)
	assert.Contains(t, view, "1) ")
	assert.Contains(t, view, "a feline")
	assert.Contains(t, view, "a canine")
}

func TestNotice_TransientExpires(t *testing.T) {
	var n Notice
	cmd := n.ShowTransient("audio failed")
	require.NotNil(t, cmd)
	assert.True(t, n.Active())

	n.Expire(NoticeExpiredMsg{Seq: n.seq})
	assert.False(t, n.Active())
}

func TestNotice_StaleExpiryIgnored(t *testing.T) {
	var n Notice
	n.ShowTransient("first")
	stale := n.seq
	n.ShowTransient("second")

	n.Expire(NoticeExpiredMsg{Seq: stale})
	assert.Equal(t, "second", n.Text)
}

func TestNotice_BlockingSurvivesExpiry(t *testing.T) {
	var n Notice
	n.ShowTransient("audio failed")
	seq := n.seq
	n.ShowBlocking("no API key")

	n.Expire(NoticeExpiredMsg{Seq: seq})
	n.Expire(NoticeExpiredMsg{Seq: n.seq})
	assert.True(t, n.Active())

	n.Dismiss()
	assert.False(t, n.Active())
	assert.Empty(t, n.View(40))
}

func TestSelector_Wraps(t *testing.T) {
	s := NewSelector("Level", []string{"a", "b", "c"}, 0)

	s.Prev()
	assert.Equal(t, 2, s.Index)
	s.Next()
	assert.Equal(t, 0, s.Index)
	s.Next()
	assert.Equal(t, 1, s.Index)
}

func TestSelector_OutOfRangeStart(t *testing.T) {
	s := NewSelector("Topic", []string{"a", "b"}, 5)
	assert.Equal(t, 0, s.Index)
	assert.Contains(t, s.View("←/→"), "a")
}

func TestTruncate_WideRunes(t *testing.T) {
	got := Truncate("초급 단어 목록입니다", 9)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 9)
	assert.True(t, strings.HasSuffix(got, "…"))

	assert.Equal(t, "short", Truncate("short", 10))
	assert.Empty(t, Truncate("anything", 0))
}

func TestWordCard_Expanded(t *testing.T) {
	e := vocab.Entry{
		Term:          "serene",
		Definition:    "calm and peaceful",
		Example:       "The lake was serene at dawn.",
		PartOfSpeech:  "adjective",
		Pronunciation: "/səˈriːn/",
	}

	collapsed := WordCard(e, CardState{}, 60)
	assert.Contains(t, collapsed, "serene")
	assert.NotContains(t, collapsed, "lake")

	expanded := WordCard(e, CardState{Expanded: true}, 60)
	assert.Contains(t, expanded, "lake")
	assert.Contains(t, expanded, "/səˈriːn/")
}

func TestButton_FiresOnlyWhenActive(t *testing.T) {
	pressed := 0
	b := NewButton("Quiz", "tab", false, func() tea.Cmd {
		pressed++
		return nil
	})

	b.Update(specialKey(tea.KeyTab))
	assert.Equal(t, 0, pressed)

	b.Active = true
	b.Update(specialKey(tea.KeyTab))
	b.Update(keyPress('x'))
	assert.Equal(t, 1, pressed)
}

func TestProgressBar_Fraction(t *testing.T) {
	assert.Equal(t, 0.0, NewProgressBar(0, 0, 40).Fraction())
	assert.Equal(t, 0.5, NewProgressBar(2, 4, 40).Fraction())
	assert.Equal(t, 1.0, NewProgressBar(5, 4, 40).Fraction())
	assert.Contains(t, NewProgressBar(1, 4, 40).View(), "1/4")
}
