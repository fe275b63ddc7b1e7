package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/config"
	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/screens/history"
	"github.com/abhisek/vocabcards/internal/vocab"
)

func testModel() AppModel {
	settings := config.DefaultSettings()
	settings.Topic = vocab.TopicNature
	return newAppModel(Options{Settings: settings})
}

func TestAppModel_RootIsWordList(t *testing.T) {
	m := testModel()
	assert.Equal(t, "Word List", m.router.Active().Title())
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_EscReachesActiveScreen(t *testing.T) {
	m := testModel()
	m.Update(router.PushScreenMsg{Screen: history.New(nil)})
	require.Equal(t, 2, m.router.Depth())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_EscAtRootIsNoop(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_ViewTooSmall(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "Terminal too small")
}

func TestAppModel_ViewFrame(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	frame := updated.(AppModel).render()

	assert.Contains(t, frame, "vocabcards")
	assert.Contains(t, frame, "Word List")
	assert.Contains(t, frame, "Nature")
}
