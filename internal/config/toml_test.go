package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/vocab"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)

	s, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeFile(t, `
[words]
topic = "Food & Cooking"
level = "advanced"
count = 6

[audio]
player = "mpv --really-quiet"
voice = "Puck"
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Topic:  vocab.TopicFood,
		Level:  vocab.LevelAdvanced,
		Count:  6,
		Player: "mpv --really-quiet",
		Voice:  "Puck",
	}, s)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	s, err := Load(writeFile(t, "[words]\nlevel = \"intermediate\"\n"))
	require.NoError(t, err)
	assert.Equal(t, vocab.TopicDailyLife, s.Topic)
	assert.Equal(t, vocab.LevelIntermediate, s.Level)
	assert.Equal(t, vocab.MaxWords, s.Count)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad topic", "[words]\ntopic = \"sports\"\n"},
		{"bad level", "[words]\nlevel = \"expert\"\n"},
		{"count too large", "[words]\ncount = 11\n"},
		{"count zero", "[words]\ncount = 0\n"},
		{"unknown key", "[words]\ncolour = \"red\"\n"},
		{"syntax", "[words\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
			assert.Equal(t, DefaultSettings(), s)
		})
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := Settings{Topic: vocab.TopicTravel, Level: vocab.LevelBeginner, Count: 8, Player: "afplay"}

	require.NoError(t, WriteConfig(path, want, false))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Error(t, WriteConfig(path, want, false), "refuses to overwrite")
	assert.NoError(t, WriteConfig(path, DefaultSettings(), true))
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	assert.Equal(t, filepath.Join("/tmp/cfg", "vocabcards", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/tmp/data", "vocabcards"), DefaultDataDir())
}
