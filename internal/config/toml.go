package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/vocabcards/internal/vocab"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Words WordsConfig `toml:"words"`
	Audio AudioConfig `toml:"audio"`
}

// WordsConfig maps word list settings.
type WordsConfig struct {
	Topic *string `toml:"topic"`
	Level *string `toml:"level"`
	Count *int    `toml:"count"`
}

// AudioConfig maps pronunciation settings.
type AudioConfig struct {
	Player *string `toml:"player"`
	Voice  *string `toml:"voice"`
}

// Settings are the effective values after applying the file over defaults.
type Settings struct {
	Topic  vocab.Topic
	Level  vocab.Level
	Count  int
	Player string // empty means the platform default
	Voice  string // empty means the provider default
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Topic: vocab.TopicDailyLife,
		Level: vocab.LevelBeginner,
		Count: vocab.MaxWords,
	}
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Resolve applies the file over DefaultSettings and validates the result.
func (c FileConfig) Resolve() (Settings, error) {
	s := DefaultSettings()
	var errs []error

	if c.Words.Topic != nil {
		t, err := vocab.ParseTopic(*c.Words.Topic)
		if err != nil {
			errs = append(errs, fmt.Errorf("words.topic: %w", err))
		}
		s.Topic = t
	}
	if c.Words.Level != nil {
		l, err := vocab.ParseLevel(*c.Words.Level)
		if err != nil {
			errs = append(errs, fmt.Errorf("words.level: %w", err))
		}
		s.Level = l
	}
	if c.Words.Count != nil {
		n := *c.Words.Count
		if n < 1 || n > vocab.MaxWords {
			errs = append(errs, fmt.Errorf("words.count: must be between 1 and %d, got %d", vocab.MaxWords, n))
		}
		s.Count = n
	}
	if c.Audio.Player != nil {
		s.Player = *c.Audio.Player
	}
	if c.Audio.Voice != nil {
		s.Voice = *c.Audio.Voice
	}

	if err := errors.Join(errs...); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Load reads and resolves the config at path.
func Load(path string) (Settings, error) {
	fc, err := LoadConfig(path)
	if err != nil {
		return DefaultSettings(), err
	}
	return fc.Resolve()
}

// WriteConfig writes s as a TOML file at path, creating parent directories.
// It refuses to overwrite an existing file unless force is set.
func WriteConfig(path string, s Settings, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s.File()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// File converts settings back into their TOML representation.
func (s Settings) File() FileConfig {
	topic, level, count := string(s.Topic), string(s.Level), s.Count
	fc := FileConfig{
		Words: WordsConfig{Topic: &topic, Level: &level, Count: &count},
	}
	if s.Player != "" {
		player := s.Player
		fc.Audio.Player = &player
	}
	if s.Voice != "" {
		voice := s.Voice
		fc.Audio.Voice = &voice
	}
	return fc
}
