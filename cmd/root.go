package cmd

import (
	"github.com/abhisek/vocabcards/internal/config"
	"github.com/abhisek/vocabcards/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vocabcards",
	Short: "AI vocabulary flashcards for the terminal",
	Long:  "vocabcards generates topic-based English word lists with an LLM, reads words aloud, and quizzes you on their definitions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCABCARDS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/vocabcards/config.toml)")

	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VOCABCARDS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveConfigPath returns the --config flag or the default XDG path.
func resolveConfigPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

// loadSettings reads the config file. A missing file yields defaults.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	return config.Load(resolveConfigPath(cmd))
}

// openStore opens the event log selected by --db.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
