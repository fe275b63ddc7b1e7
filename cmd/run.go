package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabcards/internal/app"
)

// runApp starts the TUI. A missing word source or speech provider is
// reported and the app starts without it; the word list screen then
// explains what to configure.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()

	settings, err := loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{EventRepo: st.EventRepo(), Settings: settings}

	if source, err := newWordSource(ctx, opts.EventRepo, settings); err != nil {
		fmt.Fprintf(stderr, "word lists unavailable: %v\n", err)
	} else {
		opts.Source = source
	}

	if player, err := newPlayer(ctx, opts.EventRepo, settings); err != nil {
		fmt.Fprintf(stderr, "pronunciation unavailable: %v\n", err)
	} else {
		opts.Pronouncer = player
	}

	return app.Run(opts)
}
