package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sayCmd = &cobra.Command{
	Use:   "say <text>",
	Short: "Pronounce a word or phrase",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		player, err := newPlayer(cmd.Context(), st.EventRepo(), settings)
		if err != nil {
			return fmt.Errorf("speech not configured: %w", err)
		}
		return player.Play(cmd.Context(), strings.Join(args, " "))
	},
}
