package cmd

import (
	"fmt"

	"github.com/abhisek/vocabcards/internal/vocab"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics and levels",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Topics")
		for _, t := range vocab.AllTopics() {
			fmt.Fprintf(out, "  %-12s %s\n", t, t.DisplayName())
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Levels")
		for _, l := range vocab.AllLevels() {
			fmt.Fprintf(out, "  %-12s %s\n", l, l.DisplayName())
		}
	},
}
