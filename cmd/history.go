package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/vocabcards/internal/vocab"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show recent quiz results, or the answers of one quiz",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		repo := st.EventRepo()

		if len(args) == 1 {
			answers, err := repo.QuizAnswers(ctx, args[0])
			if err != nil {
				return fmt.Errorf("query answers: %w", err)
			}
			if len(answers) == 0 {
				return fmt.Errorf("no answers recorded for quiz %s", args[0])
			}
			for _, a := range answers {
				mark := "✓"
				if !a.Correct {
					mark = "✗"
				}
				fmt.Fprintf(out, "%2d. %s %-20s %s\n", a.QuestionIndex+1, mark, a.Term, a.Chosen)
				if !a.Correct {
					fmt.Fprintf(out, "       answer: %s\n", a.CorrectAnswer)
				}
			}
			return nil
		}

		quizzes, err := repo.RecentQuizResults(ctx, limit)
		if err != nil {
			return fmt.Errorf("query quizzes: %w", err)
		}
		if len(quizzes) == 0 {
			fmt.Fprintln(out, "No quizzes yet.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-16s  %-16s  %-12s  %7s  %4s\n",
			"Session", "Finished", "Topic", "Level", "Score", "%")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, q := range quizzes {
			fmt.Fprintf(out, "%-36s  %-16s  %-16s  %-12s  %3d/%-3d  %3d%%\n",
				q.SessionID,
				q.Timestamp.Local().Format("2006-01-02 15:04"),
				vocab.Topic(q.Topic).DisplayName(),
				q.Level,
				q.Score, q.Total, q.Percentage)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show")
}
