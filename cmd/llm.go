package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabcards/internal/llm"
	"github.com/abhisek/vocabcards/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged word-generation and pronunciation calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent provider calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		printLLMEvents(cmd.OutOrStdout(), events)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one call with its captured request and response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("event id must be a number, got %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no event with id %d", id)
		}
		printLLMEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo := s.EventRepo()
		byPurpose, err := repo.LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("usage by purpose: %w", err)
		}
		byModel, err := repo.LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("usage by model: %w", err)
		}
		printUsage(cmd.OutOrStdout(), byPurpose, byModel)
		return nil
	},
}

func printLLMEvents(w io.Writer, events []store.LLMRequestEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "Nothing logged yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tPURPOSE\tKIND\tMODEL\tIN\tOUT\tMS\tRESULT")
	for _, e := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			e.ID, e.Timestamp.Local().Format(timeLayout), e.Purpose, kindOf(e),
			e.Model, e.InputTokens, e.OutputTokens, e.LatencyMs, resultOf(e))
	}
	tw.Flush()
}

func printLLMEvent(w io.Writer, e *store.LLMRequestEvent) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "id\t%d\n", e.ID)
	fmt.Fprintf(tw, "when\t%s\n", e.Timestamp.Local().Format(timeLayout))
	fmt.Fprintf(tw, "provider\t%s\n", e.Provider)
	fmt.Fprintf(tw, "model\t%s\n", e.Model)
	fmt.Fprintf(tw, "purpose\t%s (%s)\n", e.Purpose, kindOf(*e))
	fmt.Fprintf(tw, "tokens\t%d in, %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(tw, "latency\t%dms\n", e.LatencyMs)
	fmt.Fprintf(tw, "result\t%s\n", resultOf(*e))
	tw.Flush()

	for _, part := range []struct{ title, body string }{
		{"request", e.RequestBody},
		{"response", e.ResponseBody},
	} {
		fmt.Fprintf(w, "\n--- %s ---\n", part.title)
		if part.body == "" {
			fmt.Fprintln(w, "(not captured)")
			continue
		}
		fmt.Fprintln(w, part.body)
	}
}

func printUsage(w io.Writer, byPurpose, byModel []store.UsageRow) {
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, "Nothing logged yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PURPOSE\tCALLS\tIN\tOUT\tAVG MS\tFAILED\t")
	var sum store.UsageRow
	for _, r := range byPurpose {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t\n",
			r.Purpose, r.Calls, r.InputTokens, r.OutputTokens, r.AvgLatencyMs, r.Failures)
		sum.Calls += r.Calls
		sum.InputTokens += r.InputTokens
		sum.OutputTokens += r.OutputTokens
		sum.Failures += r.Failures
	}
	fmt.Fprintf(tw, "all\t%d\t%d\t%d\t\t%d\t\n", sum.Calls, sum.InputTokens, sum.OutputTokens, sum.Failures)
	tw.Flush()

	if len(byModel) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MODEL\tCALLS\tIN\tOUT\tUSD\t")
	var total float64
	var unpriced []string
	for _, r := range byModel {
		usd := "?"
		if price := llm.LookupCost(r.Model); price != nil {
			c := price.Cost(r.InputTokens, r.OutputTokens)
			total += c
			usd = formatUSD(c)
		} else {
			unpriced = append(unpriced, r.Model)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t\n", r.Model, r.Calls, r.InputTokens, r.OutputTokens, usd)
	}
	fmt.Fprintf(tw, "all\t\t\t\t%s\t\n", formatUSD(total))
	tw.Flush()

	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nNo pricing for %s; the total leaves them out.\n", strings.Join(unpriced, ", "))
	}
}

func kindOf(e store.LLMRequestEvent) string {
	if e.Kind == "" {
		return "text"
	}
	return e.Kind
}

func resultOf(e store.LLMRequestEvent) string {
	if e.Success {
		return "ok"
	}
	if e.ErrorMessage == "" {
		return "failed"
	}
	return "failed: " + e.ErrorMessage
}

// formatUSD keeps four decimals for sub-cent amounts.
func formatUSD(usd float64) string {
	if usd > 0 && usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose (word-gen or pronounce)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
