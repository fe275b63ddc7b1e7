package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/vocabcards/internal/vocab"
	"github.com/abhisek/vocabcards/internal/wordsource"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Generate a word list and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		topic, level, err := topicAndLevel(cmd, settings.Topic, settings.Level)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		source, err := newWordSource(cmd.Context(), st.EventRepo(), settings)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		words, err := source.Generate(cmd.Context(), wordsource.Request{
			Topic: topic,
			Level: level,
			Count: count,
		})
		if err != nil {
			return fmt.Errorf("generate words: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(words)
		}
		printWords(out, topic, level, words)
		return nil
	},
}

func printWords(w io.Writer, topic vocab.Topic, level vocab.Level, words []vocab.Entry) {
	if len(words) == 0 {
		fmt.Fprintln(w, "No words came back. Try again.")
		return
	}
	fmt.Fprintf(w, "%s · %s\n\n", topic.DisplayName(), level.DisplayName())
	for i, e := range words {
		head := e.Term
		if e.PartOfSpeech != "" {
			head += " (" + e.PartOfSpeech + ")"
		}
		if e.HasPronunciation() {
			head += "  " + e.Pronunciation
		}
		fmt.Fprintf(w, "%2d. %s\n", i+1, head)
		fmt.Fprintf(w, "    %s\n", e.Definition)
		if e.Example != "" {
			fmt.Fprintf(w, "    e.g. %s\n", e.Example)
		}
	}
}

// topicAndLevel reads --topic and --level, falling back to the defaults.
func topicAndLevel(cmd *cobra.Command, topic vocab.Topic, level vocab.Level) (vocab.Topic, vocab.Level, error) {
	if s, _ := cmd.Flags().GetString("topic"); s != "" {
		t, err := vocab.ParseTopic(s)
		if err != nil {
			return "", "", err
		}
		topic = t
	}
	if s, _ := cmd.Flags().GetString("level"); s != "" {
		l, err := vocab.ParseLevel(s)
		if err != nil {
			return "", "", err
		}
		level = l
	}
	return topic, level, nil
}

func addTopicFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("topic", "t", "", "Topic (see `vocabcards topics`)")
	cmd.Flags().StringP("level", "l", "", "Level: beginner, intermediate or advanced")
}

func init() {
	addTopicFlags(wordsCmd)
	wordsCmd.Flags().IntP("count", "n", 0, "Number of words (1-10, default from config)")
	wordsCmd.Flags().Bool("json", false, "Print the list as JSON")
}
