package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/vocabcards/internal/quiz"
	"github.com/abhisek/vocabcards/internal/store"
	"github.com/abhisek/vocabcards/internal/vocab"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a quiz on a fresh word list without the full-screen UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		topic, level, err := topicAndLevel(cmd, settings.Topic, settings.Level)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		source, err := newWordSource(cmd.Context(), st.EventRepo(), settings)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Generating %s words (%s)...\n", topic.DisplayName(), level)
		words, err := source.Words(cmd.Context(), topic, level)
		if err != nil {
			return fmt.Errorf("generate words: %w", err)
		}
		if len(words) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No words came back. Try again.")
			return nil
		}

		lq := &lineQuiz{
			session:   quiz.NewSession(quiz.BuildQuestions(words)),
			topic:     topic,
			level:     level,
			eventRepo: st.EventRepo(),
		}
		return lq.run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// lineQuiz drives a quiz session over plain text input and output.
type lineQuiz struct {
	session   *quiz.Session
	topic     vocab.Topic
	level     vocab.Level
	eventRepo store.EventRepo
}

// run asks every question in turn. Input ending early abandons the quiz.
func (q *lineQuiz) run(ctx context.Context, in io.Reader, out io.Writer) error {
	started := time.Now()
	q.logSession(ctx, store.QuizActionStart, started)

	scanner := bufio.NewScanner(in)
	for !q.session.Finished() {
		cur := q.session.Current()
		fmt.Fprintf(out, "\nQuestion %d/%d: %s\n", q.session.Index()+1, q.session.Total(), cur.Word.Term)
		for i, opt := range cur.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}

		asked := time.Now()
		choice, ok := q.readChoice(scanner, out, len(cur.Options))
		if !ok {
			q.logSession(ctx, store.QuizActionAbandon, started)
			fmt.Fprintln(out, "\nQuiz abandoned.")
			return scanner.Err()
		}

		chosen := cur.Options[choice]
		q.session.Submit(chosen)
		correct := cur.IsCorrect(chosen)
		if correct {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Not quite. Answer: %s\n", cur.CorrectAnswer)
		}
		if q.eventRepo != nil {
			_ = q.eventRepo.AppendQuizAnswer(ctx, store.QuizAnswerEventData{
				SessionID:     q.session.ID,
				QuestionIndex: q.session.Index(),
				Term:          cur.Word.Term,
				Chosen:        chosen,
				CorrectAnswer: cur.CorrectAnswer,
				Correct:       correct,
				TimeMs:        int(time.Since(asked).Milliseconds()),
			})
		}
		q.session.Advance()
	}

	q.logSession(ctx, store.QuizActionEnd, started)
	fmt.Fprintf(out, "\nScore: %d/%d (%d%%)\n", q.session.Score(), q.session.Total(), q.session.Percentage())
	return nil
}

// readChoice prompts until a number between 1 and n is entered. It returns
// the zero-based index, or false when input ends or the learner types q.
func (q *lineQuiz) readChoice(scanner *bufio.Scanner, out io.Writer, n int) (int, bool) {
	for {
		fmt.Fprintf(out, "Your answer (1-%d, q to quit): ", n)
		if !scanner.Scan() {
			return 0, false
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			return 0, false
		}
		v, err := strconv.Atoi(line)
		if err == nil && v >= 1 && v <= n {
			return v - 1, true
		}
		fmt.Fprintf(out, "Please enter a number from 1 to %d.\n", n)
	}
}

func (q *lineQuiz) logSession(ctx context.Context, action string, started time.Time) {
	if q.eventRepo == nil {
		return
	}
	data := store.QuizSessionEventData{
		SessionID: q.session.ID,
		Action:    action,
		Topic:     string(q.topic),
		Level:     string(q.level),
		Total:     q.session.Total(),
		Score:     q.session.Score(),
	}
	if action != store.QuizActionStart {
		data.Percentage = q.session.Percentage()
		data.DurationSecs = int(time.Since(started).Seconds())
	}
	_ = q.eventRepo.AppendQuizSession(ctx, data)
}

func init() {
	addTopicFlags(quizCmd)
}
