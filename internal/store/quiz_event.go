package store

import (
	"context"
	"fmt"

	"github.com/abhisek/vocabcards/ent"
	"github.com/abhisek/vocabcards/ent/quizanswerevent"
	"github.com/abhisek/vocabcards/ent/quizsessionevent"
)

func (r *eventRepo) AppendQuizSession(ctx context.Context, data QuizSessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizSessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetTopic(data.Topic).
		SetLevel(data.Level).
		SetTotal(data.Total).
		SetScore(data.Score).
		SetPercentage(data.Percentage).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionIndex(data.QuestionIndex).
		SetTerm(data.Term).
		SetChosen(data.Chosen).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentQuizResults(ctx context.Context, limit int) ([]QuizSessionEvent, error) {
	q := r.client.QuizSessionEvent.Query().
		Where(quizsessionevent.Action(QuizActionEnd)).
		Order(ent.Desc(quizsessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}

	out := make([]QuizSessionEvent, len(rows))
	for i, row := range rows {
		out[i] = QuizSessionEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			QuizSessionEventData: QuizSessionEventData{
				SessionID:    row.SessionID,
				Action:       row.Action,
				Topic:        row.Topic,
				Level:        row.Level,
				Total:        row.Total,
				Score:        row.Score,
				Percentage:   row.Percentage,
				DurationSecs: row.DurationSecs,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) QuizAnswers(ctx context.Context, sessionID string) ([]QuizAnswerEventData, error) {
	rows, err := r.client.QuizAnswerEvent.Query().
		Where(quizanswerevent.SessionID(sessionID)).
		Order(ent.Asc(quizanswerevent.FieldQuestionIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz answers: %w", err)
	}

	out := make([]QuizAnswerEventData, len(rows))
	for i, row := range rows {
		out[i] = QuizAnswerEventData{
			SessionID:     row.SessionID,
			QuestionIndex: row.QuestionIndex,
			Term:          row.Term,
			Chosen:        row.Chosen,
			CorrectAnswer: row.CorrectAnswer,
			Correct:       row.Correct,
			TimeMs:        row.TimeMs,
		}
	}
	return out, nil
}
