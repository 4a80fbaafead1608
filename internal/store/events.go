package store

import (
	"context"
	"fmt"

	"github.com/rmfarias/capacita/ent"
	"github.com/rmfarias/capacita/ent/quizevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetModuleKey(data.ModuleKey).
		SetAction(data.Action).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetModuleKey(data.ModuleKey).
		SetQuestionIndex(data.QuestionIndex).
		SetPrompt(data.Prompt).
		SetSelectedOption(data.SelectedOption).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizHistory(ctx context.Context, limit int) ([]QuizRunRecord, error) {
	q := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	records := make([]QuizRunRecord, 0, len(events))
	for _, e := range events {
		records = append(records, QuizRunRecord{
			SessionID: e.SessionID,
			ModuleKey: e.ModuleKey,
			Action:    e.Action,
			Score:     e.Score,
			Total:     e.Total,
			Passed:    e.Passed,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}
