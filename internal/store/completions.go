package store

import (
	"context"
	"fmt"

	"github.com/rmfarias/capacita/ent"
	"github.com/rmfarias/capacita/ent/completionevent"
)

// completionRepo implements CompletionRepo using the ent client.
type completionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *completionRepo) AppendCompletion(ctx context.Context, data CompletionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetModuleKey(data.ModuleKey).
		SetScore(data.Score).
		SetTotal(data.Total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion: %w", err)
	}
	return nil
}

func (r *completionRepo) Completions(ctx context.Context) (map[string]bool, error) {
	keys, err := r.client.CompletionEvent.Query().
		Select(completionevent.FieldModuleKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}

	completed := make(map[string]bool, len(keys))
	for _, k := range keys {
		completed[k] = true
	}
	return completed, nil
}

func (r *completionRepo) Records(ctx context.Context) ([]CompletionRecord, error) {
	events, err := r.client.CompletionEvent.Query().
		Order(ent.Desc(completionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion records: %w", err)
	}

	records := make([]CompletionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, CompletionRecord{
			ModuleKey: e.ModuleKey,
			Score:     e.Score,
			Total:     e.Total,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}
