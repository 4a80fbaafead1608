package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestCompletions_EmptyThenAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletionRepo()
	ctx := context.Background()

	completed, err := repo.Completions(ctx)
	require.NoError(t, err)
	assert.Empty(t, completed)

	require.NoError(t, repo.AppendCompletion(ctx, CompletionData{
		SessionID: "s1",
		ModuleKey: "limpeza_basica",
		Score:     7,
		Total:     10,
	}))

	completed, err = repo.Completions(ctx)
	require.NoError(t, err)
	assert.True(t, completed["limpeza_basica"])
	assert.False(t, completed["lavagem_carro"])
}

func TestCompletions_RepeatedPassStaysTrue(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletionRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.AppendCompletion(ctx, CompletionData{
			SessionID: "s",
			ModuleKey: "jardinagem",
			Score:     8,
			Total:     10,
		}), "append %d", i)
	}

	completed, err := repo.Completions(ctx)
	require.NoError(t, err)
	assert.True(t, completed["jardinagem"])

	// The record is append-only: a repeat pass adds a row, never replaces.
	records, err := repo.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestQuizHistory_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, action := range []string{"start", "finish"} {
		require.NoError(t, repo.AppendQuizEvent(ctx, QuizEventData{
			SessionID: "s1",
			ModuleKey: "lavagem_carro",
			Action:    action,
			Score:     i * 6,
			Total:     10,
			Passed:    action == "finish",
		}))
	}

	history, err := repo.QuizHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "finish", history[0].Action)
	assert.Equal(t, "start", history[1].Action)
}

func TestAnswerEventsPersist(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:      "s1",
		ModuleKey:      "limpeza_basica",
		QuestionIndex:  3,
		Prompt:         "pergunta",
		SelectedOption: "resposta",
		Correct:        true,
	}))

	n, err := s.Client().AnswerEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
