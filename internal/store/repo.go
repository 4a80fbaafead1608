package store

import (
	"context"
	"time"
)

// QuizEventData captures a quiz run lifecycle event.
type QuizEventData struct {
	SessionID string
	ModuleKey string
	Action    string // "start", "finish" or "abandon"
	Score     int
	Total     int
	Passed    bool
}

// AnswerEventData captures one graded quiz submission.
type AnswerEventData struct {
	SessionID      string
	ModuleKey      string
	QuestionIndex  int
	Prompt         string
	SelectedOption string
	Correct        bool
}

// QuizRunRecord is a quiz event read back for history display.
type QuizRunRecord struct {
	SessionID string
	ModuleKey string
	Action    string
	Score     int
	Total     int
	Passed    bool
	Timestamp time.Time
}

// EventRepo provides append and query access to quiz events.
type EventRepo interface {
	// AppendQuizEvent records a quiz run lifecycle event.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendAnswerEvent records a graded submission.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuizHistory returns the most recent quiz events, newest first.
	// limit == 0 means no limit.
	QuizHistory(ctx context.Context, limit int) ([]QuizRunRecord, error)
}

// CompletionData captures a passed module quiz for persistence.
type CompletionData struct {
	SessionID string
	ModuleKey string
	Score     int
	Total     int
}

// CompletionRecord is a stored completion read back for display.
type CompletionRecord struct {
	ModuleKey string
	Score     int
	Total     int
	Timestamp time.Time
}

// CompletionRepo manages the worker's training completion record.
// The record is append-only: passing a module sets it completed forever.
type CompletionRepo interface {
	// AppendCompletion stores a passed quiz result.
	AppendCompletion(ctx context.Context, data CompletionData) error

	// Completions returns the module key → completed mapping.
	Completions(ctx context.Context) (map[string]bool, error)

	// Records returns all stored completions, newest first.
	Records(ctx context.Context) ([]CompletionRecord, error)
}
