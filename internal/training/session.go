// Package training implements the quiz session state machine for one
// training module: content pages, a shuffled multiple-choice quiz and a
// pass/fail result. The engine is headless; the training screen drives it
// and owns all rendering and persistence.
package training

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rmfarias/capacita/internal/catalog"
)

// Phase is the current phase of a training session.
type Phase int

const (
	PhaseContent Phase = iota // Reading the instructional content
	PhaseQuiz                 // Answering quiz questions
	PhaseResult               // Viewing the final score
)

// Result is the outcome of a completed quiz pass.
type Result struct {
	Score  int // correct answers
	Total  int // questions in the quiz
	Passed bool
}

// Guard errors returned by session operations. They signal a rejected user
// action, not a broken session: state is never mutated when one is returned.
var (
	ErrUnavailable      = errors.New("training content unavailable")
	ErrWrongPhase       = errors.New("action not allowed in this phase")
	ErrNoSelection      = errors.New("no option selected")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrNotAnswered      = errors.New("current question not answered yet")
	ErrOptionOutOfRange = errors.New("option index out of range")
	ErrRetryUnavailable = errors.New("retry is only offered after a failed result")
	ErrNotPassed        = errors.New("quiz was not passed")
	ErrAlreadyCompleted = errors.New("completion already reported")
)

// Session is one ephemeral training run for a single module. It is created
// when the training screen opens and discarded when it closes; nothing
// survives a close except what the caller chose to persist on completion.
type Session struct {
	Key    string
	Module *catalog.Module // nil when the key did not resolve

	Phase Phase

	// Questions holds this session's snapshot of the module's quiz, with
	// each question's options independently shuffled. Question order
	// matches the catalog.
	Questions []catalog.Question

	// Current is the 0-based index into Questions.
	Current int

	// Selected is the pending option index, or -1 when none is selected.
	Selected int

	// Answered locks the current question once submitted.
	Answered bool

	// LastCorrect records whether the most recent submission was correct,
	// for feedback display.
	LastCorrect bool

	// Answers maps question index → correct/incorrect, filled on submit.
	Answers map[int]bool

	// Outcome is computed eagerly when the last question is submitted,
	// and stays nil until then.
	Outcome *Result

	completed bool
	rng       *rand.Rand
}

// NewSession resolves the module for key and initializes a fresh session.
// An unknown key yields a session with a nil Module; that is a displayable
// "content unavailable" state, not an error.
func NewSession(key string) *Session {
	return newSession(key, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newSession(key string, rng *rand.Rand) *Session {
	s := &Session{
		Key:    key,
		Module: catalog.Get(key),
		rng:    rng,
	}
	if s.Module != nil {
		s.reset()
	}
	return s
}

// Available reports whether the session has resolvable content.
func (s *Session) Available() bool {
	return s.Module != nil
}

// reset restores the initial state and re-draws every question's option
// shuffle. Used on open and on retry.
func (s *Session) reset() {
	s.Phase = PhaseContent
	s.Questions = shuffleAll(s.Module.Questions, s.rng)
	s.Current = 0
	s.Selected = -1
	s.Answered = false
	s.LastCorrect = false
	s.Answers = make(map[int]bool, len(s.Questions))
	s.Outcome = nil
	s.completed = false
}

// StartQuiz moves from the content phase into the quiz.
func (s *Session) StartQuiz() error {
	if !s.Available() {
		return ErrUnavailable
	}
	if s.Phase != PhaseContent {
		return ErrWrongPhase
	}
	s.Phase = PhaseQuiz
	return nil
}

// Select sets the pending option for the current question. It may be called
// any number of times before Submit, and never after.
func (s *Session) Select(option int) error {
	if s.Phase != PhaseQuiz {
		return ErrWrongPhase
	}
	if s.Answered {
		return ErrAlreadyAnswered
	}
	if option < 0 || option >= len(s.Questions[s.Current].Options) {
		return ErrOptionOutOfRange
	}
	s.Selected = option
	return nil
}

// Submit grades the pending selection against the current question. On the
// last question it also computes the final Outcome, so the result exists
// before the advance into the result phase.
func (s *Session) Submit() error {
	if s.Phase != PhaseQuiz {
		return ErrWrongPhase
	}
	if s.Answered {
		return ErrAlreadyAnswered
	}
	if s.Selected < 0 {
		return ErrNoSelection
	}

	correct := s.Selected == s.Questions[s.Current].Correct
	s.Answers[s.Current] = correct
	s.LastCorrect = correct
	s.Answered = true

	if s.Current == len(s.Questions)-1 {
		score := 0
		for _, ok := range s.Answers {
			if ok {
				score++
			}
		}
		s.Outcome = &Result{
			Score:  score,
			Total:  len(s.Questions),
			Passed: score >= catalog.MinApprovalScore,
		}
	}
	return nil
}

// Advance moves to the next question, or into the result phase after the
// last one. It requires the current question to be answered.
func (s *Session) Advance() error {
	if s.Phase != PhaseQuiz {
		return ErrWrongPhase
	}
	if !s.Answered {
		return ErrNotAnswered
	}

	if s.Current == len(s.Questions)-1 {
		s.Phase = PhaseResult
		s.Selected = -1
		s.Answered = false
		return nil
	}

	s.Current++
	s.Selected = -1
	s.Answered = false
	s.LastCorrect = false
	return nil
}

// Retry restarts a failed quiz from the content phase, with answers cleared
// and every option shuffle independently re-drawn.
func (s *Session) Retry() error {
	if s.Phase != PhaseResult || s.Outcome == nil {
		return ErrWrongPhase
	}
	if s.Outcome.Passed {
		return ErrRetryUnavailable
	}
	s.reset()
	return nil
}

// Complete hands the passed result to the caller, at most once per session.
// It is the only path that reports a completion: it requires a passed
// outcome and fails on any repeat call.
func (s *Session) Complete() (Result, error) {
	if s.Phase != PhaseResult || s.Outcome == nil {
		return Result{}, ErrWrongPhase
	}
	if !s.Outcome.Passed {
		return Result{}, ErrNotPassed
	}
	if s.completed {
		return Result{}, ErrAlreadyCompleted
	}
	s.completed = true
	return *s.Outcome, nil
}

// Completed reports whether Complete has already been called.
func (s *Session) Completed() bool {
	return s.completed
}
