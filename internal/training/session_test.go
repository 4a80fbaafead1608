package training

import (
	"errors"
	"testing"

	"github.com/rmfarias/capacita/internal/catalog"
)

// quizSession returns a session for limpeza_basica already in the quiz phase.
func quizSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession("limpeza_basica")
	if !s.Available() {
		t.Fatal("limpeza_basica should resolve")
	}
	if err := s.StartQuiz(); err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	return s
}

// answerCurrent submits the current question, correctly or not, and advances.
func answerCurrent(t *testing.T, s *Session, correctly bool) {
	t.Helper()
	option := s.Questions[s.Current].Correct
	if !correctly {
		option = (option + 1) % len(s.Questions[s.Current].Options)
	}
	if err := s.Select(option); err != nil {
		t.Fatalf("select question %d: %v", s.Current, err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit question %d: %v", s.Current, err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance from question %d: %v", s.Current, err)
	}
}

func TestNewSession_UnknownKeyIsUnavailable(t *testing.T) {
	s := NewSession("modulo_inexistente")
	if s.Available() {
		t.Error("unknown key should yield an unavailable session")
	}
	if err := s.StartQuiz(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("StartQuiz on unavailable session = %v, want ErrUnavailable", err)
	}
}

func TestNewSession_InitialState(t *testing.T) {
	s := NewSession("lavagem_carro")
	if !s.Available() {
		t.Fatal("lavagem_carro should resolve")
	}
	if s.Phase != PhaseContent {
		t.Errorf("initial phase = %v, want PhaseContent", s.Phase)
	}
	if s.Current != 0 || s.Selected != -1 || s.Answered {
		t.Error("session fields not reset on open")
	}
	if len(s.Questions) != len(s.Module.Questions) {
		t.Errorf("session has %d questions, module has %d", len(s.Questions), len(s.Module.Questions))
	}
	if s.Outcome != nil {
		t.Error("outcome should be nil before the last submit")
	}
}

func TestSubmit_RequiresSelection(t *testing.T) {
	s := quizSession(t)
	if err := s.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Submit without selection = %v, want ErrNoSelection", err)
	}
	if len(s.Answers) != 0 {
		t.Error("rejected submit must not record an answer")
	}
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	s := quizSession(t)
	if err := s.Advance(); !errors.Is(err, ErrNotAnswered) {
		t.Errorf("Advance before submit = %v, want ErrNotAnswered", err)
	}
	if s.Current != 0 {
		t.Errorf("rejected advance moved Current to %d", s.Current)
	}
}

func TestSelect_LockedAfterSubmit(t *testing.T) {
	s := quizSession(t)
	if err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Select(1); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("Select after submit = %v, want ErrAlreadyAnswered", err)
	}
	if err := s.Submit(); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("second Submit = %v, want ErrAlreadyAnswered", err)
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	s := quizSession(t)
	if err := s.Select(len(s.Questions[0].Options)); !errors.Is(err, ErrOptionOutOfRange) {
		t.Errorf("Select out of range = %v, want ErrOptionOutOfRange", err)
	}
	if err := s.Select(-1); !errors.Is(err, ErrOptionOutOfRange) {
		t.Errorf("Select(-1) = %v, want ErrOptionOutOfRange", err)
	}
}

func TestSelect_RepeatableBeforeSubmit(t *testing.T) {
	s := quizSession(t)
	for _, option := range []int{0, 1, 0, 2} {
		if err := s.Select(option); err != nil {
			t.Fatalf("select %d: %v", option, err)
		}
	}
	if s.Selected != 2 {
		t.Errorf("Selected = %d, want last selection 2", s.Selected)
	}
}

func TestFullRun_ExactApprovalScorePasses(t *testing.T) {
	s := quizSession(t)
	total := len(s.Questions)

	// First six correct, rest wrong: exactly the approval score.
	for i := 0; i < total; i++ {
		answerCurrent(t, s, i < catalog.MinApprovalScore)
	}

	if s.Phase != PhaseResult {
		t.Fatalf("phase = %v, want PhaseResult", s.Phase)
	}
	if s.Outcome == nil {
		t.Fatal("outcome not computed")
	}
	if s.Outcome.Score != catalog.MinApprovalScore || s.Outcome.Total != total {
		t.Errorf("outcome = %d/%d, want %d/%d", s.Outcome.Score, s.Outcome.Total, catalog.MinApprovalScore, total)
	}
	if !s.Outcome.Passed {
		t.Error("score equal to the approval threshold must pass")
	}
}

func TestFullRun_OneBelowThresholdFails(t *testing.T) {
	s := quizSession(t)
	for i := 0; i < len(s.Questions); i++ {
		answerCurrent(t, s, i < catalog.MinApprovalScore-1)
	}
	if s.Outcome == nil {
		t.Fatal("outcome not computed")
	}
	if s.Outcome.Passed {
		t.Errorf("score %d should fail with threshold %d", s.Outcome.Score, catalog.MinApprovalScore)
	}
}

func TestOutcome_ComputedOnLastSubmitNotAdvance(t *testing.T) {
	s := quizSession(t)
	last := len(s.Questions) - 1
	for i := 0; i < last; i++ {
		answerCurrent(t, s, true)
	}
	if s.Outcome != nil {
		t.Fatal("outcome computed before last question")
	}
	if err := s.Select(s.Questions[last].Correct); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	if s.Outcome == nil {
		t.Fatal("outcome must exist right after the last submit, before advancing")
	}
	if s.Phase != PhaseQuiz {
		t.Error("still in quiz phase until the explicit advance")
	}
}

func TestRetry_OnlyAfterFailure(t *testing.T) {
	s := quizSession(t)
	for i := 0; i < len(s.Questions); i++ {
		answerCurrent(t, s, true)
	}
	if err := s.Retry(); !errors.Is(err, ErrRetryUnavailable) {
		t.Errorf("Retry after passing = %v, want ErrRetryUnavailable", err)
	}
}

func TestRetry_ResetsAndReshuffles(t *testing.T) {
	s := quizSession(t)
	for i := 0; i < len(s.Questions); i++ {
		answerCurrent(t, s, false)
	}
	if s.Outcome == nil || s.Outcome.Passed {
		t.Fatal("expected a failed outcome")
	}

	before := s.Questions
	if err := s.Retry(); err != nil {
		t.Fatalf("retry: %v", err)
	}

	if s.Phase != PhaseContent {
		t.Errorf("phase after retry = %v, want PhaseContent", s.Phase)
	}
	if s.Current != 0 || len(s.Answers) != 0 || s.Outcome != nil {
		t.Error("retry must clear progress, answers and outcome")
	}
	// The shuffle must be independently re-drawn: a fresh snapshot, and
	// every question must still carry the same correct answer text.
	if &before[0] == &s.Questions[0] {
		t.Error("retry reused the previous question snapshot")
	}
	for i := range s.Questions {
		want := s.Module.Questions[i].Options[s.Module.Questions[i].Correct]
		got := s.Questions[i].Options[s.Questions[i].Correct]
		if got != want {
			t.Errorf("question %d lost answer identity after retry reshuffle", i)
		}
	}
}

func TestComplete_SingleUseAndOnlyWhenPassed(t *testing.T) {
	s := quizSession(t)
	for i := 0; i < len(s.Questions); i++ {
		answerCurrent(t, s, i < catalog.MinApprovalScore)
	}

	res, err := s.Complete()
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Score != catalog.MinApprovalScore || res.Total != len(s.Questions) || !res.Passed {
		t.Errorf("completion result = %+v", res)
	}
	if !s.Completed() {
		t.Error("Completed() should report true after Complete")
	}
	if _, err := s.Complete(); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("second Complete = %v, want ErrAlreadyCompleted", err)
	}
}

func TestComplete_RejectedOnFailure(t *testing.T) {
	s := quizSession(t)
	for i := 0; i < len(s.Questions); i++ {
		answerCurrent(t, s, false)
	}
	if _, err := s.Complete(); !errors.Is(err, ErrNotPassed) {
		t.Errorf("Complete on failed result = %v, want ErrNotPassed", err)
	}
}

func TestComplete_RejectedMidQuiz(t *testing.T) {
	s := quizSession(t)
	if _, err := s.Complete(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Complete during quiz = %v, want ErrWrongPhase", err)
	}
}
