package training

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rmfarias/capacita/internal/catalog"
	"github.com/rmfarias/capacita/internal/router"
	"github.com/rmfarias/capacita/internal/screen"
	"github.com/rmfarias/capacita/internal/store"
	train "github.com/rmfarias/capacita/internal/training"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents   []store.QuizEventData
	answerEvents []store.AnswerEventData
}

func (m *mockEventRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) QuizHistory(_ context.Context, _ int) ([]store.QuizRunRecord, error) {
	return nil, nil
}

// mockCompletionRepo implements store.CompletionRepo for testing.
type mockCompletionRepo struct {
	completions []store.CompletionData
	failWith    error
}

func (m *mockCompletionRepo) AppendCompletion(_ context.Context, data store.CompletionData) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.completions = append(m.completions, data)
	return nil
}
func (m *mockCompletionRepo) Completions(_ context.Context) (map[string]bool, error) {
	result := make(map[string]bool)
	for _, c := range m.completions {
		result[c.ModuleKey] = true
	}
	return result, nil
}
func (m *mockCompletionRepo) Records(_ context.Context) ([]store.CompletionRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(key string) (*TrainingScreen, *mockEventRepo, *mockCompletionRepo) {
	events := &mockEventRepo{}
	completions := &mockCompletionRepo{}
	return New(key, events, completions), events, completions
}

// answerCurrent selects the given answer for the current question and
// confirms it, then advances past the feedback.
func answerCurrent(t *testing.T, s *TrainingScreen, correct bool) {
	t.Helper()
	q := s.session.Questions[s.session.Current]
	option := q.Correct
	if !correct {
		option = (q.Correct + 1) % len(q.Options)
	}
	if err := s.session.Select(option); err != nil {
		t.Fatalf("Select(%d): %v", option, err)
	}
	s.Update(specialKey(tea.KeyEnter)) // confirm
	s.Update(specialKey(tea.KeyEnter)) // continue
}

// finishQuiz plays a full quiz with the given number of correct answers.
func finishQuiz(t *testing.T, s *TrainingScreen, correct int) {
	t.Helper()
	s.Update(specialKey(tea.KeyEnter)) // leave the content view
	if s.session.Phase != train.PhaseQuiz {
		t.Fatalf("phase = %v after starting quiz, want PhaseQuiz", s.session.Phase)
	}
	total := len(s.session.Questions)
	for i := 0; i < total; i++ {
		answerCurrent(t, s, i < correct)
	}
	if s.session.Phase != train.PhaseResult {
		t.Fatalf("phase = %v after last question, want PhaseResult", s.session.Phase)
	}
}

func TestTrainingScreen_Title(t *testing.T) {
	key := catalog.Keys()[0]
	s, _, _ := testScreen(key)
	if s.Title() != catalog.Get(key).Label {
		t.Errorf("Title = %q, want module label %q", s.Title(), catalog.Get(key).Label)
	}
}

func TestTrainingScreen_UnknownKeyRendersUnavailable(t *testing.T) {
	s, _, _ := testScreen("nao_existe")
	view := s.View(80, 24)
	if !strings.Contains(view, "indisponível") {
		t.Errorf("expected unavailable message, got %q", view)
	}

	// Enter closes, just like Esc.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command closing the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from closing an unavailable screen")
	}
}

func TestTrainingScreen_EnterStartsQuizAndRecordsStart(t *testing.T) {
	s, events, _ := testScreen(catalog.Keys()[0])

	s.Update(specialKey(tea.KeyEnter))

	if s.session.Phase != train.PhaseQuiz {
		t.Fatalf("phase = %v, want PhaseQuiz", s.session.Phase)
	}
	if len(events.quizEvents) != 1 || events.quizEvents[0].Action != "start" {
		t.Errorf("quiz events = %+v, want one start event", events.quizEvents)
	}
}

func TestTrainingScreen_SubmitWithoutSelectionWarns(t *testing.T) {
	s, events, _ := testScreen(catalog.Keys()[0])
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyEnter)) // no selection yet

	if s.warning == "" {
		t.Error("expected a warning when confirming without a selection")
	}
	if s.session.Answered {
		t.Error("expected question to remain unanswered")
	}
	if len(events.answerEvents) != 0 {
		t.Errorf("answer events = %d, want 0", len(events.answerEvents))
	}
}

func TestTrainingScreen_DigitSelectsOption(t *testing.T) {
	s, _, _ := testScreen(catalog.Keys()[0])
	s.Update(specialKey(tea.KeyEnter))

	s.Update(keyPress('2'))

	if s.session.Selected != 1 {
		t.Errorf("Selected = %d after pressing 2, want 1", s.session.Selected)
	}
	if s.session.Answered {
		t.Error("digit keys must not confirm the answer")
	}
}

func TestTrainingScreen_AnswerPersistsEvent(t *testing.T) {
	s, events, _ := testScreen(catalog.Keys()[0])
	s.Update(specialKey(tea.KeyEnter))

	q := s.session.Questions[0]
	_ = s.session.Select(q.Correct)
	s.Update(specialKey(tea.KeyEnter))

	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	ev := events.answerEvents[0]
	if !ev.Correct {
		t.Error("expected the recorded answer to be correct")
	}
	if ev.SelectedOption != q.Options[q.Correct] {
		t.Errorf("SelectedOption = %q, want %q", ev.SelectedOption, q.Options[q.Correct])
	}
	if ev.ModuleKey != s.session.Key {
		t.Errorf("ModuleKey = %q, want %q", ev.ModuleKey, s.session.Key)
	}
}

func TestTrainingScreen_PassAndComplete(t *testing.T) {
	s, events, completions := testScreen(catalog.Keys()[0])
	finishQuiz(t, s, len(s.session.Questions)) // all correct

	if !s.session.Outcome.Passed {
		t.Fatal("expected a passed outcome")
	}

	// The finish event carries the final score.
	last := events.quizEvents[len(events.quizEvents)-1]
	if last.Action != "finish" || !last.Passed {
		t.Errorf("last quiz event = %+v, want a passed finish", last)
	}

	// Enter kicks off the completion write.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a persistence command")
	}
	msg := cmd()
	s.Update(msg)

	if !s.saved {
		t.Error("expected screen to reflect the saved completion")
	}
	if len(completions.completions) != 1 {
		t.Fatalf("completions = %d, want 1", len(completions.completions))
	}
	if completions.completions[0].ModuleKey != s.session.Key {
		t.Errorf("completion key = %q, want %q", completions.completions[0].ModuleKey, s.session.Key)
	}
}

func TestTrainingScreen_CompleteIsSingleUse(t *testing.T) {
	s, _, completions := testScreen(catalog.Keys()[0])
	finishQuiz(t, s, len(s.session.Questions))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())

	// A second Enter must not produce another write.
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command from repeated completion")
	}
	if len(completions.completions) != 1 {
		t.Errorf("completions = %d, want exactly 1", len(completions.completions))
	}
}

func TestTrainingScreen_SaveFailureKeepsPassedState(t *testing.T) {
	s, _, completions := testScreen(catalog.Keys()[0])
	completions.failWith = errors.New("disk full")
	finishQuiz(t, s, len(s.session.Questions))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())

	if s.saved {
		t.Error("expected saved = false after a failed write")
	}
	if s.notice == "" {
		t.Error("expected a notice about the failed write")
	}
	if !s.session.Outcome.Passed {
		t.Error("expected the passed outcome to survive the failure")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Aprovado") {
		t.Errorf("expected the result view to still show approval, got %q", view)
	}
}

func TestTrainingScreen_FailOffersRetry(t *testing.T) {
	s, _, _ := testScreen(catalog.Keys()[0])
	finishQuiz(t, s, catalog.MinApprovalScore-1)

	if s.session.Outcome.Passed {
		t.Fatal("expected a failed outcome")
	}

	oldID := s.sessionID
	s.Update(keyPress('r'))

	if s.session.Phase != train.PhaseContent {
		t.Errorf("phase = %v after retry, want PhaseContent", s.session.Phase)
	}
	if s.sessionID == oldID {
		t.Error("expected a fresh session id for the retry run")
	}
}

func TestTrainingScreen_EscDuringQuizRecordsAbandon(t *testing.T) {
	s, events, _ := testScreen(catalog.Keys()[0])
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command closing the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from Esc")
	}

	last := events.quizEvents[len(events.quizEvents)-1]
	if last.Action != "abandon" {
		t.Errorf("last quiz event action = %q, want abandon", last.Action)
	}
}

func TestTrainingScreen_KeyHintsPerPhase(t *testing.T) {
	s, _, _ := testScreen(catalog.Keys()[0])

	var _ screen.KeyHintProvider = s
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints on the content view")
	}

	s.Update(specialKey(tea.KeyEnter))
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints on the quiz view")
	}
}
