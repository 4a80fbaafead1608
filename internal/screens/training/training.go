// Package training implements the training screen: the full open-to-close
// flow of one module, from instructional content through the quiz to the
// pass/fail result.
package training

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/rmfarias/capacita/internal/catalog"
	"github.com/rmfarias/capacita/internal/router"
	"github.com/rmfarias/capacita/internal/screen"
	"github.com/rmfarias/capacita/internal/store"
	train "github.com/rmfarias/capacita/internal/training"
	"github.com/rmfarias/capacita/internal/ui/layout"

	"github.com/google/uuid"
)

// TrainingScreen implements screen.Screen for one training run. It owns the
// rendering and persistence around a training session; the session itself
// holds all quiz state.
type TrainingScreen struct {
	session        *train.Session
	eventRepo      store.EventRepo
	completionRepo store.CompletionRepo
	sessionID      string

	warning string // inline validation message, cleared on next valid action
	notice  string // persistence status shown on the result view
	saving  bool
	saved   bool
}

var _ screen.Screen = (*TrainingScreen)(nil)
var _ screen.KeyHintProvider = (*TrainingScreen)(nil)

// New creates a training screen for the module identified by key. An unknown
// key still yields a screen; it renders the unavailable state.
func New(key string, eventRepo store.EventRepo, completionRepo store.CompletionRepo) *TrainingScreen {
	return &TrainingScreen{
		session:        train.NewSession(key),
		eventRepo:      eventRepo,
		completionRepo: completionRepo,
		sessionID:      uuid.New().String(),
	}
}

func (s *TrainingScreen) Init() tea.Cmd {
	return nil
}

func (s *TrainingScreen) Title() string {
	if s.session.Available() {
		return s.session.Module.Label
	}
	return "Treinamento"
}

func (s *TrainingScreen) KeyHints() []layout.KeyHint {
	if !s.session.Available() {
		return []layout.KeyHint{{Key: "Esc", Description: "Fechar"}}
	}
	switch s.session.Phase {
	case train.PhaseContent:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Começar o quiz"},
			{Key: "Esc", Description: "Fechar"},
		}
	case train.PhaseQuiz:
		if s.session.Answered {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Continuar"},
				{Key: "Esc", Description: "Fechar"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Escolher"},
			{Key: "Enter", Description: "Confirmar"},
			{Key: "Esc", Description: "Fechar"},
		}
	case train.PhaseResult:
		if s.session.Outcome != nil && s.session.Outcome.Passed {
			if s.saved || s.saving {
				return []layout.KeyHint{{Key: "Esc", Description: "Fechar"}}
			}
			return []layout.KeyHint{
				{Key: "Enter", Description: "Concluir"},
				{Key: "Esc", Description: "Fechar"},
			}
		}
		return []layout.KeyHint{
			{Key: "R", Description: "Tentar novamente"},
			{Key: "Esc", Description: "Fechar"},
		}
	}
	return nil
}

func (s *TrainingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case completionSavedMsg:
		return s.handleCompletionSaved(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TrainingScreen) handleCompletionSaved(msg completionSavedMsg) (screen.Screen, tea.Cmd) {
	s.saving = false
	if msg.Err != nil {
		s.notice = "Não foi possível salvar o registro agora. Sua aprovação continua valendo."
		return s, nil
	}
	s.saved = true
	s.notice = "Treinamento registrado!"
	return s, nil
}

func (s *TrainingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return s.close()
	}

	if !s.session.Available() {
		if key == "enter" {
			return s.close()
		}
		return s, nil
	}

	switch s.session.Phase {
	case train.PhaseContent:
		if key == "enter" {
			if err := s.session.StartQuiz(); err == nil {
				_ = s.eventRepo.AppendQuizEvent(context.Background(), store.QuizEventData{
					SessionID: s.sessionID,
					ModuleKey: s.session.Key,
					Action:    "start",
				})
			}
		}
		return s, nil

	case train.PhaseQuiz:
		return s.handleQuizKey(key)

	case train.PhaseResult:
		return s.handleResultKey(key)
	}

	return s, nil
}

func (s *TrainingScreen) handleQuizKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.session.Selected > 0 {
			_ = s.session.Select(s.session.Selected - 1)
		}
		return s, nil
	case "down", "j":
		_ = s.session.Select(s.session.Selected + 1)
		return s, nil
	case "enter":
		if s.session.Answered {
			_ = s.session.Advance()
			return s, nil
		}
		return s.submit()
	}

	// Digits jump straight to an option without confirming it.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		_ = s.session.Select(int(key[0] - '1'))
		s.warning = ""
	}
	return s, nil
}

func (s *TrainingScreen) submit() (screen.Screen, tea.Cmd) {
	err := s.session.Submit()
	if errors.Is(err, train.ErrNoSelection) {
		s.warning = "Escolha uma opção antes de confirmar."
		return s, nil
	}
	if err != nil {
		return s, nil
	}
	s.warning = ""

	ctx := context.Background()
	q := s.session.Questions[s.session.Current]
	_ = s.eventRepo.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:      s.sessionID,
		ModuleKey:      s.session.Key,
		QuestionIndex:  s.session.Current,
		Prompt:         q.Prompt,
		SelectedOption: q.Options[s.session.Selected],
		Correct:        s.session.LastCorrect,
	})

	// The outcome appears with the last submission, before the learner
	// advances into the result view.
	if out := s.session.Outcome; out != nil {
		_ = s.eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
			SessionID: s.sessionID,
			ModuleKey: s.session.Key,
			Action:    "finish",
			Score:     out.Score,
			Total:     out.Total,
			Passed:    out.Passed,
		})
	}
	return s, nil
}

func (s *TrainingScreen) handleResultKey(key string) (screen.Screen, tea.Cmd) {
	out := s.session.Outcome
	if out == nil {
		return s, nil
	}

	if out.Passed {
		if key == "enter" && !s.saving && !s.saved {
			result, err := s.session.Complete()
			if err != nil {
				return s, nil
			}
			s.saving = true
			s.notice = "Salvando..."
			return s, s.persistCompletion(result)
		}
		return s, nil
	}

	if key == "r" || key == "R" || key == "enter" {
		if err := s.session.Retry(); err == nil {
			s.warning = ""
			s.notice = ""
			// A retry is a fresh run with its own events.
			s.sessionID = uuid.New().String()
		}
	}
	return s, nil
}

// persistCompletion writes the completion record off the UI loop.
func (s *TrainingScreen) persistCompletion(result train.Result) tea.Cmd {
	repo := s.completionRepo
	data := store.CompletionData{
		SessionID: s.sessionID,
		ModuleKey: s.session.Key,
		Score:     result.Score,
		Total:     result.Total,
	}
	return func() tea.Msg {
		if repo == nil {
			return completionSavedMsg{Err: fmt.Errorf("completion store unavailable")}
		}
		return completionSavedMsg{Err: repo.AppendCompletion(context.Background(), data)}
	}
}

// close abandons the run and pops the screen. Closing discards all quiz
// state; only an explicitly saved completion survives.
func (s *TrainingScreen) close() (screen.Screen, tea.Cmd) {
	if s.session.Available() && s.session.Phase == train.PhaseQuiz {
		_ = s.eventRepo.AppendQuizEvent(context.Background(), store.QuizEventData{
			SessionID: s.sessionID,
			ModuleKey: s.session.Key,
			Action:    "abandon",
		})
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

// passHint names the approval bar for the result view.
func passHint() string {
	return fmt.Sprintf("Você precisa de pelo menos %d acertos para ser aprovado.", catalog.MinApprovalScore)
}
