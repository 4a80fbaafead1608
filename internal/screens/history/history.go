// Package history implements the history screen: stored completions plus
// the recent quiz runs behind them.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rmfarias/capacita/internal/catalog"
	"github.com/rmfarias/capacita/internal/router"
	"github.com/rmfarias/capacita/internal/screen"
	"github.com/rmfarias/capacita/internal/store"
	"github.com/rmfarias/capacita/internal/ui/layout"
	"github.com/rmfarias/capacita/internal/ui/theme"
)

type historyLoadedMsg struct {
	Completions []store.CompletionRecord
	Runs        []store.QuizRunRecord
	Err         error
}

// HistoryScreen displays completions and recent quiz runs.
type HistoryScreen struct {
	eventRepo      store.EventRepo
	completionRepo store.CompletionRepo
	completions    []store.CompletionRecord
	runs           []store.QuizRunRecord
	loaded         bool
	errMsg         string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, completionRepo store.CompletionRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo:      eventRepo,
		completionRepo: completionRepo,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		completions, err := s.completionRepo.Records(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		runs, err := s.eventRepo.QuizHistory(ctx, 20)
		if err != nil {
			return historyLoadedMsg{Completions: completions}
		}
		return historyLoadedMsg{Completions: completions, Runs: runs}
	}
}

func (s *HistoryScreen) Title() string {
	return "Histórico"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.completions = msg.Completions
			s.runs = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nErro: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Carregando histórico...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Treinamentos concluídos"))
	b.WriteString("\n\n")

	if len(s.completions) == 0 {
		b.WriteString(theme.Hint.Render("  Nenhum treinamento concluído ainda."))
		b.WriteString("\n")
	}
	for _, c := range s.completions {
		label := c.ModuleKey
		if m := catalog.Get(c.ModuleKey); m != nil {
			label = m.Label
		}
		line := fmt.Sprintf("  ✔ %s — %d/%d em %s",
			label, c.Score, c.Total, c.Timestamp.Format("02/01/2006"))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Últimos quizzes"))
	b.WriteString("\n\n")

	if len(s.runs) == 0 {
		b.WriteString(theme.Hint.Render("  Nenhum quiz realizado ainda."))
		b.WriteString("\n")
	}
	for _, r := range s.runs {
		label := r.ModuleKey
		if m := catalog.Get(r.ModuleKey); m != nil {
			label = m.Label
		}
		var detail string
		switch r.Action {
		case "finish":
			outcome := "reprovado"
			style := lipgloss.NewStyle().Foreground(theme.Error)
			if r.Passed {
				outcome = "aprovado"
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
			detail = fmt.Sprintf("%d/%d %s", r.Score, r.Total, style.Render(outcome))
		case "abandon":
			detail = lipgloss.NewStyle().Foreground(theme.TextDim).Render("abandonado")
		default:
			detail = lipgloss.NewStyle().Foreground(theme.TextDim).Render("iniciado")
		}
		line := fmt.Sprintf("  %s  %s — %s",
			r.Timestamp.Format("02/01 15:04"), label, detail)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
