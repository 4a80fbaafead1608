package training

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	train "github.com/rmfarias/capacita/internal/training"
	"github.com/rmfarias/capacita/internal/ui/components"
	"github.com/rmfarias/capacita/internal/ui/theme"
)

func (s *TrainingScreen) View(width, height int) string {
	if !s.session.Available() {
		return renderUnavailable(width)
	}

	switch s.session.Phase {
	case train.PhaseContent:
		return s.renderContent(width)
	case train.PhaseQuiz:
		return s.renderQuiz(width)
	case train.PhaseResult:
		return s.renderResult(width)
	}
	return ""
}

// renderUnavailable covers keys that resolve to no catalog module.
func renderUnavailable(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Conteúdo indisponível"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Ainda não temos um treinamento para esse serviço."))
	return b.String()
}

func (s *TrainingScreen) renderContent(width int) string {
	m := s.session.Module

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + m.Label))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + m.Summary))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-8, 10))))
	b.WriteString("\n\n")

	bodyStyle := lipgloss.NewStyle().
		Width(min(width-6, 76)).
		Foreground(theme.Text)
	for _, item := range m.Content {
		b.WriteString(bodyStyle.Render("  • " + item))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  O quiz tem %d perguntas. %s", len(m.Questions), passHint())))
	return b.String()
}

func (s *TrainingScreen) renderQuiz(width int) string {
	sess := s.session
	q := sess.Questions[sess.Current]

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("  Pergunta %d de %d", sess.Current+1, len(sess.Questions)),
		float64(sess.Current)/float64(len(sess.Questions)),
		min(width-4, 60),
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(min(width-6, 76)).
		Foreground(theme.Text).
		Bold(true).
		Render("  " + q.Prompt))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		b.WriteString(s.renderOption(i, opt, q.Correct))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case s.warning != "":
		b.WriteString(theme.Notice.Render("  " + s.warning))
	case sess.Answered && sess.LastCorrect:
		b.WriteString(theme.Correct.Render("  Resposta correta!"))
	case sess.Answered:
		b.WriteString(theme.Incorrect.Render("  Resposta incorreta."))
	}
	if sess.Answered {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Enter para continuar"))
	}
	return b.String()
}

// renderOption styles one quiz option for the selection and, once answered,
// the feedback state.
func (s *TrainingScreen) renderOption(i int, text string, correct int) string {
	sess := s.session
	prefix := "    "
	if i == sess.Selected {
		prefix = "  ▸ "
	}
	line := fmt.Sprintf("%s%d) %s", prefix, i+1, text)

	if sess.Answered {
		switch {
		case i == correct:
			return theme.Correct.Render(line)
		case i == sess.Selected:
			return theme.Incorrect.Render(line)
		default:
			return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		}
	}

	if i == sess.Selected {
		return theme.Selected.Render(line)
	}
	return theme.Unselected.Render(line)
}

func (s *TrainingScreen) renderResult(width int) string {
	out := s.session.Outcome

	var b strings.Builder
	b.WriteString("\n\n")

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	if out.Passed {
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Aprovado!")
	} else {
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Não foi dessa vez")
	}
	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Você acertou %d de %d perguntas.", out.Score, out.Total))

	if !out.Passed {
		center(lipgloss.NewStyle().Foreground(theme.TextDim), passHint())
		b.WriteString("\n")
		center(theme.Hint, "Pressione R para revisar o conteúdo e tentar de novo.")
		return b.String()
	}

	b.WriteString("\n")
	if s.notice != "" {
		center(theme.Notice, s.notice)
	} else {
		center(theme.Hint, "Enter para registrar a conclusão deste treinamento.")
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
