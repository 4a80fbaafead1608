// Package lookup implements the service lookup screen: a worker types the
// service they were hired for and is routed to the matching training.
package lookup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmfarias/capacita/internal/catalog"
	"github.com/rmfarias/capacita/internal/router"
	"github.com/rmfarias/capacita/internal/screen"
	trainingscreen "github.com/rmfarias/capacita/internal/screens/training"
	"github.com/rmfarias/capacita/internal/store"
	"github.com/rmfarias/capacita/internal/ui/components"
	"github.com/rmfarias/capacita/internal/ui/layout"
	"github.com/rmfarias/capacita/internal/ui/theme"
)

const (
	fieldName = iota
	fieldCategory
)

// LookupScreen resolves a typed service name and category to a training
// module and opens it.
type LookupScreen struct {
	eventRepo      store.EventRepo
	completionRepo store.CompletionRepo

	nameInput     components.TextInput
	categoryInput components.TextInput
	focused       int
	warning       string
}

var _ screen.Screen = (*LookupScreen)(nil)
var _ screen.KeyHintProvider = (*LookupScreen)(nil)

// New creates the lookup screen with the service name field focused.
func New(eventRepo store.EventRepo, completionRepo store.CompletionRepo) *LookupScreen {
	s := &LookupScreen{
		eventRepo:      eventRepo,
		completionRepo: completionRepo,
		nameInput:      components.NewTextInput("Ex.: Lavagem de Carro", 60),
		categoryInput:  components.NewTextInput("Ex.: Limpeza (opcional)", 60),
		focused:        fieldName,
	}
	s.categoryInput.Model.Blur()
	return s
}

func (s *LookupScreen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *LookupScreen) Title() string {
	return "Buscar treinamento"
}

func (s *LookupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Trocar campo"},
		{Key: "Enter", Description: "Buscar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *LookupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "shift+tab", "down", "up":
			s.toggleFocus()
			return s, nil
		case "enter":
			return s.resolve()
		}
	}

	var cmd tea.Cmd
	if s.focused == fieldName {
		s.nameInput, cmd = s.nameInput.Update(msg)
	} else {
		s.categoryInput, cmd = s.categoryInput.Update(msg)
	}
	return s, cmd
}

func (s *LookupScreen) toggleFocus() {
	if s.focused == fieldName {
		s.focused = fieldCategory
		s.nameInput.Model.Blur()
		s.categoryInput.Model.Focus()
	} else {
		s.focused = fieldName
		s.categoryInput.Model.Blur()
		s.nameInput.Model.Focus()
	}
}

// resolve opens the training for the typed service. A name that matches no
// module still opens the training screen, which renders its unavailable
// state; the screen replaces this one so closing it lands back on home.
func (s *LookupScreen) resolve() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(s.nameInput.Value())
	category := strings.TrimSpace(s.categoryInput.Value())
	if name == "" && category == "" {
		s.warning = "Digite o nome do serviço."
		return s, nil
	}

	key, ok := catalog.Resolve(name, category)
	if !ok {
		// Keep the typed name as the key so the unavailable view has
		// something honest to show.
		key = catalog.Normalize(name)
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: trainingscreen.New(key, s.eventRepo, s.completionRepo),
		}
	}
}

func (s *LookupScreen) View(width, height int) string {
	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		return style.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("  Qual serviço você vai prestar?"))
	b.WriteString("\n\n")
	b.WriteString(label("Serviço", s.focused == fieldName))
	b.WriteString("\n  ")
	b.WriteString(s.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(label("Categoria", s.focused == fieldCategory))
	b.WriteString("\n  ")
	b.WriteString(s.categoryInput.View())
	b.WriteString("\n\n")
	if s.warning != "" {
		b.WriteString(theme.Notice.Render("  " + s.warning))
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Render("  O nome do serviço tem prioridade sobre a categoria."))
	return b.String()
}
