// Package app wires the Bubble Tea program: the screen router, the shared
// frame and the store handles the screens draw from.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmfarias/capacita/internal/catalog"
	"github.com/rmfarias/capacita/internal/router"
	"github.com/rmfarias/capacita/internal/screen"
	"github.com/rmfarias/capacita/internal/screens/home"
	"github.com/rmfarias/capacita/internal/store"
	"github.com/rmfarias/capacita/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router         *router.Router
	completionRepo store.CompletionRepo
	completed      int
	width          int
	height         int
}

// newAppModel creates a new AppModel rooted at the home screen.
func newAppModel(eventRepo store.EventRepo, completionRepo store.CompletionRepo) AppModel {
	homeScreen := home.New(eventRepo, completionRepo)
	return AppModel{
		router:         router.New(homeScreen),
		completionRepo: completionRepo,
		completed:      homeScreen.CompletedCount(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.RefreshMsg:
		m.completed = m.countCompleted()

	case tea.KeyMsg:
		// Esc stays with the screens so they can clean up before popping.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) countCompleted() int {
	if m.completionRepo == nil {
		return 0
	}
	completions, err := m.completionRepo.Completions(context.Background())
	if err != nil {
		return m.completed
	}
	count := 0
	for _, key := range catalog.Keys() {
		if completions[key] {
			count++
		}
	}
	return count
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.completed, len(catalog.Keys()), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Selecionar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Sair"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(eventRepo store.EventRepo, completionRepo store.CompletionRepo) error {
	p := tea.NewProgram(newAppModel(eventRepo, completionRepo))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
