// Package home implements the main menu: the module list with completion
// status plus entry points for lookup and history.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmfarias/capacita/internal/catalog"
	"github.com/rmfarias/capacita/internal/router"
	"github.com/rmfarias/capacita/internal/screen"
	"github.com/rmfarias/capacita/internal/screens/history"
	"github.com/rmfarias/capacita/internal/screens/lookup"
	trainingscreen "github.com/rmfarias/capacita/internal/screens/training"
	"github.com/rmfarias/capacita/internal/store"
	"github.com/rmfarias/capacita/internal/ui/components"
	"github.com/rmfarias/capacita/internal/ui/layout"
	"github.com/rmfarias/capacita/internal/ui/theme"
)

// HomeScreen is the application's root screen.
type HomeScreen struct {
	menu           components.Menu
	eventRepo      store.EventRepo
	completionRepo store.CompletionRepo
	completed      map[string]bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen and loads the current completion record.
func New(eventRepo store.EventRepo, completionRepo store.CompletionRepo) *HomeScreen {
	h := &HomeScreen{
		eventRepo:      eventRepo,
		completionRepo: completionRepo,
	}
	h.reload()
	return h
}

// reload re-reads completions and rebuilds the menu, keeping the cursor.
func (h *HomeScreen) reload() {
	completed := make(map[string]bool)
	if h.completionRepo != nil {
		if m, err := h.completionRepo.Completions(context.Background()); err == nil {
			completed = m
		}
	}
	h.completed = completed

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.buildItems())
	if selected > 0 && selected < len(h.menu.Items) {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	var items []components.MenuItem

	for _, key := range catalog.Keys() {
		key := key
		detail := ""
		if h.completed[key] {
			detail = theme.Correct.Render("✔ concluído")
		}
		items = append(items, components.MenuItem{
			Label:  catalog.Get(key).Label,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: trainingscreen.New(key, h.eventRepo, h.completionRepo),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Buscar por serviço", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lookup.New(h.eventRepo, h.completionRepo),
				}
			}
		}},
		components.MenuItem{Label: "Histórico", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(h.eventRepo, h.completionRepo),
				}
			}
		}},
		components.MenuItem{Label: "Sair", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Início"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "Q", Description: "Sair"},
	}
}

// CompletedCount returns how many catalog modules have a stored completion.
func (h *HomeScreen) CompletedCount() int {
	count := 0
	for _, key := range catalog.Keys() {
		if h.completed[key] {
			count++
		}
	}
	return count
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RefreshMsg:
		h.reload()
		return h, nil
	case tea.KeyMsg:
		if msg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Treinamentos Capacita"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d de %d módulos concluídos", h.CompletedCount(), len(catalog.Keys()))))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())
	return b.String()
}
