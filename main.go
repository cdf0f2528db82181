package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cardstack/internal/config"
	"github.com/llehouerou/cardstack/internal/keymap"
	"github.com/llehouerou/cardstack/internal/ui"
	"github.com/llehouerou/cardstack/internal/ui/countprompt"
	"github.com/llehouerou/cardstack/internal/ui/deckview"
	"github.com/llehouerou/cardstack/internal/ui/styles"
)

type model struct {
	deck     *deckview.Model
	resolver *keymap.Resolver

	prompt     countprompt.Model
	promptOpen bool

	gradientFrom lipgloss.Color
	gradientTo   lipgloss.Color

	width  int
	height int
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	from := lipgloss.Color(cfg.Demo.GradientFrom)
	to := lipgloss.Color(cfg.Demo.GradientTo)

	deck, err := deckview.New(cfg.Stack(), cfg.Demo.ItemCount, cfg.InitialState(), from, to)
	if err != nil {
		return model{}, err
	}

	return model{
		deck:         deck,
		resolver:     keymap.NewResolver(keymap.ByContext("global")),
		gradientFrom: from,
		gradientTo:   to,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) deckHeight() int {
	return m.height - ui.HeaderHeight - ui.FooterHeight
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.deck.SetSize(m.width, m.deckHeight())
		return m, nil

	case countprompt.SubmittedMsg:
		m.deck.SetItemCount(msg.Count)
		m.promptOpen = false
		return m, nil

	case countprompt.CancelledMsg:
		m.promptOpen = false
		return m, nil

	case tea.KeyMsg:
		if m.promptOpen {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		switch m.resolver.Resolve(msg.String()) {
		case keymap.ActionQuit:
			return m, tea.Quit
		case keymap.ActionSetCount:
			m.prompt = countprompt.New(m.deck.Controller().ItemCount())
			m.promptOpen = true
			return m, m.prompt.Init()
		}
		return m, m.deck.Update(msg)

	case tea.MouseMsg:
		return m, m.deck.Update(msg)
	}

	if m.promptOpen {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	title := styles.ApplyGradient("cardstack", m.gradientFrom, m.gradientTo)

	footer := styles.Footer().Render(
		m.deck.Status() + " · drag or space to move the deck · n cards · q quit")
	if m.promptOpen {
		footer = m.prompt.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, m.deck.View(), footer)
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
