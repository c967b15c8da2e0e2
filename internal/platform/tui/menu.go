package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// MenuItem is one selectable entry: a campaign level or the infinite mode.
type MenuItem struct {
	Mode  core.Mode
	Level int // Campaign only
	Title string
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	highScore      int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the campaign levels followed by the infinite mode.
func NewMenuModel(levels []config.LevelConfig, highScore int, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(levels)+1)
	for _, l := range levels {
		items = append(items, MenuItem{
			Mode:  core.ModeCampaign,
			Level: l.ID,
			Title: fmt.Sprintf("Level %d  %s", l.ID, l.Name),
		})
	}
	items = append(items, MenuItem{Mode: core.ModeInfinite, Title: "Infinite"})

	return MenuModel{
		items:     items,
		highScore: highScore,
		config:    cfg,
		keys:      DefaultMenuKeyMap(),
		help:      help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C A N N O N   B L A S T"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("infinite best: %d", m.highScore), width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), width))
	b.WriteString("\n")
	return b.String()
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item            *MenuItem
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result converts the final model state.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		res.WantsScoreboard = true
	case m.quitting || m.selected == nil:
		res.Quit = true
	default:
		res.Item = m.selected
	}
	return res
}

// RunMenu runs the menu and returns the selection.
func RunMenu(levels []config.LevelConfig, highScore int, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(levels, highScore, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
