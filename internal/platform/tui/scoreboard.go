package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/storage"
)

const maxRuns = 100

// RunSource is the part of the store the scoreboard reads.
type RunSource interface {
	BestRuns(mode string, limit int) ([]storage.Run, error)
	HighScore() (int, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardModes = []core.Mode{core.ModeCampaign, core.ModeInfinite}

// ScoreboardModel shows the best runs per mode.
type ScoreboardModel struct {
	source    RunSource
	tab       int
	runs      []storage.Run
	highScore int
	err       error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing campaign runs first.
func NewScoreboardModel(source RunSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if source != nil {
		m.highScore, m.err = source.HighScore()
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) mode() core.Mode {
	return scoreboardModes[m.tab]
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 8},
		{Title: "Stars", Width: 7},
		{Title: "Result", Width: 8},
		{Title: "Date", Width: 14},
	}
	if m.mode() == core.ModeInfinite {
		columns[2].Title = "Round"
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) load() {
	m.runs = nil
	if m.source != nil {
		runs, err := m.source.BestRuns(m.mode().String(), maxRuns)
		if err != nil {
			m.err = err
		}
		m.runs = runs
	}
	m.table.SetRows(runRows(m.mode(), m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(mode core.Mode, runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		stage := fmt.Sprintf("%d", r.Level)
		stars := strings.Repeat("★", r.Stars)
		if mode == core.ModeInfinite {
			stage = fmt.Sprintf("%d", r.Round)
			stars = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			stage,
			stars,
			r.Outcome,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(scoreboardModes)
			m.table = m.createTable()
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(scoreboardModes) - 1) % len(scoreboardModes)
			m.table = m.createTable()
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.mode(), m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("infinite best: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(scoreboardModes))
	for i, mode := range scoreboardModes {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(mode.String())
		} else {
			tabs[i] = tabStyle.Render(mode.String())
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	content := m.table.View()
	switch {
	case m.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error())
	case len(m.runs) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No runs recorded yet.")
	}
	b.WriteString(centerText(boxStyle.Render(content), m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(source RunSource, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
