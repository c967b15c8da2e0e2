package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/damage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/round"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/session"
)

// Keyboard aiming steps.
const (
	angleStep = math.Pi / 90
	powerStep = 0.02
	statusFor = 2 * time.Second
)

// hudRows are the terminal rows not used by the arena.
const hudRows = 3

// Model is the Bubble Tea model of one play session.
type Model struct {
	session   *session.Session
	events    *session.ChannelSubscriber
	screen    *core.Screen
	view      Viewport
	config    core.RuntimeConfig
	keys      PlayKeyMap
	help      help.Model
	status    string
	statusTTL time.Duration
	quitting  bool
	goingBack bool
}

// NewModel wraps a session that already has a round installed.
func NewModel(s *session.Session, cfg core.RuntimeConfig) Model {
	events := session.NewChannelSubscriber(256)
	s.Subscribe(events)

	m := Model{
		session: s,
		events:  events,
		config:  cfg,
		keys:    DefaultPlayKeyMap(),
		help:    help.New(),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	if snap := s.Snapshot(); snap.Round.State == round.Active {
		m.flash(fmt.Sprintf("%s: %d targets", snap.Plan.Name, snap.Round.Targets))
	}
	return m
}

func (m *Model) resize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	rows := max(h-hudRows, 1)
	scene := m.session.Scene()
	m.view = NewViewport(scene.Width, scene.Height, w, rows)
	if m.screen == nil {
		m.screen = core.NewScreen(m.view.Cols, m.view.Rows)
	} else {
		m.screen.Resize(m.view.Cols, m.view.Rows)
	}
	m.help.Width = w
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		m.close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.AimUp):
		m.session.Nudge(-angleStep, 0)
	case key.Matches(msg, m.keys.AimDown):
		m.session.Nudge(angleStep, 0)
	case key.Matches(msg, m.keys.PowerUp):
		m.session.Nudge(0, powerStep)
	case key.Matches(msg, m.keys.PowerDown):
		m.session.Nudge(0, -powerStep)
	case key.Matches(msg, m.keys.Fire):
		if !m.session.FireAim() {
			m.flash("no shot")
		}
	case key.Matches(msg, m.keys.Next):
		if err := m.session.Next(); err != nil {
			m.flash(err.Error())
		}
	case key.Matches(msg, m.keys.Retry):
		if err := m.session.Retry(); err != nil {
			m.flash(err.Error())
		}
	case key.Matches(msg, m.keys.Snapshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	row := msg.Y - 1 // HUD line above the arena
	p := m.view.World(msg.X, row)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.session.PointerDown(p)
		}
	case tea.MouseActionMotion:
		m.session.PointerMove(p)
	case tea.MouseActionRelease:
		m.session.PointerUp()
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Tick()
	for _, evt := range m.events.Drain() {
		m.consume(evt)
	}
	if m.statusTTL > 0 {
		m.statusTTL -= time.Second / time.Duration(max(m.config.TickRate, 1))
	}
	return m, tickCmd(m.config.TickRate)
}

// consume turns session events into status lines.
func (m *Model) consume(evt session.Event) {
	switch e := evt.(type) {
	case session.RoundStartedEvent:
		m.flash(fmt.Sprintf("%s: %d targets", e.Plan.Name, e.Targets))
	case session.EffectEvent:
		if d, ok := e.Effect.(damage.Destroyed); ok && d.Points > 0 {
			m.flash(fmt.Sprintf("+%d", d.Points))
		}
	case session.ScoreEvent:
		if e.NewHighScore {
			m.flash("new high score!")
		}
	case session.RoundEndedEvent:
		m.flash(resultLine(e.Result, m.session.HasNext()))
		m.statusTTL = time.Hour
	}
}

func (m *Model) flash(s string) {
	m.status = s
	m.statusTTL = statusFor
}

func (m Model) close() {
	m.events.Close()
	m.session.Quit()
}

// saveScreenshot writes the arena as plain text.
func (m Model) saveScreenshot() {
	m.draw()
	dir := filepath.Join(os.Getenv("HOME"), ".cannonblast", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)
	name := fmt.Sprintf("cannonblast_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

func (m Model) draw() {
	m.screen.Clear()
	DrawBodies(m.screen, m.view, m.session.Bodies())
	snap := m.session.Snapshot()
	switch {
	case snap.Round.State == round.Active:
		DrawCannon(m.screen, m.view, m.session.Cannon(), snap.Aim, m.session.Trajectory())
	case snap.Result != nil && snap.Result.Outcome == round.Won:
		DrawBanner(m.screen, "STRUCTURE CLEARED")
	case snap.Result != nil:
		DrawBanner(m.screen, "OUT OF AMMO")
	}
}

// View renders the HUD, the arena and the help bar.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	m.draw()

	var b strings.Builder
	b.WriteString(hudLine(m.session.Snapshot(), m.config.ScreenW))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.statusTTL > 0 {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("  ")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// hudLine formats the top bar.
func hudLine(s session.Snapshot, width int) string {
	left := fmt.Sprintf("%s  ammo %d  targets %d", s.Plan.Name, s.Round.Ammo, s.Round.Targets)
	if s.Round.GraceActive {
		left += fmt.Sprintf("  %.1fs", s.Round.GraceRemaining.Seconds())
	}
	right := fmt.Sprintf("score %d  best %d  aim %3.0f° %3.0f%%",
		s.Round.Score, s.HighScore, -s.Aim.Angle*180/math.Pi, s.Aim.Power*100)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-4, 1)
	return hudStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// resultLine summarises a finished round.
func resultLine(r progression.Result, hasNext bool) string {
	var b strings.Builder
	switch r.Outcome {
	case round.Won:
		b.WriteString("cleared! ")
		if r.RunOver {
			b.WriteString(strings.Repeat("★", r.Stars) + strings.Repeat("☆", 3-r.Stars) + " ")
		}
	default:
		b.WriteString("out of ammo. ")
	}
	fmt.Fprintf(&b, "score %d", r.Score)
	if r.NewHighScore {
		b.WriteString(" (new best)")
	}
	if hasNext {
		b.WriteString("  n: next")
	}
	b.WriteString("  r: retry")
	return b.String()
}

// IsGoingBack reports whether the player asked for the menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// Run plays s until the player quits or goes back to the menu.
func Run(s *session.Session, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
