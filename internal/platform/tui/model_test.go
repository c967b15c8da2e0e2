package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/round"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/session"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/storage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/world/cpworld"
)

func newPlayModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	s := session.New(session.Options{
		Config: cfg,
		World:  cpworld.New(cfg.Physics.Gravity),
	})
	if err := s.StartCampaign(1); err != nil {
		t.Fatal(err)
	}
	return NewModel(s, core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelFireKey(t *testing.T) {
	m := newPlayModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if got := m.session.Snapshot().Round.Ammo; got != 6 {
		t.Errorf("Ammo = %d after fire, expected 6", got)
	}
}

func TestModelAimKeys(t *testing.T) {
	m := newPlayModel(t)
	before := m.session.Snapshot().Aim

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyRight})
	after := next.(Model).session.Snapshot().Aim

	if after.Angle >= before.Angle {
		t.Errorf("Angle = %v, expected raised from %v", after.Angle, before.Angle)
	}
	if after.Power <= before.Power {
		t.Errorf("Power = %v, expected above %v", after.Power, before.Power)
	}
}

func TestModelTickAdvancesSession(t *testing.T) {
	m := newPlayModel(t)
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	m = next.(Model)
	if m.session.Snapshot().Elapsed == 0 {
		t.Error("session clock did not advance")
	}
	if !strings.Contains(m.status, "The Pyramid") {
		t.Errorf("status = %q, expected round start", m.status)
	}
}

func TestModelBackKey(t *testing.T) {
	m := newPlayModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc did not return to the menu")
	}
	if m.View() != "" {
		t.Error("View() after leaving is not empty")
	}
	if st := m.session.Snapshot().Round.State; st != round.Idle {
		t.Errorf("State = %v, expected idle", st)
	}
}

func TestModelNextBeforeWinFlashes(t *testing.T) {
	m := newPlayModel(t)
	next, _ := m.Update(runes("n"))
	m = next.(Model)
	if m.status != progression.ErrNotWon.Error() {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelView(t *testing.T) {
	m := newPlayModel(t)
	out := m.View()
	if !strings.Contains(out, "ammo 7") || !strings.Contains(out, "targets 21") {
		t.Errorf("View() HUD missing round state:\n%s", out)
	}
}

func TestResultLine(t *testing.T) {
	tests := []struct {
		name    string
		res     progression.Result
		hasNext bool
		want    []string
	}{
		{"campaign win", progression.Result{Outcome: round.Won, Score: 6500, Stars: 2, RunOver: true}, true,
			[]string{"★★☆", "score 6500", "n: next"}},
		{"infinite win", progression.Result{Outcome: round.Won, Score: 900}, true,
			[]string{"cleared!", "n: next"}},
		{"loss", progression.Result{Outcome: round.Lost, Score: 40, NewHighScore: true}, false,
			[]string{"out of ammo", "(new best)", "r: retry"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultLine(tt.res, tt.hasNext)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("resultLine() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestMenuSelection(t *testing.T) {
	cfg := config.Default()
	m := NewMenuModel(cfg.Campaign.Levels, 1200, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) != 4 {
		t.Fatalf("items = %d, expected 3 levels and infinite", len(m.items))
	}

	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("select did not quit the menu")
	}
	res := model.(MenuModel).result()
	if res.Item == nil || res.Item.Mode != core.ModeInfinite {
		t.Errorf("result = %+v, expected infinite", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, 0, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if res := next.(MenuModel).result(); !res.WantsScoreboard {
		t.Errorf("result = %+v, expected scoreboard", res)
	}
	next, _ = m.Update(runes("q"))
	if res := next.(MenuModel).result(); !res.Quit {
		t.Errorf("result = %+v, expected quit", res)
	}
}

type fakeRuns struct {
	runs map[string][]storage.Run
	err  error
}

func (f fakeRuns) BestRuns(mode string, limit int) ([]storage.Run, error) {
	return f.runs[mode], f.err
}

func (f fakeRuns) HighScore() (int, error) { return 4200, nil }

func TestScoreboardTabs(t *testing.T) {
	src := fakeRuns{runs: map[string][]storage.Run{
		"campaign": {{Mode: "campaign", Level: 2, Score: 5000, Stars: 3, Outcome: "won"}},
		"infinite": {{Mode: "infinite", Round: 9, Score: 4200, Outcome: "lost"}, {Mode: "infinite", Round: 3, Score: 800, Outcome: "lost"}},
	}}
	m := NewScoreboardModel(src, 100, 30)
	if len(m.runs) != 1 || m.highScore != 4200 {
		t.Fatalf("campaign runs = %d high = %d", len(m.runs), m.highScore)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.mode() != core.ModeInfinite || len(m.runs) != 2 {
		t.Errorf("mode = %v runs = %d, expected infinite with 2", m.mode(), len(m.runs))
	}
	if !strings.Contains(m.View(), "4200") {
		t.Error("View() missing best run")
	}
}

func TestScoreboardShowsError(t *testing.T) {
	m := NewScoreboardModel(fakeRuns{err: errors.New("disk gone")}, 100, 30)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("View() hides the store error")
	}
}

func TestRunRowsInfinite(t *testing.T) {
	rows := runRows(core.ModeInfinite, []storage.Run{{Round: 7, Score: 100, Outcome: "lost"}})
	if rows[0][2] != "7" || rows[0][3] != "-" {
		t.Errorf("row = %v", rows[0])
	}
}
