// Package progression decides what is played next: campaign level order and
// star ratings, infinite-round escalation with ammo carry-over, and the
// persisted high score.
package progression

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . HighScoreStore

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/round"
)

var (
	// ErrNoMoreLevels is returned by Next after the last campaign level.
	ErrNoMoreLevels = errors.New("progression: no more levels")
	// ErrUnknownLevel is returned for a campaign level id not in the table.
	ErrUnknownLevel = errors.New("progression: unknown level")
	// ErrNotWon is returned by Next when the last round was not won.
	ErrNotWon = errors.New("progression: last round was not won")
)

// HighScoreStore persists the single high-score scalar.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Plan describes the round to start.
type Plan struct {
	Mode  core.Mode
	Level int    // Campaign level id
	Round int    // Infinite round, 1-based
	Name  string // Level name, or "Round N" in infinite mode
	Ammo  int
	Score int // Score carried into the round
}

// Result summarises a finished round.
type Result struct {
	Outcome      round.State
	Score        int
	Stars        int
	Earned       [3]bool
	HasNext      bool
	HighScore    int
	NewHighScore bool
	RunOver      bool // Infinite run ended, or campaign attempt finished
}

// Manager tracks progression across rounds.
type Manager struct {
	campaign config.CampaignConfig
	infinite config.InfiniteConfig
	store    HighScoreStore
	log      *log.Logger

	mode      core.Mode
	level     int
	round     int
	carried   int
	runScore  int
	lastWon   bool
	started   bool
	highScore int
	runBest   bool
}

// New creates a manager and reads the persisted high score once. A store
// error is logged and the high score starts at zero.
func New(cfg config.Config, store HighScoreStore, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{
		campaign: cfg.Campaign,
		infinite: cfg.Infinite,
		store:    store,
		log:      logger,
	}
	if store != nil {
		hs, err := store.HighScore()
		if err != nil {
			logger.Warn("high score unavailable", "err", err)
		} else {
			m.highScore = hs
		}
	}
	return m
}

// StartCampaign plans a fresh attempt at a campaign level.
func (m *Manager) StartCampaign(levelID int) (Plan, error) {
	lvl, ok := m.campaign.Level(levelID)
	if !ok {
		return Plan{}, fmt.Errorf("%w: %d", ErrUnknownLevel, levelID)
	}
	m.mode = core.ModeCampaign
	m.level = lvl.ID
	m.round = 0
	m.lastWon = false
	m.started = true
	return Plan{Mode: core.ModeCampaign, Level: lvl.ID, Name: lvl.Name, Ammo: lvl.Ammo}, nil
}

// StartInfinite plans round 1 of a new infinite run with score 0.
func (m *Manager) StartInfinite() Plan {
	m.mode = core.ModeInfinite
	m.level = 0
	m.round = 1
	m.carried = 0
	m.runScore = 0
	m.lastWon = false
	m.started = true
	m.runBest = false
	return m.infinitePlan()
}

func (m *Manager) infinitePlan() Plan {
	return Plan{
		Mode:  core.ModeInfinite,
		Round: m.round,
		Name:  fmt.Sprintf("Round %d", m.round),
		Ammo:  m.InfiniteAmmo(m.round, m.carried),
		Score: m.runScore,
	}
}

// RoundWon records a won round. In campaign mode it rates the score; in
// infinite mode it keeps the leftover ammo and score for the next round.
func (m *Manager) RoundWon(snap round.Snapshot) Result {
	m.lastWon = true
	res := Result{Outcome: round.Won, Score: snap.Score}

	switch m.mode {
	case core.ModeCampaign:
		if lvl, ok := m.campaign.Level(m.level); ok {
			res.Stars, res.Earned = Stars(lvl.Stars, snap.Score)
		}
		res.HasNext = m.HasNext()
		res.RunOver = true
	case core.ModeInfinite:
		m.carried = snap.Ammo
		m.runScore = snap.Score
		m.ObserveScore(snap.Score)
		res.HasNext = true
	}
	res.HighScore = m.highScore
	res.NewHighScore = m.runBest
	return res
}

// RoundLost records a lost round. An infinite loss ends the run.
func (m *Manager) RoundLost(snap round.Snapshot) Result {
	m.lastWon = false
	if m.mode == core.ModeInfinite {
		m.runScore = snap.Score
		m.ObserveScore(snap.Score)
	}
	return Result{
		Outcome:      round.Lost,
		Score:        snap.Score,
		HighScore:    m.highScore,
		NewHighScore: m.runBest,
		RunOver:      true,
	}
}

// Next plans the following level or round after a win.
func (m *Manager) Next() (Plan, error) {
	if !m.started || !m.lastWon {
		return Plan{}, ErrNotWon
	}
	switch m.mode {
	case core.ModeCampaign:
		if !m.HasNext() {
			return Plan{}, ErrNoMoreLevels
		}
		return m.StartCampaign(m.level + 1)
	default:
		m.round++
		m.lastWon = false
		return m.infinitePlan(), nil
	}
}

// Retry replays the current campaign level from zero, or starts a new
// infinite run.
func (m *Manager) Retry() (Plan, error) {
	if m.mode == core.ModeCampaign && m.started {
		return m.StartCampaign(m.level)
	}
	return m.StartInfinite(), nil
}

// HasNext reports whether a campaign level follows the current one.
func (m *Manager) HasNext() bool {
	if m.mode != core.ModeCampaign {
		return m.mode == core.ModeInfinite && m.lastWon
	}
	_, ok := m.campaign.Level(m.level + 1)
	return ok
}

// ObserveScore persists score when it beats the high score in infinite mode.
// A store failure is logged and the in-memory value stays authoritative.
func (m *Manager) ObserveScore(score int) bool {
	if m.mode != core.ModeInfinite || score <= m.highScore {
		return false
	}
	m.highScore = score
	m.runBest = true
	if m.store != nil {
		if err := m.store.SetHighScore(score); err != nil {
			m.log.Warn("high score not persisted", "score", score, "err", err)
		} else {
			m.log.Debug("high score saved", "score", score)
		}
	}
	return true
}

// HighScore returns the best infinite score seen by this process or persisted
// before it started.
func (m *Manager) HighScore() int {
	return m.highScore
}

// InfiniteAmmo returns the starting ammo of an infinite round. Round 1 gets
// the start allowance; later rounds add the replenishment to what was left.
func (m *Manager) InfiniteAmmo(round, carried int) int {
	if round <= 1 {
		return m.infinite.StartAmmo
	}
	if carried <= 0 {
		return m.infinite.Replenish
	}
	return carried + m.infinite.Replenish
}

// Stars rates a score against three ascending thresholds. Each star is earned
// independently when the score reaches its threshold.
func Stars(thresholds [3]int, score int) (int, [3]bool) {
	var earned [3]bool
	n := 0
	for i, th := range thresholds {
		if score >= th {
			earned[i] = true
			n++
		}
	}
	return n, earned
}
