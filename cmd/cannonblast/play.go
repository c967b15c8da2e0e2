package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/platform/tui"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/session"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/storage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/world/cpworld"
)

var playCmd = &cobra.Command{
	Use:   "play [level|infinite]",
	Short: "Play a campaign level or the infinite mode",
	Long: `Start playing directly, without the menu.

Controls:
  Mouse drag     - Press near the cannon, drag to aim, release to fire
  Up/Down        - Raise or lower the barrel
  Left/Right     - Less or more power
  Space/Enter    - Fire
  N              - Next level or round after a win
  R              - Retry
  Esc            - Back
  Q/Ctrl+C       - Quit

Examples:
  cannonblast play 1
  cannonblast play infinite
  cannonblast play infinite --seed 7 --log-file ./cannonblast.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// game bundles what one interactive run needs.
type game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	closer  io.Closer
}

func openGame() (*game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	// The terminal belongs to Bubble Tea, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	var closer io.Closer
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out, closer = f, f
	}
	logger := log.NewWithOptions(out, log.Options{ReportTimestamp: true, Prefix: "cannonblast"})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("playing without a scores database", "err", err)
		store = nil
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = cfg.Physics.TickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	return &game{
		cfg:     cfg,
		runtime: rt,
		store:   store,
		logger:  logger,
		closer:  closer,
	}, nil
}

func (g *game) Close() {
	if g.store != nil {
		g.store.Close()
	}
	if g.closer != nil {
		g.closer.Close()
	}
}

// newSession wires a fresh physics world, progression and recorder.
func (g *game) newSession() *session.Session {
	var hs progression.HighScoreStore
	var rec session.RunRecorder
	if g.store != nil {
		hs, rec = g.store, g.store
	}
	return session.New(session.Options{
		Config:      g.cfg,
		World:       cpworld.New(g.cfg.Physics.Gravity),
		Progression: progression.New(g.cfg, hs, g.logger),
		Recorder:    rec,
		Logger:      g.logger,
		Seed:        g.runtime.Seed,
	})
}

func (g *game) highScore() int {
	if g.store == nil {
		return 0
	}
	hs, err := g.store.HighScore()
	if err != nil {
		g.logger.Warn("high score unavailable", "err", err)
	}
	return hs
}

// play runs one selection and reports whether to return to the menu.
func (g *game) play(mode core.Mode, level int) (bool, error) {
	s := g.newSession()
	var err error
	if mode == core.ModeInfinite {
		err = s.StartInfinite()
	} else {
		err = s.StartCampaign(level)
	}
	if err != nil {
		return false, err
	}
	return tui.Run(s, g.runtime)
}

// parseTarget reads "infinite" or a campaign level id.
func parseTarget(arg string) (core.Mode, int, error) {
	if mode, err := core.ParseMode(arg); err == nil && mode == core.ModeInfinite {
		return mode, 0, nil
	}
	level, err := strconv.Atoi(arg)
	if err != nil {
		return 0, 0, fmt.Errorf("expected a level number or %q, got %q", "infinite", arg)
	}
	return core.ModeCampaign, level, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runMenu(cmd, args)
	}
	mode, level, err := parseTarget(args[0])
	if err != nil {
		return err
	}

	g, err := openGame()
	if err != nil {
		return err
	}
	defer g.Close()

	_, err = g.play(mode, level)
	return err
}

func runMenu(_ *cobra.Command, _ []string) error {
	g, err := openGame()
	if err != nil {
		return err
	}
	defer g.Close()

	for {
		res, err := tui.RunMenu(g.cfg.Campaign.Levels, g.highScore(), g.runtime)
		if err != nil {
			return err
		}
		g.runtime.ScreenW, g.runtime.ScreenH = res.Config.ScreenW, res.Config.ScreenH

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			var src tui.RunSource
			if g.store != nil {
				src = g.store
			}
			goBack, err := tui.RunScoreboard(src, g.runtime.ScreenW, g.runtime.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		default:
			goBack, err := g.play(res.Item.Mode, res.Item.Level)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		}
	}
}
