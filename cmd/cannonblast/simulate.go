package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/damage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/round"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/session"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/world/cpworld"
)

var (
	flagSimAngle    float64
	flagSimPower    float64
	flagSimInterval time.Duration
	flagSimLimit    time.Duration
	flagSimRounds   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [level|infinite]",
	Short: "Play rounds headless with a fixed aim",
	Long: `Runs the physics without a terminal UI. Every shot uses the same
angle (degrees above the horizon) and power, fired at a fixed interval.
Infinite runs continue through won rounds up to --rounds.

Nothing is written to the scores database.

Examples:
  cannonblast simulate 1 --angle 30 --power 0.8
  cannonblast simulate infinite --rounds 5 --seed 9 --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimAngle, "angle", 35, "Barrel angle in degrees above the horizon")
	simulateCmd.Flags().Float64Var(&flagSimPower, "power", 0.85, "Launch power in [0,1]")
	simulateCmd.Flags().DurationVar(&flagSimInterval, "interval", 1500*time.Millisecond, "Simulated time between shots")
	simulateCmd.Flags().DurationVar(&flagSimLimit, "limit", 2*time.Minute, "Simulated time limit per round")
	simulateCmd.Flags().IntVar(&flagSimRounds, "rounds", 3, "Maximum infinite rounds")
}

func runSimulate(_ *cobra.Command, args []string) error {
	mode, level, err := parseTarget(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	s := session.New(session.Options{
		Config:      cfg,
		World:       cpworld.New(cfg.Physics.Gravity),
		Progression: progression.New(cfg, nil, logger),
		Logger:      logger,
		Seed:        flagSeed,
	})
	s.Subscribe(session.SubscriberFunc(func(evt session.Event) {
		if e, ok := evt.(session.EffectEvent); ok {
			if d, ok := e.Effect.(damage.Destroyed); ok {
				logger.Debug("destroyed", "unit", d.Unit, "kind", d.Kind, "cause", d.Cause, "points", d.Points)
			}
		}
	}))

	if mode == core.ModeInfinite {
		err = s.StartInfinite()
	} else {
		err = s.StartCampaign(level)
	}
	if err != nil {
		return err
	}

	angle := -flagSimAngle * math.Pi / 180
	for played := 1; ; played++ {
		res, err := simulateRound(s, angle, flagSimPower)
		if err != nil {
			return err
		}
		snap := s.Snapshot()
		fmt.Printf("%-14s %-6s score %-7d bonus %-6d stars %d\n",
			snap.Plan.Name, res.Outcome, res.Score, snap.Round.Bonus, res.Stars)

		if mode != core.ModeInfinite || res.Outcome != round.Won || played >= flagSimRounds {
			return nil
		}
		if err := s.Next(); err != nil {
			return err
		}
	}
}

// simulateRound fires on a fixed cadence and ticks until the round ends.
func simulateRound(s *session.Session, angle, power float64) (progression.Result, error) {
	start := s.Snapshot().Elapsed
	nextShot := start
	for {
		snap := s.Snapshot()
		if snap.Result != nil {
			return *snap.Result, nil
		}
		if snap.Elapsed-start > flagSimLimit {
			s.Quit()
			return progression.Result{}, fmt.Errorf("round %q did not finish within %s", snap.Plan.Name, flagSimLimit)
		}
		if snap.Elapsed >= nextShot && snap.Round.Ammo > 0 {
			s.Fire(angle, power)
			nextShot = snap.Elapsed + flagSimInterval
		}
		s.Tick()
	}
}
