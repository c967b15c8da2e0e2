// cannonblast is an artillery puzzle played in the terminal: knock every
// destructible block off its platform before the shots run out.
//
// Usage:
//
//	cannonblast                  - Start menu to pick a level or infinite mode
//	cannonblast play [level]     - Play a campaign level, or "infinite"
//	cannonblast levels           - List campaign levels and infinite patterns
//	cannonblast generate <n>     - Print a generated structure as YAML
//	cannonblast simulate <n>     - Run a round headless with a fixed aim
//	cannonblast scores           - Show recorded runs
//	cannonblast config           - Print the default rules
//
// Global flags:
//
//	--config <path>   - Rules file (default: search ~/.cannonblast, ./configs)
//	--db <path>       - Set database path (default: ~/.cannonblast/scores.db)
//	--seed <value>    - Salt for infinite layouts (0 = time based)
//	--fps <rate>      - Set tick rate of the terminal loop
//	--log-level <lvl> - debug, info, warn or error
//	--log-file <path> - Log destination while the terminal UI runs
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
)

var (
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cannonblast",
	Short: "Cannon Blast - topple block structures with a cannon",
	Long: `Cannon Blast is a physics artillery game for the terminal.

Aim the cannon, fire, and knock every wood and reinforced block off the
platform. Campaign levels are rated with stars; infinite mode keeps going
with harder structures until a round is lost.

Examples:
  cannonblast
  cannonblast play 2
  cannonblast play infinite --seed 42
  cannonblast generate 16 --mode infinite
  cannonblast scores --mode infinite`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cannonblast/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Salt for infinite layouts (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Terminal tick rate (0 = physics tick rate)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the stderr logger used by the headless commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cannonblast",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig reads the rules and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
