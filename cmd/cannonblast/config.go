package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default rules or check a rules file",
	Long: `Without flags, prints the built-in rules document. Save it as
~/.cannonblast/config.yaml or ./configs/cannonblast.yaml to override it.

With --check, loads the rules the other commands would use and reports
whether they are valid.

Examples:
  cannonblast config > ~/.cannonblast/config.yaml
  cannonblast config --check --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the active rules instead of printing defaults")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigCheck {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Printf("ok: %d campaign levels, %d reinforced steps, grace %s\n",
		len(cfg.Campaign.Levels), len(cfg.Infinite.Escalation.Reinforced), cfg.Round.Grace)
	return nil
}
