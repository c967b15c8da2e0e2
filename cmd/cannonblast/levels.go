package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/structure"
)

var flagRounds int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels and the infinite pattern cycle",
	Long: `Shows the campaign levels with their ammunition and star thresholds,
followed by the first infinite rounds with pattern, scale, ammunition
for a player that ends each round empty, and reinforced chance.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagRounds, "rounds", 12, "Infinite rounds to list")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Campaign:")
	fmt.Println()
	fmt.Printf("  %-3s  %-18s  %-8s  %-4s  %s\n", "ID", "Name", "Layout", "Ammo", "Stars")
	fmt.Printf("  %-3s  %-18s  %-8s  %-4s  %s\n", "--", "----", "------", "----", "-----")
	for _, l := range cfg.Campaign.Levels {
		fmt.Printf("  %-3d  %-18s  %-8s  %-4d  %d / %d / %d\n",
			l.ID, l.Name, l.Layout, l.Ammo, l.Stars[0], l.Stars[1], l.Stars[2])
	}

	fmt.Println()
	fmt.Printf("  layouts: %s\n", strings.Join(structure.Layouts(), ", "))

	fmt.Println()
	fmt.Println("Infinite:")
	fmt.Println()
	fmt.Printf("  cycle: %s\n\n", strings.Join(structure.Patterns(), " > "))
	printRounds(cfg, flagRounds)
	return nil
}

func printRounds(cfg config.Config, rounds int) {
	esc := config.NewEscalation(cfg.Infinite.Escalation)
	prog := progression.New(cfg, nil, nil)

	fmt.Printf("  %-5s  %-12s  %-5s  %-4s  %s\n", "Round", "Pattern", "Scale", "Ammo", "Reinforced")
	fmt.Printf("  %-5s  %-12s  %-5s  %-4s  %s\n", "-----", "-------", "-----", "----", "----------")
	for r := 1; r <= rounds; r++ {
		fmt.Printf("  %-5d  %-12s  %-5d  %-4d  %.0f%%\n",
			r, structure.PatternName(r), esc.Scale(r), prog.InfiniteAmmo(r, 0), esc.ReinforcedProbability(r)*100)
	}
}
