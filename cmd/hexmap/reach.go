package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/hexfront/internal/pathfind"
)

var reachBudget int

var reachCmd = &cobra.Command{
	Use:   "reach FROM",
	Short: "List the tiles reachable from a tile within a movement budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runReach,
}

func init() {
	reachCmd.Flags().IntVar(&reachBudget, "budget", 4, "movement points available")
}

func runReach(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(args)
	if err != nil {
		return err
	}
	from := coords[0]

	m, _ := synthesize()
	if !m.Contains(from) {
		return fmt.Errorf("reach %v: %w", from, pathfind.ErrInvalidPosition)
	}
	engine := pathfind.NewEngine(m)
	reachable := pathfind.Sorted(engine.Reachable(from, reachBudget))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d tiles reachable from %v with budget %d\n", len(reachable), from, reachBudget)
	for _, c := range reachable {
		cost, err := engine.PathCost(from, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-9v %-10s cost %d\n", c, m.Get(c).Terrain, cost)
	}
	return nil
}
