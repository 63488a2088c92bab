package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexfront/internal/persistence"
	"github.com/talgya/hexfront/internal/world"
)

var (
	historyLimit int
	historyRun   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded generation runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of runs to list (0 for all)")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "show the terrain breakdown of one run (\"last\" for the newest)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	db, err := persistence.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	if historyRun != "" {
		runID := historyRun
		if runID == "last" {
			if runID, err = db.LastRun(); err != nil {
				return err
			}
		}
		counts, err := db.TerrainCounts(runID)
		if err != nil {
			return err
		}
		for _, k := range world.SortedKinds(counts) {
			fmt.Fprintf(out, "  %c %-10s %s\n", k.Info().Glyph, k, humanize.Comma(int64(counts[k])))
		}
		return nil
	}

	gens, err := db.ListGenerations(historyLimit)
	if err != nil {
		return err
	}
	if len(gens) == 0 {
		fmt.Fprintln(out, "no runs recorded")
		return nil
	}
	for _, g := range gens {
		fmt.Fprintf(out, "%s  %-12s seed %-6d %dx%-3d %6s tiles  closure %.3f  %s\n",
			g.RunID, g.Profile, g.Seed, g.Width, g.Height,
			humanize.Comma(int64(g.TileCount)), g.Closure, humanize.Time(g.Created()))
	}
	return nil
}
