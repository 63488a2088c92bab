package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexfront/internal/persistence"
	"github.com/talgya/hexfront/internal/world"
)

var (
	record          bool
	settlementCount int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize a map and print it",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&record, "record", false, "write the run to the generation ledger")
	generateCmd.Flags().IntVar(&settlementCount, "settlements", 0, "number of settlement sites to place")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	m, cfg := synthesize()
	seeds := world.PlaceSettlements(m, cfg.Seed, settlementCount)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, world.Render(m))
	fmt.Fprintln(out)
	printSummary(out, m)
	for _, s := range seeds {
		fmt.Fprintf(out, "  %-6s %-12s %v\n", s.Size, s.Name, s.Coord)
	}

	if !record {
		return nil
	}
	return recordRun(persistence.Summarize(m, cfg, seeds))
}

func printSummary(w io.Writer, m *world.Map) {
	counts := world.TerrainCounts(m)
	total := m.TileCount()
	fmt.Fprintf(w, "%s tiles, %d adjacency violations, interior closure %.3f\n",
		humanize.Comma(int64(total)), len(world.AdjacencyViolations(m)), world.InteriorClosure(m))
	for _, k := range world.SortedKinds(counts) {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(counts[k]) / float64(total)
		}
		fmt.Fprintf(w, "  %c %-10s %5d  %5.1f%%\n", k.Info().Glyph, k, counts[k], pct)
	}
}

func recordRun(g persistence.Generation) error {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ledger dir: %w", err)
		}
	}
	db, err := persistence.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RecordGeneration(g); err != nil {
		return err
	}
	slog.Info("run recorded", "run", g.RunID, "db", dbPath)
	return nil
}
