package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/hexfront/internal/world"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the generation profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	def := registry.Default().Name
	for _, name := range registry.Names() {
		p := registry.Profile(name)
		marker := " "
		if name == def {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-12s freq %.2f  octaves %d  mult %.2f  sea %+.0f  flow %.0f  rivers %.2f\n",
			marker, p.Name, p.NoiseFrequency, p.Octaves, p.ElevationMultiplier,
			p.SeaLevelAdjustment, p.WaterFlowIntensity, p.RiverGenerationRate)
		for _, k := range world.AllTerrainKinds() {
			if b := p.Bias(k); b != 1 {
				fmt.Fprintf(out, "      bias %-10s %.1f\n", k, b)
			}
		}
	}
	return nil
}
