// Command hexmap synthesizes hex terrain maps and runs path, reachability
// and movement queries against them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/talgya/hexfront/internal/world"
)

var (
	seed         int64
	width        int
	height       int
	profileName  string
	profilesPath string
	dbPath       string
	logLevel     string

	registry *world.Registry
)

var rootCmd = &cobra.Command{
	Use:   "hexmap",
	Short: "Hex terrain synthesis and movement sandbox",
	Long: `hexmap generates seeded hex terrain maps from named profiles and answers
shortest-path, reachability and movement queries against them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&seed, "seed", 42, "map seed")
	pf.IntVar(&width, "width", 40, "map width in columns")
	pf.IntVar(&height, "height", 24, "map height in rows")
	pf.StringVar(&profileName, "profile", "", "generation profile (default: registry default)")
	pf.StringVar(&profilesPath, "profiles", "", "profiles YAML file")
	pf.StringVar(&dbPath, "db", "data/hexmap.db", "generation ledger database")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(generateCmd, pathCmd, reachCmd, moveCmd, profilesCmd, historyCmd)
}

// setup installs the logger and loads the profile registry.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := charmlog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	handler := charmlog.NewWithOptions(cmd.ErrOrStderr(), charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "hexmap",
		Level:           level,
	})
	slog.SetDefault(slog.New(handler))

	registry, err = world.LoadRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	return nil
}

// genConfig builds the synthesis config from the persistent flags.
func genConfig() world.GenConfig {
	cfg := world.DefaultGenConfig()
	cfg.Seed = seed
	cfg.Width = width
	cfg.Height = height
	if profileName == "" {
		cfg.Profile = registry.Default()
	} else {
		cfg.Profile = registry.Profile(profileName)
	}
	return cfg
}

// synthesize generates the map for the current flags.
func synthesize() (*world.Map, world.GenConfig) {
	cfg := genConfig()
	slog.Info("generating map", "seed", cfg.Seed, "profile", cfg.Profile.Name, "width", cfg.Width, "height", cfg.Height)
	return world.Synthesize(cfg), cfg
}

func parseCoords(args []string) ([]world.HexCoord, error) {
	coords := make([]world.HexCoord, 0, len(args))
	for _, a := range args {
		c, err := world.ParseHexCoord(a)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}
