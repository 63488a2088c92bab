package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/hexfront/internal/pathfind"
)

var pathCmd = &cobra.Command{
	Use:   "path FROM TO",
	Short: "Print the cheapest route between two tiles",
	Example: `  hexmap path 0,0 12,7
  hexmap --profile Highlands path 3,3 20,10`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func runPath(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(args)
	if err != nil {
		return err
	}
	from, to := coords[0], coords[1]

	m, _ := synthesize()
	engine := pathfind.NewEngine(m)

	cost, err := engine.PathCost(from, to)
	switch {
	case errors.Is(err, pathfind.ErrInvalidPosition):
		return fmt.Errorf("path %v -> %v: %w", from, to, err)
	case errors.Is(err, pathfind.ErrUnreachable):
		fmt.Fprintf(cmd.OutOrStdout(), "no path from %v to %v\n", from, to)
		return nil
	case err != nil:
		return err
	}

	path := engine.ShortestPath(from, to)
	steps := make([]string, 0, len(path))
	for _, c := range path {
		steps = append(steps, fmt.Sprintf("%v %s", c, m.Get(c).Terrain))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cost %d over %d steps\n  %s\n", cost, len(path)-1, strings.Join(steps, "\n  "))
	return nil
}
