package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/hexfront/internal/movement"
	"github.com/talgya/hexfront/internal/pathfind"
	"github.com/talgya/hexfront/internal/world"
)

var (
	moveBudget int
	blockers   []string
)

var moveCmd = &cobra.Command{
	Use:   "move FROM TO [TO...]",
	Short: "Place a unit and walk it hex by hex through the validator",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMove,
}

func init() {
	moveCmd.Flags().IntVar(&moveBudget, "budget", 4, "unit movement budget")
	moveCmd.Flags().StringSliceVar(&blockers, "block", nil, "tiles occupied by other units (col,row)")
}

func runMove(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(args)
	if err != nil {
		return err
	}
	blocked, err := parseCoords(blockers)
	if err != nil {
		return err
	}

	m, _ := synthesize()
	unit := movement.NewUnit("scout", moveBudget)
	if err := m.Place(unit.ID(), coords[0]); err != nil {
		return err
	}
	for i, c := range blocked {
		if err := m.Place(fmt.Sprintf("blocker-%d", i+1), c); err != nil {
			return err
		}
	}

	v := movement.NewValidator(pathfind.NewEngine(m))
	v.Select(unit)
	out := cmd.OutOrStdout()

	pos := coords[0]
	for _, to := range coords[1:] {
		if click := v.HandleDestinationQuery(to); !click.Accepted {
			fmt.Fprintf(out, "%v -> %v rejected: %s (budget %d)\n", pos, to, click.Reason, unit.Movement())
			break
		}
		res := v.AttemptMove(pos, to)
		if !res.Success {
			fmt.Fprintf(out, "%v -> %v rejected: %s (budget %d)\n", pos, to, res.Reason, unit.Movement())
			break
		}
		fmt.Fprintf(out, "%v -> %v %s, cost %d, budget %d\n", pos, to, m.Get(to).Terrain, res.Cost, unit.Movement())
		pos = res.Position
		if v.State() == movement.StateIdle {
			fmt.Fprintln(out, "budget spent")
			break
		}
	}
	fmt.Fprintf(out, "%s ends at %v\n", unit, pos)
	printReach(cmd, v, m)
	return nil
}

func printReach(cmd *cobra.Command, v *movement.Validator, m *world.Map) {
	if v.Selected() == nil {
		return
	}
	reach := pathfind.Sorted(v.ReachableFromSelection())
	fmt.Fprintf(cmd.OutOrStdout(), "still reachable this turn: %d tiles\n", len(reach))
	for _, c := range reach {
		fmt.Fprintf(cmd.OutOrStdout(), "  %v %s\n", c, m.Get(c).Terrain)
	}
}
