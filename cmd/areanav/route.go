package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/pathfinder"
	"github.com/katalvlaran/areanav/telemetry"
)

type routeFlags struct {
	from, to  string
	closeFrac float64
	seed      int64
	showPath  bool
}

func newRouteCmd(a *app) *cobra.Command {
	f := &routeFlags{}
	cmd := &cobra.Command{
		Use:   "route MAP",
		Short: "Send an agent across a map and compare with the omniscient path",
		Long: `route partitions MAP, optionally closes a random fraction of the portal
groups, then lets an agent that starts out believing every portal is open
travel from --from to --to, replanning whenever it runs into a closed one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoute(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.from, "from", "", "Start cell as x,y (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "Goal cell as x,y (required)")
	cmd.Flags().Float64Var(&f.closeFrac, "close-fraction", 0, "Fraction of portal groups to close before travelling")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "Seed for --close-fraction")
	cmd.Flags().BoolVar(&f.showPath, "path", false, "Print every visited cell")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) runRoute(cmd *cobra.Command, path string, f *routeFlags) error {
	start, err := parseCell(f.from)
	if err != nil {
		return err
	}
	goal, err := parseCell(f.to)
	if err != nil {
		return err
	}

	m, _, err := a.loadMap(cmd.Context(), path)
	if err != nil {
		return err
	}
	if f.closeFrac > 0 {
		n, err := m.CloseRandom(rand.New(rand.NewSource(f.seed)), f.closeFrac)
		if err != nil {
			return err
		}
		a.logger.Info("closed portal groups", zap.Int("groups", n))
	}

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg, a.cfg.Metrics.Namespace)
	opts := append(a.cfg.PathfinderOptions(a.logger), pathfinder.WithObserver(metrics))

	agent, err := pathfinder.NewAgent(m, start, opts...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	flat, flatErr := agent.Pathfinder().FlatPath(start, goal)
	trip, err := agent.Travel(cmd.Context(), goal)
	if trip != nil {
		fmt.Fprintf(out, "agent %s\n", trip.AgentID)
		fmt.Fprintf(out, "reached: %t steps: %d replans: %d\n", trip.Reached, trip.Steps(), trip.Replans)
		fmt.Fprintf(out, "searches: coarse %d fine %d reviews: %d\n",
			trip.Stats.CoarseSearches, trip.Stats.FineSearches, trip.Stats.Reviews)
		if f.showPath {
			fmt.Fprintln(out, formatCells(trip.Cells))
		}
	}
	if flatErr == nil {
		fmt.Fprintf(out, "flat: %d steps\n", len(flat)-1)
	} else {
		fmt.Fprintf(out, "flat: %v\n", flatErr)
	}

	if a.cfg.Metrics.File != "" {
		if werr := prometheus.WriteToTextfile(a.cfg.Metrics.File, reg); werr != nil {
			a.logger.Error("failed to write metrics", zap.Error(werr))
		}
	}

	return err
}

func parseCell(s string) (grid.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Cell{}, fmt.Errorf("cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}

	return grid.C(x, y), nil
}

func formatCells(cells []grid.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}
