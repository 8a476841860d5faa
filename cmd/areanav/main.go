// Command areanav partitions grid maps and runs agents across them with the
// hierarchical pathfinder.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/cache"
	"github.com/katalvlaran/areanav/config"
	"github.com/katalvlaran/areanav/mapfile"
	"github.com/katalvlaran/areanav/navmap"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath   string
	verbose      bool
	cachePath    string
	noCache      bool
	maxGroupSize int
	metricsFile  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "areanav",
		Short: "Hierarchical pathfinding on grid maps",
		Long: `areanav splits a grid map into rectangular-ish areas, links them through
portal groups and plans routes for agents that only believe what they have
seen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "areanav.yaml", "Config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&a.cachePath, "cache", "", "Cache database path (overrides config)")
	flags.BoolVar(&a.noCache, "no-cache", false, "Disable the map cache")
	flags.IntVar(&a.maxGroupSize, "max-group-size", 0, "Cap portals per group, 0 = unbounded (overrides config)")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file (overrides config)")

	root.AddCommand(newPartitionCmd(a))
	root.AddCommand(newRouteCmd(a))

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("cache") {
		cfg.Cache.Path = a.cachePath
		cfg.Cache.Enabled = a.cachePath != ""
	}
	if a.noCache {
		cfg.Cache.Enabled = false
	}
	if flags.Changed("max-group-size") {
		cfg.Portals.MaxGroupSize = a.maxGroupSize
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = a.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.NewLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// loadMap parses path and derives its areas and portals, through the cache
// when it is enabled.
func (a *app) loadMap(ctx context.Context, path string) (*navmap.Map, bool, error) {
	src, err := mapfile.Load(path)
	if err != nil {
		return nil, false, err
	}
	m, err := navmap.New(src, a.cfg.MapOptions(a.logger)...)
	if err != nil {
		return nil, false, err
	}

	if !a.cfg.Cache.Enabled {
		return m, false, m.ComputeMap()
	}
	store, err := cache.Open(ctx, a.cfg.Cache.Path, cache.WithLogger(a.logger))
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	hit, err := store.LoadOrCompute(ctx, m)
	if err != nil {
		return nil, false, err
	}

	return m, hit, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
