// Command plannerctl plans an obstacle tour from a JSON request and prints
// the resulting path, command program, and cost as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arenabot/planner/arena"
	"github.com/arenabot/planner/planner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "plannerctl",
		Short: "Plan obstacle-tour routes for the arena robot",
	}
	root.AddCommand(newPlanCmd())

	return root
}

func newPlanCmd() *cobra.Command {
	var (
		inputPath string
		retrying  bool
		logLevel  string
		envPath   string
		dumpGraph bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a tour for a single request",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := planner.LoadConfig(envPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if logLevel == "" {
				logLevel = cfg.LogLevel
			}

			logger, err := newLogger(logLevel)
			if err != nil {
				return fmt.Errorf("configuring logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			req, err := readRequest(inputPath)
			if err != nil {
				return fmt.Errorf("reading request: %w", err)
			}
			req.Retrying = req.Retrying || retrying

			if dumpGraph {
				dumpDebugGraph(cmd.ErrOrStderr(), req)
			}

			resp, err := planner.Plan(context.Background(), req, logger)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a JSON request file (default: stdin)")
	cmd.Flags().BoolVar(&retrying, "retrying", false, "stand one cell further back from every obstacle")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "zap log level (debug, info, warn, error); defaults to PLANNER_LOG_LEVEL or info")
	cmd.Flags().StringVar(&envPath, "env", ".env", "path to a .env file of configuration overrides")
	cmd.Flags().BoolVar(&dumpGraph, "dump-graph", false, "print reachable-cell graph stats to stderr before planning")

	return cmd
}

// dumpDebugGraph renders the request's arena as a straight-clearance
// reachability graph and prints its size, for inspection independent of
// the planned tour.
func dumpDebugGraph(w io.Writer, req planner.Request) {
	robot := arena.NewPose(req.RobotX, req.RobotY, req.RobotDir)
	a, err := arena.NewArena(planner.GridWidth, planner.GridHeight, robot)
	if err != nil {
		fmt.Fprintf(w, "dump-graph: %v\n", err)
		return
	}
	for _, ob := range req.Obstacles {
		if err := a.AddObstacle(arena.Obstacle{ObstacleID: ob.ID, X: ob.X, Y: ob.Y, Direction: ob.D}); err != nil {
			fmt.Fprintf(w, "dump-graph: %v\n", err)
			return
		}
	}

	g := a.DebugGraph(arena.Straight)
	stats := g.Stats()
	fmt.Fprintf(w, "dump-graph: %d reachable cells, %d edges\n", stats.VertexCount, stats.EdgeCount)
}

func readRequest(path string) (planner.Request, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return planner.Request{}, err
		}
		defer f.Close()
		r = f
	}

	var req planner.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return planner.Request{}, err
	}

	return req, nil
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zap.AtomicLevel
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zapLevel

	return cfg.Build()
}
