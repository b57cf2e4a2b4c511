package planner

import (
	"context"
	"fmt"

	"github.com/arenabot/planner/arena"
	"github.com/arenabot/planner/command"
	"github.com/arenabot/planner/tour"
	"go.uber.org/zap"
)

// Plan validates req, builds the Arena it describes, searches for the
// cheapest obstacle tour, and compiles the result into a Response.
//
// ctx is threaded into tour.Plan, which checks it between obstacle subsets
// and between pairwise A* computations; a cancelled ctx aborts the search
// and is returned unwrapped (not as ErrInvalidRequest).
//
// Only ErrInvalidRequest and command.ErrInvalidTurn surface as errors. An
// InfeasiblePlan (no subset of obstacles yields a tour) is not an error: it
// is returned as a Response with an empty Path, empty Commands, and
// Distance == InfeasibleDistance.
func Plan(ctx context.Context, req Request, logger *zap.Logger) (*Response, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := validate(req); err != nil {
		logger.Error("rejecting request", zap.Error(err))
		return nil, err
	}

	robot := arena.NewPose(req.RobotX, req.RobotY, req.RobotDir)
	a, err := arena.NewArena(GridWidth, GridHeight, robot)
	if err != nil {
		logger.Error("rejecting request", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	for _, ob := range req.Obstacles {
		if err := a.AddObstacle(arena.Obstacle{ObstacleID: ob.ID, X: ob.X, Y: ob.Y, Direction: ob.D}); err != nil {
			logger.Error("rejecting request", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	}

	logger.Debug("planning tour",
		zap.Int("robot_x", req.RobotX), zap.Int("robot_y", req.RobotY),
		zap.Int("obstacle_count", len(req.Obstacles)), zap.Bool("retrying", req.Retrying))

	result, err := tour.Plan(ctx, a, req.Retrying)
	if err != nil {
		return nil, err
	}

	if !result.Feasible || len(result.IncludedObstacleIDs) == 0 {
		logger.Debug("infeasible plan: no obstacle subset yielded a tour")
		return &Response{Distance: InfeasibleDistance}, nil
	}
	logger.Debug("feasible tour found",
		zap.Int("distance", result.Distance), zap.Ints("obstacle_ids", result.IncludedObstacleIDs))

	commands, err := command.Compile(result.Poses, a.Obstacles())
	if err != nil {
		logger.Error("command compilation failed", zap.Error(err))
		return nil, err
	}

	expanded, err := command.Expand(result.Poses)
	if err != nil {
		logger.Error("path expansion failed", zap.Error(err))
		return nil, err
	}

	waypoints := make(map[arena.PoseKey]bool, len(result.Poses))
	for _, p := range result.Poses {
		waypoints[p.Key()] = true
	}

	path := make([]PathPose, len(expanded))
	for i, p := range expanded {
		s := SnapNone
		switch {
		case p.ScreenshotID != arena.NoScreenshot:
			s = SnapHere
		case waypoints[p.Key()]:
			s = SnapWaypoint
		}
		path[i] = PathPose{X: p.X, Y: p.Y, D: p.Direction, S: s}
	}

	return &Response{
		Distance: result.Distance,
		Duration: float64(result.Distance) / RobotSpeed,
		Path:     path,
		Commands: commands,
	}, nil
}
