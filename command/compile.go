package command

import (
	"fmt"

	"github.com/arenabot/planner/arena"
	"github.com/arenabot/planner/direction"
)

// Compile converts a concrete pose sequence into the robot's motion
// program: a straight or turn command for every consecutive pair, a SNAP
// wherever a pose carries a screenshot id, a trailing FIN, and FW/BW runs
// compressed into single commands capped at 90.
func Compile(poses []arena.Pose, obstacles []arena.Obstacle) ([]string, error) {
	byID := make(map[int]arena.Obstacle, len(obstacles))
	for _, ob := range obstacles {
		byID[ob.ObstacleID] = ob
	}

	var commands []string
	for i := 1; i < len(poses); i++ {
		prev, cur := poses[i-1], poses[i]

		if cur.Direction == prev.Direction {
			cmd, ok := straightCommand(prev, cur)
			if !ok {
				return nil, fmt.Errorf("%w: straight step %d is not a unit move", ErrInvalidTurn, i)
			}
			commands = append(commands, cmd)
		} else {
			cmd, ok := turnCommand(prev.Direction, cur.Direction, cur.Y-prev.Y)
			if !ok {
				return nil, fmt.Errorf("%w: %s -> %s at step %d", ErrInvalidTurn, prev.Direction, cur.Direction, i)
			}
			commands = append(commands, cmd)
		}

		if cur.ScreenshotID != arena.NoScreenshot {
			snap, err := snapCommand(cur, byID)
			if err != nil {
				return nil, err
			}
			commands = append(commands, snap)
		}
	}
	commands = append(commands, "FIN")

	return compress(commands), nil
}

func straightCommand(prev, cur arena.Pose) (string, bool) {
	fx, fy := direction.Vector(prev.Direction)
	dx, dy := cur.X-prev.X, cur.Y-prev.Y
	switch {
	case dx == fx && dy == fy:
		return "FW10", true
	case dx == -fx && dy == -fy:
		return "BW10", true
	default:
		return "", false
	}
}

func snapCommand(p arena.Pose, byID map[int]arena.Obstacle) (string, error) {
	ob, ok := byID[p.ScreenshotID]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownObstacle, p.ScreenshotID)
	}

	var suffix string
	switch {
	case ob.Direction == direction.WEST && p.Direction == direction.EAST:
		suffix = lateral(ob.Y, p.Y, "L", "C", "R")
	case ob.Direction == direction.EAST && p.Direction == direction.WEST:
		suffix = lateral(ob.Y, p.Y, "R", "C", "L")
	case ob.Direction == direction.NORTH && p.Direction == direction.SOUTH:
		suffix = lateral(ob.X, p.X, "L", "C", "R")
	case ob.Direction == direction.SOUTH && p.Direction == direction.NORTH:
		suffix = lateral(ob.X, p.X, "R", "C", "L")
	default:
		return "", fmt.Errorf("%w: obstacle %d faces %s, robot faces %s", ErrInvalidSnap, p.ScreenshotID, ob.Direction, p.Direction)
	}

	return fmt.Sprintf("SNAP%d_%s", p.ScreenshotID, suffix), nil
}

// lateral compares the obstacle's coordinate against the robot's on the
// orthogonal axis and picks the "greater / equal / less" suffix.
func lateral(obCoord, robotCoord int, greater, equal, less string) string {
	switch {
	case obCoord > robotCoord:
		return greater
	case obCoord == robotCoord:
		return equal
	default:
		return less
	}
}
