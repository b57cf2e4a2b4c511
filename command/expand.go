package command

import (
	"fmt"

	"github.com/arenabot/planner/arena"
	"github.com/arenabot/planner/direction"
)

// intermediateOffset is one of the three cells a turning arc sweeps
// through, relative to the pre-turn pose.
type intermediateOffset struct {
	dx, dy int
	dir    direction.Direction
}

type intermediateKey struct {
	turnType string
	from     direction.Direction
}

// intermediateTable gives the three swept cells for each (turn type,
// pre-turn heading) pair, grounded on the turning-arc geometry: the robot
// advances two cells in its pre-turn heading, then the third cell lands on
// the post-turn heading one cell further across.
var intermediateTable = map[intermediateKey][3]intermediateOffset{
	{"FR", direction.NORTH}: {{0, 1, direction.NORTH}, {0, 2, direction.NORTH}, {1, 2, direction.EAST}},
	{"FR", direction.EAST}:  {{1, 0, direction.EAST}, {2, 0, direction.EAST}, {2, -1, direction.SOUTH}},
	{"FR", direction.SOUTH}: {{0, -1, direction.SOUTH}, {0, -2, direction.SOUTH}, {-1, -2, direction.WEST}},
	{"FR", direction.WEST}:  {{-1, 0, direction.WEST}, {-2, 0, direction.WEST}, {-2, 1, direction.NORTH}},

	{"FL", direction.NORTH}: {{0, 1, direction.NORTH}, {0, 2, direction.NORTH}, {-1, 2, direction.WEST}},
	{"FL", direction.WEST}:  {{-1, 0, direction.WEST}, {-2, 0, direction.WEST}, {-2, -1, direction.SOUTH}},
	{"FL", direction.SOUTH}: {{0, -1, direction.SOUTH}, {0, -2, direction.SOUTH}, {1, -2, direction.EAST}},
	{"FL", direction.EAST}:  {{1, 0, direction.EAST}, {2, 0, direction.EAST}, {2, 1, direction.NORTH}},

	{"BR", direction.NORTH}: {{0, -1, direction.NORTH}, {0, -2, direction.NORTH}, {1, -2, direction.WEST}},
	{"BR", direction.WEST}:  {{1, 0, direction.WEST}, {2, 0, direction.WEST}, {2, 1, direction.SOUTH}},
	{"BR", direction.SOUTH}: {{0, 1, direction.SOUTH}, {0, 2, direction.SOUTH}, {-1, 2, direction.EAST}},
	{"BR", direction.EAST}:  {{-1, 0, direction.EAST}, {-2, 0, direction.EAST}, {-2, -1, direction.NORTH}},

	{"BL", direction.NORTH}: {{0, -1, direction.NORTH}, {0, -2, direction.NORTH}, {-1, -2, direction.EAST}},
	{"BL", direction.EAST}:  {{-1, 0, direction.EAST}, {-2, 0, direction.EAST}, {-2, 1, direction.SOUTH}},
	{"BL", direction.SOUTH}: {{0, 1, direction.SOUTH}, {0, 2, direction.SOUTH}, {1, 2, direction.WEST}},
	{"BL", direction.WEST}:  {{1, 0, direction.WEST}, {2, 0, direction.WEST}, {2, -1, direction.NORTH}},
}

// Expand inserts, between every consecutive pair of poses whose heading
// differs, the three grid cells the turning arc passes through, so a
// visualiser or collision verifier can walk the route cell by cell. Poses
// whose heading matches their predecessor (straight steps) pass through
// unchanged.
func Expand(poses []arena.Pose) ([]arena.Pose, error) {
	if len(poses) == 0 {
		return nil, nil
	}

	out := make([]arena.Pose, 0, len(poses))
	out = append(out, poses[0])
	for i := 1; i < len(poses); i++ {
		prev, cur := poses[i-1], poses[i]
		if cur.Direction == prev.Direction {
			out = append(out, cur)
			continue
		}

		cmd, ok := turnCommand(prev.Direction, cur.Direction, cur.Y-prev.Y)
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s at step %d", ErrInvalidTurn, prev.Direction, cur.Direction, i)
		}
		turnType := cmd[:2]

		offsets, ok := intermediateTable[intermediateKey{turnType, prev.Direction}]
		if !ok {
			return nil, fmt.Errorf("%w: no intermediate cells for %s from %s", ErrInvalidTurn, turnType, prev.Direction)
		}
		for _, off := range offsets {
			out = append(out, arena.NewPose(prev.X+off.dx, prev.Y+off.dy, off.dir))
		}
		out = append(out, cur)
	}

	return out, nil
}
