package planner

import (
	"fmt"

	"github.com/arenabot/planner/direction"
)

// validate rejects malformed requests before any planning work begins:
// out-of-range robot coordinates, a robot heading that is not one of the
// four cardinal directions (NONE is a valid obstacle facing but never a
// valid robot heading), obstacle coordinates outside the grid, and unknown
// direction codes anywhere.
func validate(req Request) error {
	if req.RobotX < MinRobotCoord || req.RobotX > MaxRobotCoord ||
		req.RobotY < MinRobotCoord || req.RobotY > MaxRobotCoord {
		return fmt.Errorf("%w: robot position (%d, %d) out of range [%d, %d]",
			ErrInvalidRequest, req.RobotX, req.RobotY, MinRobotCoord, MaxRobotCoord)
	}
	if !direction.Heading(req.RobotDir) {
		return fmt.Errorf("%w: robot_dir %s is not a cardinal heading", ErrInvalidRequest, req.RobotDir)
	}

	seenIDs := make(map[int]bool, len(req.Obstacles))
	for _, ob := range req.Obstacles {
		if ob.X < 0 || ob.X >= GridWidth || ob.Y < 0 || ob.Y >= GridHeight {
			return fmt.Errorf("%w: obstacle %d position (%d, %d) out of grid", ErrInvalidRequest, ob.ID, ob.X, ob.Y)
		}
		if !direction.Valid(ob.D) {
			return fmt.Errorf("%w: obstacle %d has unknown direction code %d", ErrInvalidRequest, ob.ID, int(ob.D))
		}
		if seenIDs[ob.ID] {
			return fmt.Errorf("%w: duplicate obstacle id %d", ErrInvalidRequest, ob.ID)
		}
		seenIDs[ob.ID] = true
	}

	return nil
}
