package arena

import "github.com/arenabot/planner/direction"

// Pose is a grid cell the robot can occupy: a position, a heading, and the
// two tags the tour planner and command compiler attach to it.
//
// ScreenshotID is -1 unless this pose is the final viewpoint for an
// obstacle, in which case it equals that obstacle's ID. Penalty is an
// additive cost discouraging off-center viewpoints (see Obstacle candidate
// generation); it never affects reachability, only tour cost.
type Pose struct {
	X, Y         int
	Direction    direction.Direction
	ScreenshotID int
	Penalty      int
}

// NoScreenshot is the sentinel ScreenshotID for a pose that is not a
// viewpoint.
const NoScreenshot = -1

// NewPose builds a Pose with ScreenshotID set to NoScreenshot and Penalty 0.
func NewPose(x, y int, d direction.Direction) Pose {
	return Pose{X: x, Y: y, Direction: d, ScreenshotID: NoScreenshot}
}

// Key returns the value tuple this Pose is identified by for table lookups.
// Pose tables must be keyed on this value, never on pointer identity
// (ScreenshotID and Penalty are tags, not part of the pose's identity).
func (p Pose) Key() PoseKey {
	return PoseKey{X: p.X, Y: p.Y, Direction: p.Direction}
}

// PoseKey is the (x, y, direction) identity of a Pose, suitable as a map key.
type PoseKey struct {
	X, Y      int
	Direction direction.Direction
}

// Obstacle is a directional waypoint in the arena. Equality is by
// (X, Y, Direction) — ObstacleID is metadata, not identity.
type Obstacle struct {
	ObstacleID int
	X, Y       int
	Direction  direction.Direction
}

func (o Obstacle) equalPose(other Obstacle) bool {
	return o.X == other.X && o.Y == other.Y && o.Direction == other.Direction
}

// ClearanceMode selects which clearance halo Reachable applies against each
// obstacle: straight steps need less room than a turning arc.
type ClearanceMode int

const (
	// Straight is the clearance required for a one-cell forward/backward step.
	Straight ClearanceMode = iota
	// Turn is the clearance required for a turning arc's destination and tip cell.
	Turn
	// PreTurn is the clearance required for the cell a turn departs from.
	PreTurn
)

func (m ClearanceMode) String() string {
	switch m {
	case Straight:
		return "straight"
	case Turn:
		return "turn"
	case PreTurn:
		return "preTurn"
	default:
		return "unknown"
	}
}

// VirtualCells is the turn/preTurn clearance halo radius, in grid cells.
// The source carries a second historical constant (EXPANDED_CELL) meaning
// nearly the same thing; only VirtualCells is used here.
const VirtualCells = 3

// StraightClearance is the clearance halo radius for a straight step.
const StraightClearance = 2

// ScreenshotCost is the additive penalty on an off-center (left/right)
// viewing candidate.
const ScreenshotCost = 50

// Arena is the bounded grid: its dimensions, the registered obstacles, and
// the robot's starting pose.
type Arena struct {
	Width, Height int
	Robot         Pose
	obstacles     []Obstacle
}

// NewArena constructs an empty Arena over [0, width-1] x [0, height-1] with
// the given robot starting pose.
func NewArena(width, height int, robot Pose) (*Arena, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Arena{Width: width, Height: height, Robot: robot}, nil
}

// InBounds reports whether (x, y) is a valid robot position: the outer ring
// of the grid is never valid, since the robot occupies a 3x3 footprint.
func (a *Arena) InBounds(x, y int) bool {
	return x >= 1 && x <= a.Width-2 && y >= 1 && y <= a.Height-2
}

// inGrid reports whether (x, y) lies anywhere on the grid, including the
// outer ring — the range obstacles, unlike the robot, may occupy.
func (a *Arena) inGrid(x, y int) bool {
	return x >= 0 && x <= a.Width-1 && y >= 0 && y <= a.Height-1
}

// AddObstacle registers ob, rejecting coordinates outside the grid and
// duplicates of an already-registered (x, y, direction).
func (a *Arena) AddObstacle(ob Obstacle) error {
	if !a.inGrid(ob.X, ob.Y) {
		return ErrOutOfBounds
	}
	for _, existing := range a.obstacles {
		if existing.equalPose(ob) {
			return ErrDuplicateObstacle
		}
	}
	a.obstacles = append(a.obstacles, ob)

	return nil
}

// Obstacles returns the registered obstacles in insertion order.
func (a *Arena) Obstacles() []Obstacle {
	out := make([]Obstacle, len(a.obstacles))
	copy(out, a.obstacles)

	return out
}
