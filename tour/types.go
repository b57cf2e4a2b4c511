package tour

import "github.com/arenabot/planner/arena"

// Iterations bounds the number of recursive viewpoint-combination
// expansions explored per subset, so a pathological obstacle count never
// turns tour search into an unbounded enumeration.
const Iterations = 2000

// Result is the best tour found: the concrete pose sequence from the
// robot's start through every visited obstacle (open, no return leg), its
// total cost, and which obstacles were included.
type Result struct {
	Feasible            bool
	Poses               []arena.Pose
	Distance            int
	IncludedObstacleIDs []int
}
