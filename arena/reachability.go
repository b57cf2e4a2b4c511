package arena

import "math"

// Reachable reports whether (x, y) clears every registered obstacle under
// the given clearance mode.
//
// The source's predicate took two booleans (turn, preTurn) with a dangling
// `if turn: ... if preTurn: ... else: ...` whose else bound to preTurn
// rather than turn — almost certainly a bug. Turn and PreTurn are treated
// symmetrically here, both requiring the VirtualCells halo; Straight is the
// default, smaller halo. See DESIGN.md for the resolution.
func (a *Arena) Reachable(mode ClearanceMode, x, y int) bool {
	for _, ob := range a.obstacles {
		if !a.clearsObstacle(mode, ob, x, y) {
			return false
		}
	}

	return true
}

func (a *Arena) clearsObstacle(mode ClearanceMode, ob Obstacle, x, y int) bool {
	// Deliberate carve-out: if both the obstacle and the query point sit in
	// the origin corner, skip this obstacle so the start region stays
	// navigable even when obstacles cluster there.
	if ob.X <= 4 && ob.Y <= 4 && x < 4 && y < 4 {
		return true
	}

	dx := absInt(ob.X - x)
	dy := absInt(ob.Y - y)
	if dx+dy >= 4 {
		return true
	}

	chebyshev := int(math.Max(float64(dx), float64(dy)))
	switch mode {
	case Turn, PreTurn:
		return chebyshev >= VirtualCells
	default: // Straight
		return chebyshev >= StraightClearance
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
