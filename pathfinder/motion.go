package pathfinder

import (
	"github.com/arenabot/planner/arena"
	"github.com/arenabot/planner/direction"
)

// neighbor is a candidate pose reachable from the current one, with the
// edge cost already computed.
type neighbor struct {
	pose arena.Pose
	cost int
}

// turnCase is one of the eight (from, to) 90°-turn displacement rows from
// the motion model's table; neighbors scans the list for the rows whose from
// matches the current heading.
type turnCase struct {
	from, to           direction.Direction
	forwardDX, forwardDY int
	backwardDX, backwardDY int
}

var turnCases = []turnCase{
	{direction.NORTH, direction.EAST, TurnRadiusBig, TurnRadiusSmall, -TurnRadiusBig, -TurnRadiusSmall},
	{direction.NORTH, direction.WEST, -TurnRadiusBig, TurnRadiusSmall, TurnRadiusBig, -TurnRadiusSmall},
	{direction.EAST, direction.NORTH, TurnRadiusSmall, TurnRadiusBig, -TurnRadiusSmall, -TurnRadiusBig},
	{direction.EAST, direction.SOUTH, TurnRadiusSmall, -TurnRadiusBig, -TurnRadiusSmall, TurnRadiusBig},
	{direction.SOUTH, direction.EAST, TurnRadiusBig, -TurnRadiusSmall, -TurnRadiusBig, TurnRadiusSmall},
	{direction.SOUTH, direction.WEST, -TurnRadiusBig, -TurnRadiusSmall, TurnRadiusBig, TurnRadiusSmall},
	{direction.WEST, direction.NORTH, -TurnRadiusSmall, TurnRadiusBig, TurnRadiusSmall, -TurnRadiusBig},
	{direction.WEST, direction.SOUTH, -TurnRadiusSmall, -TurnRadiusBig, TurnRadiusSmall, TurnRadiusBig},
}

// neighbors expands pose under the full motion model: a straight step
// forward and backward, plus a forward-turn and backward-turn neighbor for
// every applicable 90°-turn case, each gated by its clearance requirements.
func neighbors(a *arena.Arena, pose arena.Pose, strict bool) []neighbor {
	var out []neighbor

	dx, dy := direction.Vector(pose.Direction)
	if cand, ok := straightNeighbor(a, pose, pose.X+dx, pose.Y+dy); ok {
		out = append(out, cand)
	}
	if cand, ok := straightNeighbor(a, pose, pose.X-dx, pose.Y-dy); ok {
		out = append(out, cand)
	}

	if !a.Reachable(arena.PreTurn, pose.X, pose.Y) {
		return out
	}
	for _, tc := range turnCases {
		if tc.from != pose.Direction {
			continue
		}
		if cand, ok := turnNeighbor(a, pose, tc.to, tc.forwardDX, tc.forwardDY, true, strict); ok {
			out = append(out, cand)
		}
		if cand, ok := turnNeighbor(a, pose, tc.to, tc.backwardDX, tc.backwardDY, false, strict); ok {
			out = append(out, cand)
		}
	}

	return out
}

func straightNeighbor(a *arena.Arena, from arena.Pose, x, y int) (neighbor, bool) {
	if !a.InBounds(x, y) || !a.Reachable(arena.Straight, x, y) {
		return neighbor{}, false
	}
	cost := 1 + safeCost(a, x, y)

	return neighbor{pose: arena.NewPose(x, y, from.Direction), cost: cost}, true
}

// turnNeighbor evaluates one displacement of a turn case. The destination
// must clear turn mode, unconditionally. The two displacements are not
// checked symmetrically, matching the source's own asymmetric per-case
// branches:
//
//   - forward (the robot's nose swings into the new heading): the cell one
//     step past the destination along the new heading (its swept "tip")
//     must also clear turn mode, with no relaxed fallback — the source's FR/
//     FL branches have no elif.
//   - backward (the robot reverses into the new heading): there is no tip
//     check; instead the cell one step ahead of the origin along the
//     *pre-turn* heading is checked under the ordinary straight clearance.
//     A strict caller rejects the turn if that cell fails clearance; a
//     relaxed caller still accepts it, at an extra penalty — the source's
//     BR/BL branches' `elif strict == False`.
func turnNeighbor(a *arena.Arena, from arena.Pose, to direction.Direction, ddx, ddy int, forward, strict bool) (neighbor, bool) {
	x, y := from.X+ddx, from.Y+ddy
	if !a.InBounds(x, y) || !a.Reachable(arena.Turn, x, y) {
		return neighbor{}, false
	}

	relaxed := false
	if forward {
		tdx, tdy := direction.Vector(to)
		tipX, tipY := x+tdx, y+tdy
		if !a.InBounds(tipX, tipY) || !a.Reachable(arena.Turn, tipX, tipY) {
			return neighbor{}, false
		}
	} else {
		fdx, fdy := direction.Vector(from.Direction)
		preX, preY := from.X+fdx, from.Y+fdy
		if !a.InBounds(preX, preY) || !a.Reachable(arena.Straight, preX, preY) {
			relaxed = true
			if strict {
				return neighbor{}, false
			}
		}
	}

	bonus := TurnBaseCost
	if relaxed {
		bonus += TurnRelaxedPenalty
	}
	cost := direction.RotationCost(from.Direction, to)*TurnFactor + 1 + safeCost(a, x, y) + bonus

	return neighbor{pose: arena.NewPose(x, y, to), cost: cost}, true
}

// safeCost returns SafeCost if any obstacle sits at the Chebyshev corner
// pattern (2,2), (1,2), or (2,1) from (x, y); zero otherwise. It is an
// additive discouragement, not a clearance veto, so it is checked
// independently of Reachable.
func safeCost(a *arena.Arena, x, y int) int {
	for _, ob := range a.Obstacles() {
		ddx := absInt(ob.X - x)
		ddy := absInt(ob.Y - y)
		if (ddx == 2 && ddy == 2) || (ddx == 1 && ddy == 2) || (ddx == 2 && ddy == 1) {
			return SafeCost
		}
	}

	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
