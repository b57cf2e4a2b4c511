package arena

import "github.com/arenabot/planner/direction"

// ViewingCandidates is the set of candidate viewing poses generated for one
// obstacle, already filtered to in-bounds, straight-mode-reachable cells.
type ViewingCandidates struct {
	Obstacle   Obstacle
	Candidates []Pose
}

// ViewingPoses enumerates, for every registered obstacle, up to three
// candidate poses from which its symbol is visible: a centered shot and a
// left/right pair offset for a wider frame. Obstacles facing direction.NONE
// yield no candidates and are skipped entirely (never included in the tour).
//
// extra grows by one cell when retrying: on a retry the robot stands
// further back for a wider field of view.
func (a *Arena) ViewingPoses(retrying bool) []ViewingCandidates {
	extra := VirtualCells + 1
	if retrying {
		extra++
	}

	out := make([]ViewingCandidates, 0, len(a.obstacles))
	for _, ob := range a.obstacles {
		if !direction.Heading(ob.Direction) {
			continue
		}
		vc := ViewingCandidates{Obstacle: ob}
		for _, cand := range a.candidatesFor(ob, extra) {
			if !a.InBounds(cand.X, cand.Y) {
				continue
			}
			if !a.Reachable(Straight, cand.X, cand.Y) {
				continue
			}
			vc.Candidates = append(vc.Candidates, cand)
		}
		out = append(out, vc)
	}

	return out
}

// candidatesFor produces the unfiltered center/left/right poses for ob at
// standoff distance e, per the obstacle-direction table: the robot always
// faces the opposite of the obstacle's direction.
func (a *Arena) candidatesFor(ob Obstacle, e int) []Pose {
	facing := direction.Opposite(ob.Direction)
	x, y := ob.X, ob.Y

	var center, left, right Pose
	switch ob.Direction {
	case direction.NORTH:
		center = pose(x, y+e, facing, 0)
		left = pose(x+1, y+e, facing, ScreenshotCost)
		right = pose(x-1, y+e, facing, ScreenshotCost)
	case direction.SOUTH:
		center = pose(x, y-e, facing, 0)
		left = pose(x-1, y-e, facing, ScreenshotCost)
		right = pose(x+1, y-e, facing, ScreenshotCost)
	case direction.WEST:
		center = pose(x-e, y, facing, 0)
		left = pose(x-e, y+1, facing, ScreenshotCost)
		right = pose(x-e, y-1, facing, ScreenshotCost)
	case direction.EAST:
		center = pose(x+e, y, facing, 0)
		left = pose(x+e, y-1, facing, ScreenshotCost)
		right = pose(x+e, y+1, facing, ScreenshotCost)
	default:
		return nil
	}

	return []Pose{center, left, right}
}

func pose(x, y int, d direction.Direction, penalty int) Pose {
	p := NewPose(x, y, d)
	p.Penalty = penalty

	return p
}
