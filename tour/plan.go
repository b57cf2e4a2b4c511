package tour

import (
	"context"

	"github.com/arenabot/planner/arena"
	"github.com/arenabot/planner/matrix"
	"github.com/arenabot/planner/pathfinder"
	"github.com/arenabot/planner/tsp"
)

// Plan searches for the lowest-cost obstacle tour, trying subsets of
// obstacles in descending popcount order and returning the first subset
// that yields any feasible plan. ctx is checked between subsets and
// between pairwise A* computations; a cancelled context aborts the search
// and returns ctx.Err().
func Plan(ctx context.Context, a *arena.Arena, retrying bool) (*Result, error) {
	groups := a.ViewingPoses(retrying)
	n := len(groups)

	for _, mask := range subsetsByDescendingPopcount(n) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idxs := members(mask)
		if len(idxs) == 0 {
			continue
		}

		items := []arena.Pose{a.Robot}
		counts := make([]int, len(idxs))
		for k, gi := range idxs {
			items = append(items, groups[gi].Candidates...)
			counts[k] = len(groups[gi].Candidates)
		}
		if anyZero(counts) {
			// At least one included obstacle has no in-bounds, reachable
			// viewpoint at all: this subset can never produce a tour.
			continue
		}

		table, err := pathfinder.BuildTable(ctx, a, items)
		if err != nil {
			return nil, err
		}

		best, ok := searchCombinations(a, table, idxs, groups, counts)
		if ok {
			return best, nil
		}
	}

	// The empty subset is always feasible: the robot visits nothing.
	return &Result{Feasible: true, Poses: []arena.Pose{a.Robot}, Distance: 0}, nil
}

func anyZero(counts []int) bool {
	for _, c := range counts {
		if c == 0 {
			return true
		}
	}

	return false
}

// searchCombinations enumerates viewpoint combinations for one subset and
// returns the cheapest feasible tour found, if any.
func searchCombinations(a *arena.Arena, table *pathfinder.Table, idxs []int, groups []arena.ViewingCandidates, counts []int) (*Result, bool) {
	var best *Result
	budget := &combinationBudget{remaining: Iterations}

	enumerateCombinations(counts, budget, func(choice []int) bool {
		poses := make([]arena.Pose, 0, len(idxs)+1)
		poses = append(poses, a.Robot)
		for k, gi := range idxs {
			viewpoint := groups[gi].Candidates[choice[k]]
			viewpoint.ScreenshotID = groups[gi].Obstacle.ObstacleID
			poses = append(poses, viewpoint)
		}

		result, ok := scoreCombination(table, poses)
		if ok && (best == nil || result.Distance < best.Distance) {
			obstacleIDs := make([]int, len(idxs))
			for k, gi := range idxs {
				obstacleIDs[k] = groups[gi].Obstacle.ObstacleID
			}
			result.IncludedObstacleIDs = obstacleIDs
			best = result
		}

		return true
	})

	return best, best != nil
}

// scoreCombination builds the cost matrix for one concrete choice of
// viewpoints, solves the open-tour TSP over it, and reassembles the
// concrete pose path by concatenating the pathfinder's stored segments in
// permutation order.
func scoreCombination(table *pathfinder.Table, poses []arena.Pose) (*Result, bool) {
	size := len(poses)
	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, false
	}

	fixedPenalty := 0
	for i, p := range poses {
		fixedPenalty += p.Penalty
		for j, q := range poses {
			if i == j {
				continue
			}
			cost := table.CostOf(p, q)
			if cost >= pathfinder.UnreachableCost {
				return nil, false
			}
			_ = m.Set(i, j, float64(cost))
		}
		// Open tour: no return leg, so the closing edge to the start is free.
		_ = m.Set(i, 0, 0)
	}

	tspResult, err := tsp.TSPExact(m, tsp.DefaultOptions())
	if err != nil {
		return nil, false
	}

	order := tspResult.Tour[:size] // drop the synthetic closing return to start
	assembled := []arena.Pose{poses[order[0]]}
	for k := 1; k < len(order); k++ {
		from, to := poses[order[k-1]], poses[order[k]]
		segment := table.PathOf(from, to)
		if len(segment) < 2 {
			return nil, false
		}
		tagged := segment[1:]
		if to.ScreenshotID != arena.NoScreenshot {
			last := tagged[len(tagged)-1]
			last.ScreenshotID = to.ScreenshotID
			tagged[len(tagged)-1] = last
		}
		assembled = append(assembled, tagged...)
	}

	return &Result{
		Feasible: true,
		Poses:    assembled,
		Distance: int(tspResult.Cost) + fixedPenalty,
	}, true
}
