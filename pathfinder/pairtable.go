package pathfinder

import (
	"context"

	"github.com/arenabot/planner/arena"
)

// Table is a memoized, symmetric map of pairwise shortest paths over a set
// of poses: Cost[(u,v)] == Cost[(v,u)], and Path[(v,u)] is the reverse of
// Path[(u,v)]. Unreachable pairs are recorded with UnreachableCost and a
// nil path rather than omitted, so tour assembly can still look them up.
type Table struct {
	Cost map[pairKey]int
	Path map[pairKey][]arena.Pose
}

type pairKey struct {
	u, v arena.PoseKey
}

// BuildTable runs Search over every unordered pair (i, j), i < j, in items,
// populating both directions of Cost and Path. Before searching, it checks
// arena.SameComponent as a cheap pre-filter: a pair with no path at all in
// the clearance-plus-turn-hop graph is recorded as unreachable without ever
// touching the heap. Otherwise it first attempts a strict search (turns
// whose intermediate cell fails clearance are rejected) and falls back to
// a relaxed search (such turns are accepted at a penalty) only if the
// strict search fails to find any path, mirroring the source's
// progressively more permissive neighbor generation.
//
// ctx is checked between pairs so a caller embedding this in a server can
// abandon an in-flight request; a cancelled context stops the enumeration
// and returns ctx.Err().
func BuildTable(ctx context.Context, a *arena.Arena, items []arena.Pose) (*Table, error) {
	t := &Table{Cost: map[pairKey]int{}, Path: map[pairKey][]arena.Pose{}}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			u, v := items[i], items[j]

			connected, err := a.SameComponent(arena.Straight, u, v)
			if err != nil {
				return nil, err
			}

			var path []arena.Pose
			var cost int
			found := false
			if connected {
				path, cost, found = Search(a, u, v, true)
				if !found {
					path, cost, found = Search(a, u, v, false)
				}
			}

			uk, vk := u.Key(), v.Key()
			if !found {
				t.Cost[pairKey{uk, vk}] = UnreachableCost
				t.Cost[pairKey{vk, uk}] = UnreachableCost
				t.Path[pairKey{uk, vk}] = nil
				t.Path[pairKey{vk, uk}] = nil
				continue
			}

			t.Cost[pairKey{uk, vk}] = cost
			t.Cost[pairKey{vk, uk}] = cost
			t.Path[pairKey{uk, vk}] = path
			t.Path[pairKey{vk, uk}] = reversePath(path)
		}
	}

	return t, nil
}

// CostOf returns the memoized cost between u and v, or UnreachableCost if
// the pair was never computed.
func (t *Table) CostOf(u, v arena.Pose) int {
	c, ok := t.Cost[pairKey{u.Key(), v.Key()}]
	if !ok {
		return UnreachableCost
	}

	return c
}

// PathOf returns the memoized pose sequence from u to v.
func (t *Table) PathOf(u, v arena.Pose) []arena.Pose {
	return t.Path[pairKey{u.Key(), v.Key()}]
}

func reversePath(path []arena.Pose) []arena.Pose {
	out := make([]arena.Pose, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}

	return out
}
