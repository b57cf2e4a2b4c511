package arena

import (
	"fmt"
	"math"

	"github.com/arenabot/planner/core"
	"github.com/arenabot/planner/dijkstra"
	"github.com/arenabot/planner/gridgraph"
)

// ClearanceGrid renders in-bounds reachability under mode as a
// gridgraph.GridGraph: cell (x, y) is "land" (value 1) when Reachable(mode,
// x, y) holds, "water" (value 0) otherwise. Cells outside InBounds are
// always water — the robot can never stand there regardless of clearance.
//
// This is a visualization/debug adapter (the CLI's --dump-graph flag uses
// DebugGraph instead); it is not what SameComponent's pre-filter is built from. A straight-adjacency
// flood fill over this grid would under-count reachability, since the
// motion model's turns jump two cells diagonally in one hop and never cross
// a single straight-adjacent edge.
func (a *Arena) ClearanceGrid(mode ClearanceMode) (*gridgraph.GridGraph, error) {
	values := make([][]int, a.Height)
	for y := 0; y < a.Height; y++ {
		values[y] = make([]int, a.Width)
		for x := 0; x < a.Width; x++ {
			if a.InBounds(x, y) && a.Reachable(mode, x, y) {
				values[y][x] = 1
			}
		}
	}

	return gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
}

// turnHopOffsets are the four diagonal two-cell displacements a turn can
// cover in a single hop, independent of which of the eight (from, to)
// heading cases produces them — pathfinder's turnCases table only ever
// emits combinations of ±TurnRadiusBig, ±TurnRadiusSmall, both of which are
// 2, so every turn hop lands on one of these four offsets regardless of
// heading.
var turnHopOffsets = [4][2]int{{2, 2}, {2, -2}, {-2, 2}, {-2, -2}}

// connectivityGraph builds the straight-adjacency DebugGraph for mode, then
// adds a turn-hop edge between any two cells separated by a turnHopOffsets
// displacement whenever the near cell clears PreTurn and the far cell
// clears Turn — the two checks every turn case in the motion model applies
// to its origin and destination, regardless of forward/backward or strict/
// relaxed. It deliberately omits the tip and pre-turn-heading checks
// turnNeighbor layers on top of those two (see pathfinder/motion.go): this
// is a permissive superset of the real motion graph, not an exact replica,
// so it only ever adds edges the real search graph might also have. That
// asymmetry is safe for a pre-filter whose failure mode to avoid is
// wrongly reporting "disconnected" — over-connecting costs a wasted search
// call later, under-connecting would wrongly prune a reachable pair.
func (a *Arena) connectivityGraph(mode ClearanceMode) *core.Graph {
	g := a.DebugGraph(mode)
	id := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

	for y := 1; y <= a.Height-2; y++ {
		for x := 1; x <= a.Width-2; x++ {
			if !a.Reachable(PreTurn, x, y) {
				continue
			}
			for _, o := range turnHopOffsets {
				nx, ny := x+o[0], y+o[1]
				if !a.InBounds(nx, ny) || !a.Reachable(Turn, nx, ny) {
					continue
				}
				if !g.HasVertex(id(x, y)) {
					_ = g.AddVertex(id(x, y))
				}
				if !g.HasVertex(id(nx, ny)) {
					_ = g.AddVertex(id(nx, ny))
				}
				_, _ = g.AddEdge(id(x, y), id(nx, ny), 1)
			}
		}
	}

	return g
}

// SameComponent reports whether p and q are connected in the clearance
// graph under mode once turn hops are accounted for (see
// connectivityGraph). It is an orientation-blind pre-filter over cells, not
// poses: if it returns false, no straight-or-turn path between p's and q's
// cells exists in the permissive motion graph it builds, so no A* search
// between them can possibly succeed either, and callers may skip the
// search entirely. Because connectivityGraph is a permissive superset of
// the real motion model (it does not replicate the tip/pre-turn-heading
// refinements turnNeighbor applies), it can say "connected" for a pair the
// real search still fails on — that costs a wasted search, not a wrongly
// skipped one.
func (a *Arena) SameComponent(mode ClearanceMode, p, q Pose) (bool, error) {
	if !a.InBounds(p.X, p.Y) || !a.InBounds(q.X, q.Y) {
		return false, nil
	}

	g := a.connectivityGraph(mode)
	id := func(pp Pose) string { return fmt.Sprintf("%d,%d", pp.X, pp.Y) }
	src, dst := id(p), id(q)
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return false, nil
	}
	if src == dst {
		return true, nil
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
	if err != nil {
		return false, err
	}

	d, ok := dist[dst]

	return ok && d != math.MaxInt64, nil
}
