package arena

import (
	"fmt"

	"github.com/arenabot/planner/core"
)

// DebugGraph builds a *core.Graph over every in-bounds cell reachable under
// mode, with unit-weight edges to its 4-connected reachable neighbors. It
// exists for inspection — tests and the CLI's --dump-graph flag — and sits
// off the hot path of planning.
func (a *Arena) DebugGraph(mode ClearanceMode) *core.Graph {
	g := core.NewGraph(core.WithWeighted())

	id := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

	for y := 1; y <= a.Height-2; y++ {
		for x := 1; x <= a.Width-2; x++ {
			if !a.Reachable(mode, x, y) {
				continue
			}
			_ = g.AddVertex(id(x, y))
		}
	}

	offsets := [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	for y := 1; y <= a.Height-2; y++ {
		for x := 1; x <= a.Width-2; x++ {
			if !g.HasVertex(id(x, y)) {
				continue
			}
			for _, o := range offsets {
				nx, ny := x+o[0], y+o[1]
				if !g.HasVertex(id(nx, ny)) {
					continue
				}
				_, _ = g.AddEdge(id(x, y), id(nx, ny), 1)
			}
		}
	}

	return g
}
