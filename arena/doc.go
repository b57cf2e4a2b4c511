// Package arena models the bounded grid and its directional obstacles: it
// validates coordinates, answers clearance-aware reachability queries, and
// enumerates the candidate viewing poses from which an obstacle's symbol can
// be photographed.
//
// Two adapters ride on top of the reachability predicate: ClearanceGrid
// renders reachability as a github.com/arenabot/planner/gridgraph.GridGraph
// for inspection, and DebugGraph exports the same surface as a
// github.com/arenabot/planner/core.Graph. SameComponent builds on DebugGraph
// (widened with turn-hop edges) and github.com/arenabot/planner/dijkstra to
// give the tour planner a cheap way to rule out pairs with no path at all
// before it ever runs a full turn-aware search.
package arena
