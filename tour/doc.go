// Package tour selects which obstacles to visit and in what order: it
// enumerates subsets of obstacles (preferring to visit more of them),
// enumerates a bounded number of viewpoint combinations per subset, scores
// each combination with an exact TSP solve over the pathfinder's pairwise
// costs, and returns the first subset that yields a feasible plan.
package tour
