// Package matrix provides a minimal dense float64 matrix used to carry
// pairwise travel costs from the pathfinder into the tsp solver.
//
// It is a deliberately small slice of the teacher library's matrix package:
// just enough to back tsp.TSPExact's square cost matrices, row-major and
// bounds-checked, with no adjacency/incidence/builder machinery this
// repository never calls.
package matrix
