// Package direction defines the robot's discrete heading and the arithmetic
// the rest of the planner builds on.
//
// Direction is encoded on even integers mod 8 (NORTH=0, EAST=2, SOUTH=4,
// WEST=6, NONE=8) rather than the more obvious 0..3: the gap of two between
// adjacent headings lets a 90° turn be written as (d ± 2) mod 8 and a
// rotation's cost fall out of cyclic distance on ℤ/8, with NONE sitting
// outside the cycle of real headings as a sentinel. This encoding is
// load-bearing for pathfinder's turn-cost arithmetic; do not renumber it.
package direction
