// Package pathfinder finds the minimum-cost route between two arena poses
// under the robot's turn kinematics, and memoizes every pair it computes so
// the tour planner never re-runs the same search twice.
//
// The motion model allows a straight step in the current heading or a 90°
// turn that displaces the robot along an arc; turns cost more than straight
// steps, and any destination cell near an obstacle's corner is further
// discouraged (never forbidden) by a large additive safe-cost halo.
package pathfinder
