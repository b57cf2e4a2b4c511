// Package command compiles a concrete pose sequence into the robot's
// discrete motion program — FW/BW/FR/FL/BR/BL/SNAP/FIN — and separately
// expands the turning arcs back into the grid cells they sweep through,
// for callers that need to animate or verify clearance along the route.
package command
