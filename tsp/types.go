// Package tsp implements the Held–Karp exact dynamic-programming solver for
// the small, dense travelling-salesman instances the tour planner builds
// (at most a handful of viewing poses per request). It is a focused slice of
// the teacher library's tsp package: no Christofides, no 2-opt/3-opt local
// search, no branch-and-bound — this repository never builds an instance
// larger than tsp.MaxExactN, so those heuristics would never be called.
package tsp

import "errors"

// Sentinel errors for tsp solver inputs and infeasibility.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrDimensionMismatch indicates n < 2 or a matrix read failed.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrSizeTooLarge signals that n exceeds MaxExactN.
	ErrSizeTooLarge = errors.New("tsp: exact solver supports at most MaxExactN vertices")

	// ErrIncompleteGraph is returned when no Hamiltonian path back to the
	// start exists (some required edge is +Inf).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix (no tour possible)")
)

// MaxExactN bounds problem size for the Held–Karp solver (time/memory guard).
// The tour planner never presents more than one-start-plus-a-handful of
// viewing poses, so this ceiling is never exercised in practice.
const MaxExactN = 20

// Options configures TSPExact.
type Options struct {
	// StartVertex selects the start/end vertex index [0..n-1].
	StartVertex int
}

// DefaultOptions returns Options with StartVertex 0.
func DefaultOptions() Options {
	return Options{StartVertex: 0}
}

// Result is the output of TSPExact.
type Result struct {
	// Tour is the closed-cycle vertex order: len(Tour) == n+1,
	// Tour[0] == Tour[n] == StartVertex. Callers building an open tour (no
	// return leg) zero out the column back to StartVertex beforehand, which
	// makes the closing edge free and Tour[0:n] the desired open-path order.
	Tour []int

	// Cost is the total cost along Tour, including the (possibly zeroed)
	// closing edge back to StartVertex.
	Cost float64
}
