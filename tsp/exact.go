package tsp

import (
	"math"
	"math/bits"

	"github.com/arenabot/planner/matrix"
)

// TSPExact runs the Held–Karp dynamic program over dist, an n×n cost matrix.
//
// Contracts:
//   - dist is square, n >= 2, n <= MaxExactN.
//   - diagonal is not inspected; entries may be +Inf to mean "no edge".
//   - negative weights are rejected (ErrNegativeWeight).
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func TSPExact(dist matrix.Matrix, opts Options) (Result, error) {
	if dist == nil {
		return Result{}, ErrNonSquare
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return Result{}, ErrNonSquare
	}
	if n < 2 {
		return Result{}, ErrDimensionMismatch
	}
	if n > MaxExactN {
		return Result{}, ErrSizeTooLarge
	}
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return Result{}, ErrStartOutOfRange
	}

	// Prefetch weights into a flat buffer to keep the DP hot loop free of
	// interface-dispatch overhead.
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := dist.At(i, j)
			if err != nil {
				return Result{}, ErrDimensionMismatch
			}
			if math.IsNaN(v) {
				return Result{}, ErrDimensionMismatch
			}
			if v < 0 {
				return Result{}, ErrNegativeWeight
			}
			w[i*n+j] = v
		}
	}

	start := opts.StartVertex
	startBit := 1 << uint(start)
	totalMasks := 1 << uint(n)

	// dp[mask*n+j]     = min cost to visit exactly "mask" and end at j (mask always contains start).
	// parent[mask*n+j] = predecessor of j in that optimal transition.
	dp := make([]float64, totalMasks*n)
	parent := make([]int, totalMasks*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[startBit*n+start] = 0

	// Group masks containing start by popcount so the DP grows subset size
	// monotonically without recomputing popcount in the hot loop.
	masksBySize := make([][]int, n+1)
	for mask := 0; mask < totalMasks; mask++ {
		if mask&startBit == 0 {
			continue
		}
		size := bits.OnesCount(uint(mask))
		masksBySize[size] = append(masksBySize[size], mask)
	}

	for size := 2; size <= n; size++ {
		for _, mask := range masksBySize[size] {
			for j := 0; j < n; j++ {
				jbit := 1 << uint(j)
				if j == start || mask&jbit == 0 {
					continue
				}
				prevMask := mask ^ jbit
				best := math.Inf(1)
				argk := -1
				for k := 0; k < n; k++ {
					kbit := 1 << uint(k)
					if prevMask&kbit == 0 {
						continue
					}
					base := dp[prevMask*n+k]
					if math.IsInf(base, 1) {
						continue
					}
					wkj := w[k*n+j]
					if math.IsInf(wkj, 0) {
						continue
					}
					if cand := base + wkj; cand < best {
						best = cand
						argk = k
					}
				}
				if argk >= 0 {
					dp[mask*n+j] = best
					parent[mask*n+j] = argk
				}
			}
		}
	}

	all := totalMasks - 1
	bestCost := math.Inf(1)
	last := -1
	for j := 0; j < n; j++ {
		if j == start {
			continue
		}
		base := dp[all*n+j]
		if math.IsInf(base, 1) {
			continue
		}
		wj := w[j*n+start]
		if math.IsInf(wj, 0) {
			continue
		}
		if total := base + wj; total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestCost, 1) {
		return Result{}, ErrIncompleteGraph
	}

	tour := make([]int, n+1)
	tour[0] = start
	tour[n] = start
	mask, cur := all, last
	for idx := n - 1; idx >= 1; idx-- {
		tour[idx] = cur
		p := parent[mask*n+cur]
		mask ^= 1 << uint(cur)
		cur = p
	}

	return Result{Tour: tour, Cost: bestCost}, nil
}
