package tour

import (
	"math/bits"
	"sort"
)

// subsetsByDescendingPopcount returns every bitmask in [0, 2^n) ordered by
// descending popcount, preferring subsets that visit more obstacles; ties
// break by ascending mask value for a deterministic enumeration order.
func subsetsByDescendingPopcount(n int) []int {
	total := 1 << uint(n)
	masks := make([]int, total)
	for m := 0; m < total; m++ {
		masks[m] = m
	}
	sort.SliceStable(masks, func(i, j int) bool {
		return bits.OnesCount(uint(masks[i])) > bits.OnesCount(uint(masks[j]))
	})

	return masks
}

// members returns the indices set in mask, in ascending order.
func members(mask int) []int {
	var out []int
	for i := 0; mask != 0; i++ {
		if mask&1 != 0 {
			out = append(out, i)
		}
		mask >>= 1
	}

	return out
}
