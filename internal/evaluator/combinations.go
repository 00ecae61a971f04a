package evaluator

import "iter"

// Combinations yields every size-k index subset of [0, n) in lexicographic
// order. The sequence is lazy and restartable: ranging over it again
// produces the subsets from the start. The yielded slice is reused between
// iterations; callers that retain indices must copy them.
//
// Yields nothing when k > n; yields the single empty subset when k == 0.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			if !yield(idx) {
				return
			}

			// Advance the rightmost index that still has room.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
