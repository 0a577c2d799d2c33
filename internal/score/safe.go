package score

import (
	"cmp"
	"iter"
)

// SafeMin returns the smallest value of seq. The boolean is false when seq
// yields nothing, in which case the zero value is returned.
func SafeMin[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	var (
		result T
		found  bool
	)
	for v := range seq {
		if !found || v < result {
			result = v
			found = true
		}
	}
	return result, found
}

// SafeMax returns the largest value of seq, or false when seq is empty
func SafeMax[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	var (
		result T
		found  bool
	)
	for v := range seq {
		if !found || v > result {
			result = v
			found = true
		}
	}
	return result, found
}
