package source

import (
	"iter"
	"sync/atomic"
)

// singleUse wraps seq so that only the first range over it reads pages.
// Any later range yields ErrSequenceConsumed once and stops.
func singleUse[V any](seq iter.Seq2[V, error]) iter.Seq2[V, error] {
	var used atomic.Bool
	return func(yield func(V, error) bool) {
		if used.Swap(true) {
			var zero V
			yield(zero, ErrSequenceConsumed)
			return
		}
		seq(yield)
	}
}
