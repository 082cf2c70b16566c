package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSortedFunc yields the values of a map ordered by less, ties broken by key.
func IterSortedFunc[K cmp.Ordered, V any](m map[K]V, less func(a, b V) int) iter.Seq[V] {
	keys := slices.SortedFunc(maps.Keys(m), func(a, b K) int {
		if rc := less(m[a], m[b]); rc != 0 {
			return rc
		}
		return cmp.Compare(a, b)
	})

	return func(yield func(V) bool) {
		for _, key := range keys {
			if !yield(m[key]) {
				return
			}
		}
	}
}
