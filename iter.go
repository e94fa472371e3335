// Copyright (c) 2026 The chainmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import "iter"

// Iterator is instantiated by a call to Iter. It walks the bucket
// array that was active when it was created, slot by slot and within
// each slot in insertion order.
//
// An Iterator holds no lock: if the table is mutated while the
// iterator is still being consumed, the entries it produces are
// unspecified. In particular a grow swaps in a new bucket array and
// leaves the iterator walking the old one.
type Iterator[K, V any] struct {
	key     K
	value   V
	buckets []bucket[K, V]
	slot    int
	i       int
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value at the iterator's current position. This
// is only valid after a call to Next() that returns true.
func (it *Iterator[K, V]) Value() V {
	return it.value
}

// Next moves the iterator to the next entry. Next returns false when
// the iterator is complete.
func (it *Iterator[K, V]) Next() bool {
	for it.slot < len(it.buckets) {
		b := it.buckets[it.slot]
		if it.i < len(b) {
			it.key = b[it.i].key
			it.value = b[it.i].value
			it.i++
			return true
		}
		it.slot++
		it.i = 0
	}
	var (
		zeroK K
		zeroV V
	)
	it.key = zeroK
	it.value = zeroV
	return false
}

// Iter instantiates an Iterator over the entries of t. Entries are
// produced in slot order of the bucket array in effect when Iter was
// called.
func (t *Table[K, V]) Iter() *Iterator[K, V] {
	if t == nil || t.count == 0 {
		return &Iterator[K, V]{}
	}
	// grab snapshot of bucket state
	return &Iterator[K, V]{buckets: t.array.buckets}
}

// All returns an iterator over key-value pairs from t.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Iter(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in t.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := t.Iter(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns an iterator over values in t.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := t.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
