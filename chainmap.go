// Copyright (c) 2026 The chainmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chainmap provides Table, a hash table that resolves
// collisions by per-bucket chaining and grows by doubling its bucket
// array once a fixed fill factor is exceeded. Users provide the equal
// and hash functions for the key type.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a. Be careful around
//     NaN float values. Go's built-in `map` has special cases for
//     handling this, but `Table` does not.
//   - If a key in a `Table` contains references -- such as pointers,
//     maps, or slices -- modifying the referenced data in a way that
//     affects the result of the equal or hash functions will result
//     in undefined behavior.
//   - For good performance hash functions should return uniformly
//     distributed data across the entire 64-bits of the value.
//
// Unlike Go's built-in map, Add on a present key and Update on an
// absent key are errors rather than silent upserts; use Add for
// insertion and Update for replacement.
//
// A Table is not safe for concurrent use. Callers that share one
// across goroutines must supply their own synchronization.
package chainmap

import "hash/maphash"

// The table doubles once count reaches fillFactorNum/fillFactorDen
// (0.75) of capacity. Represented as a ratio to keep the threshold in
// integer math.
const (
	fillFactorNum = 3
	fillFactorDen = 4
)

// Table implements a hash table of K keys to V values backed by a
// single bucket array at a time.
type Table[K, V any] struct {
	array *bucketArray[K, V]
	count int
	// count at which the next Add doubles the bucket array, always
	// floor(capacity*3/4)+1 for the active array.
	growthThreshold int
}

// New instantiates a Table with the given initial bucket capacity.
// It returns ErrInvalidCapacity if capacity < 1. See the package
// documentation for the contract the equal and hash functions must
// follow. The hash function is passed a [hash/maphash.Seed], this is
// meant to be used with functions and types in the [hash/maphash]
// package, though can be ignored.
func New[K, V any](
	capacity int,
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64) (*Table[K, V], error) {

	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	t := &Table[K, V]{
		array:           newBucketArray[K, V](capacity, maphash.MakeSeed(), hash, equal),
		growthThreshold: growthThreshold(capacity),
	}
	return t, nil
}

func growthThreshold(capacity int) int {
	return capacity*fillFactorNum/fillFactorDen + 1
}

// Len returns the number of entries in t.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Capacity returns the number of buckets in t's active bucket array.
func (t *Table[K, V]) Capacity() int {
	return t.array.capacity()
}

// Add inserts a new key/value pair. It returns ErrKeyExists, leaving
// t unmodified, if an equal key is already present. When the insert
// would put the table at or past its growth threshold the bucket
// array is doubled first.
func (t *Table[K, V]) Add(key K, value V) error {
	if t == nil {
		// We have to panic here rather than initialize an empty
		// table because we need the user to pass in hash and equal
		// functions.
		panic("Add called on nil Table")
	}
	if t.count >= t.growthThreshold {
		// Only grow if the key is genuinely new: a duplicate Add
		// must not mutate any state, including the bucket array.
		if _, ok := t.array.get(key); ok {
			return ErrKeyExists
		}
		t.grow()
	}
	if err := t.array.add(key, value); err != nil {
		return err
	}
	t.count++
	return nil
}

// Fetch returns the value associated with key, or ErrKeyNotFound if
// the key is absent. See Get for the comma-ok variant.
func (t *Table[K, V]) Fetch(key K) (V, error) {
	v, ok := t.Get(key)
	if !ok {
		var zeroV V
		return zeroV, ErrKeyNotFound
	}
	return v, nil
}

// Update replaces the value associated with key in place. It returns
// ErrKeyNotFound, leaving t unmodified, if the key is absent: Update
// never inserts.
func (t *Table[K, V]) Update(key K, value V) error {
	if t == nil {
		panic("Update called on nil Table")
	}
	return t.array.update(key, value)
}

// Remove deletes key and its associated value and reports whether
// the key was present. The bucket array never shrinks.
func (t *Table[K, V]) Remove(key K) bool {
	if t == nil || t.count == 0 {
		return false
	}
	if !t.array.remove(key) {
		return false
	}
	t.count--
	if t.count == 0 {
		// Reset the hash seed to make it more difficult for
		// attackers to repeatedly trigger hash collisions.
		t.array.seed = maphash.MakeSeed()
	}
	return true
}

// Get returns the value associated with key and true if that key is
// in the Table, otherwise it returns the zero value of V and false.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if t == nil || t.count == 0 {
		var zeroV V
		return zeroV, false
	}
	return t.array.get(key)
}

// ContainsKey reports whether key is present in t.
func (t *Table[K, V]) ContainsKey(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Clear deletes all entries from t. The bucket capacity is retained.
func (t *Table[K, V]) Clear() {
	if t == nil || t.count == 0 {
		return
	}
	t.array.clear()
	t.array.seed = maphash.MakeSeed()
	t.count = 0
}

// grow builds a bucket array of twice the current capacity, reinserts
// every entry through the normal per-key insertion path against the
// new capacity, and swaps it in. The swap happens only after every
// entry has been migrated; a failed reinsertion means the table's
// keys were not pairwise distinct and there is no way to continue.
func (t *Table[K, V]) grow() {
	old := t.array
	next := newBucketArray[K, V](old.capacity()*2, old.seed, old.hash, old.equal)
	for _, b := range old.buckets {
		for _, e := range b {
			if err := next.add(e.key, e.value); err != nil {
				panic("chainmap: duplicate key during grow")
			}
		}
	}
	t.array = next
	t.growthThreshold = growthThreshold(next.capacity())
}
