// Copyright (c) 2026 The chainmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import "hash/maphash"

// bucketArray is one fixed-capacity generation of the table's
// backing storage. Capacity never changes for the lifetime of an
// instance; the table grows by building a new bucketArray and
// swapping it in. The array carries the seed and the hash and equal
// functions so that every generation indexes keys the same way.
type bucketArray[K, V any] struct {
	buckets []bucket[K, V]
	seed    maphash.Seed
	hash    func(maphash.Seed, K) uint64
	equal   func(a, b K) bool
}

func newBucketArray[K, V any](
	capacity int,
	seed maphash.Seed,
	hash func(maphash.Seed, K) uint64,
	equal func(a, b K) bool) *bucketArray[K, V] {

	if capacity < 1 {
		panic("chainmap: bucketArray capacity < 1")
	}
	return &bucketArray[K, V]{
		buckets: make([]bucket[K, V], capacity),
		seed:    seed,
		hash:    hash,
		equal:   equal,
	}
}

func (a *bucketArray[K, V]) capacity() int {
	return len(a.buckets)
}

// indexOf maps key to a slot. The hash stays uint64 end to end, so
// the reduction cannot see a negative value regardless of what the
// hash function returns in its top bit.
func (a *bucketArray[K, V]) indexOf(key K) int {
	return int(a.hash(a.seed, key) % uint64(len(a.buckets)))
}

func (a *bucketArray[K, V]) add(key K, value V) error {
	return a.buckets[a.indexOf(key)].add(key, value, a.equal)
}

func (a *bucketArray[K, V]) update(key K, value V) error {
	return a.buckets[a.indexOf(key)].update(key, value, a.equal)
}

func (a *bucketArray[K, V]) remove(key K) bool {
	return a.buckets[a.indexOf(key)].remove(key, a.equal)
}

func (a *bucketArray[K, V]) get(key K) (V, bool) {
	return a.buckets[a.indexOf(key)].get(key, a.equal)
}

// clear empties every bucket. Dropping the chains outright lets the
// GC reclaim the entries.
func (a *bucketArray[K, V]) clear() {
	for i := range a.buckets {
		a.buckets[i] = nil
	}
}
