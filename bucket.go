// Copyright (c) 2026 The chainmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

// entry is a single key/value pair. Entries are owned by the bucket
// that holds them: created on Add, mutated in place on Update, and
// destroyed on Remove or Clear.
type entry[K, V any] struct {
	key   K
	value V
}

// bucket is the chain of entries whose keys hashed to one slot of a
// bucketArray. Collisions are resolved by a linear scan using the
// caller-supplied equal function; scan order is insertion order and
// the first match wins.
type bucket[K, V any] []entry[K, V]

// add appends a new entry unless an equal key is already chained
// here, in which case it returns ErrKeyExists and leaves the chain
// untouched.
func (b *bucket[K, V]) add(key K, value V, equal func(a, b K) bool) error {
	for i := range *b {
		if equal((*b)[i].key, key) {
			return ErrKeyExists
		}
	}
	*b = append(*b, entry[K, V]{key: key, value: value})
	return nil
}

// update replaces the value of the entry matching key, or returns
// ErrKeyNotFound without touching the chain.
func (b bucket[K, V]) update(key K, value V, equal func(a, b K) bool) error {
	for i := range b {
		if equal(b[i].key, key) {
			b[i].value = value
			return nil
		}
	}
	return ErrKeyNotFound
}

// remove deletes the entry matching key, preserving the order of the
// remaining entries, and reports whether anything was removed.
func (b *bucket[K, V]) remove(key K, equal func(a, b K) bool) bool {
	s := *b
	for i := range s {
		if !equal(s[i].key, key) {
			continue
		}
		copy(s[i:], s[i+1:])
		// Zero the vacated tail entry in case K or V hold pointers.
		s[len(s)-1] = entry[K, V]{}
		*b = s[:len(s)-1]
		return true
	}
	return false
}

// get returns the value associated with key and true, or the zero
// value of V and false.
func (b bucket[K, V]) get(key K, equal func(a, b K) bool) (V, bool) {
	for i := range b {
		if equal(b[i].key, key) {
			return b[i].value, true
		}
	}
	var zeroV V
	return zeroV, false
}
