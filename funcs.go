// Copyright (c) 2026 The chainmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ContainsValue reports whether some entry of t has a value equal to
// v. Values are compared using ==. This is a full linear scan over
// every entry.
func ContainsValue[K any, V comparable](t *Table[K, V], v V) bool {
	return ContainsValueFunc(t, v, func(a, b V) bool { return a == b })
}

// ContainsValueFunc reports whether some entry of t has a value equal
// to v. Values are compared using eq.
func ContainsValueFunc[K, V any](t *Table[K, V], v V, eq func(a, b V) bool) bool {
	for it := t.Iter(); it.Next(); {
		if eq(it.Value(), v) {
			return true
		}
	}
	return false
}

// Equal returns true if the same set of keys and values are in t1
// and t2. Values are compared using ==.
func Equal[K any, V comparable](t1, t2 *Table[K, V]) bool {
	return EqualFunc(t1, t2, func(a, b V) bool { return a == b })
}

// EqualFunc returns true if the same set of keys and values are in
// t1 and t2. Values are compared using eq.
func EqualFunc[K, V any](t1, t2 *Table[K, V], eq func(a, b V) bool) bool {
	if t1.Len() != t2.Len() {
		return false
	}
	for it := t1.Iter(); it.Next(); {
		v2, ok := t2.Get(it.Key())
		if !ok || !eq(it.Value(), v2) {
			return false
		}
	}
	return true
}

// String converts t to a string representation using K's and V's
// String functions.
func String[K fmt.Stringer, V fmt.Stringer](t *Table[K, V]) string {
	return StringFunc(t,
		func(key K) string { return key.String() },
		func(value V) string { return value.String() },
	)
}

type strKV struct {
	k string
	v string
}

// StringFunc converts t to a string representation with the help of
// strK and strV functions to stringify t's keys and values. Entries
// are sorted by their stringified keys so the result is stable.
func StringFunc[K any, V any](t *Table[K, V],
	strK func(key K) string,
	strV func(value V) string) string {
	if t == nil || t.Len() == 0 {
		return "chainmap.Table[]"
	}
	strs := make([]strKV, t.Len())
	s := 0
	i := 0
	for it := t.Iter(); it.Next(); {
		kv := &strs[i]
		kv.k = strK(it.Key())
		kv.v = strV(it.Value())
		s += len(kv.k) + len(kv.v)
		i++
	}
	slices.SortFunc(strs, func(a, b strKV) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("chainmap.Table[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and values
	b.WriteString("chainmap.Table[")
	for i, kv := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.k)
		b.WriteByte(':')
		b.WriteString(kv.v)
	}
	b.WriteByte(']')
	return b.String()
}
