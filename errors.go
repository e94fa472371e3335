// Copyright (c) 2026 The chainmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import "errors"

var (
	// ErrInvalidCapacity is returned by New when the requested
	// bucket capacity is less than 1.
	ErrInvalidCapacity = errors.New("chainmap: capacity must be at least 1")

	// ErrKeyExists is returned by Add when an equal key is already
	// present. The table is left unmodified.
	ErrKeyExists = errors.New("chainmap: key already exists")

	// ErrKeyNotFound is returned by Fetch and Update when the key is
	// absent. The table is left unmodified.
	ErrKeyNotFound = errors.New("chainmap: key not found")
)
