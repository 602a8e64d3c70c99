// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import "errors"

// ErrInvalidArgument is returned at configuration time when an [Options]
// field is out of range. The tree is never constructed in this case.
var ErrInvalidArgument = errors.New("freqmine: invalid argument")

// ErrAllocation is returned by [Tree.AddLevel] when building the new level
// panics with a runtime allocation error (for instance a slice length
// computed from corrupted candidate data overflowing makeslice's limit).
// Every node touched during the failed call is rolled back to its
// pre-call state before this error is returned, so the tree remains valid
// at its previous height and the caller may retry or stop. A genuine
// out-of-memory condition from the Go runtime is not recoverable and is
// not covered by this error; see DESIGN.md.
var ErrAllocation = errors.New("freqmine: allocation failure building level")

// notPresent names the source's -1 "not present" support value. Nothing in
// this package returns it: LookupSupport reports absence through its
// (support int, ok bool) result instead.
const notPresent = -1
