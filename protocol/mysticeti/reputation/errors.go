// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import "errors"

// Fatal errors for a single scoring call. None are retried inside the
// engine; callers decide whether a failure aborts or skips commit
// processing.
var (
	// ErrEmptyInput is returned when a calculator is constructed with no
	// sub-DAGs.
	ErrEmptyInput = errors.New("reputation: calculator constructed with no sub-dags")

	// ErrEmptyBlocks is returned when Calculate is invoked against an index
	// with no blocks in the window.
	ErrEmptyBlocks = errors.New("reputation: calculate invoked with no blocks in the window")

	// ErrInvariantViolation is returned when the input violates I3 (more
	// than one block at a slot). Commit indices are not checked for
	// consistency.
	ErrInvariantViolation = errors.New("reputation: invariant violated")
)
