// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

// CommitterSet is a thin, ordered adapter over externally supplied
// sub-committers. The scoring engine does not elect leaders itself; it
// asks each sub-committer in order, the way a pipelined multi-leader
// schedule stacks several independent leader elections per round.
type CommitterSet struct {
	committers []SubCommitter
}

// NewCommitterSet returns an adapter preserving committers' caller-defined
// order.
func NewCommitterSet(committers []SubCommitter) *CommitterSet {
	return &CommitterSet{committers: committers}
}

// Len returns the number of sub-committers.
func (c *CommitterSet) Len() int {
	return len(c.committers)
}

// At returns the i-th sub-committer in definition order.
func (c *CommitterSet) At(i int) SubCommitter {
	return c.committers[i]
}
