// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import (
	"github.com/luxfi/log"
)

// SupportOracle decides whether a candidate block transitively supports a
// given leader slot by following strong and weak ancestor edges.
type SupportOracle struct {
	index *BlockIndex
	log   log.Logger
}

// NewSupportOracle returns an oracle backed by index. A nil logger defaults
// to a no-op logger.
func NewSupportOracle(index *BlockIndex, logger log.Logger) *SupportOracle {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return &SupportOracle{index: index, log: logger}
}

// FindSupportedLeader returns the BlockRef of a leader at leaderSlot that
// from transitively supports, or false if no such leader can be proven
// reachable within the scoring window.
//
// Ancestors are walked depth-first in the order the block stored them.
// Rounds strictly decrease along both strong and weak edges, so no cycle
// detection or visited-set is required for correctness; recursion
// depth is bounded by from.Round() - leaderSlot.Round.
func (o *SupportOracle) FindSupportedLeader(leaderSlot Slot, from Block) (BlockRef, bool) {
	if from.Round() < leaderSlot.Round {
		return BlockRef{}, false
	}

	for _, ancestor := range from.Ancestors() {
		if ancestor.Slot() == leaderSlot {
			return ancestor, true
		}
		// A weak link pointing at or before the leader round cannot reach
		// forward to the leader slot without violating round monotonicity.
		if ancestor.Round <= leaderSlot.Round {
			continue
		}
		ancestorBlock, ok := o.index.Get(ancestor)
		if !ok {
			// The ancestor gap could hide the path that would have proven
			// support; from this branch the oracle cannot make a positive
			// claim, so it conservatively reports no support rather than
			// trying the remaining siblings.
			o.log.Debug("support: ancestor not found in window, treating as no support",
				"ancestor", ancestor, "from", from.Ref(), "leaderSlot", leaderSlot)
			return BlockRef{}, false
		}
		if support, ok := o.FindSupportedLeader(leaderSlot, ancestorBlock); ok {
			return support, true
		}
	}

	return BlockRef{}, false
}
