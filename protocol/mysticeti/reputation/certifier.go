// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import (
	"github.com/luxfi/log"
)

// VoteCertifier classifies blocks as votes for a leader and aggregates
// voter stake to detect certificates.
type VoteCertifier struct {
	index     *BlockIndex
	support   *SupportOracle
	committee Committee
	log       log.Logger
}

// NewVoteCertifier returns a certifier over index using committee for
// quorum thresholds and stake weights. A nil logger defaults to a no-op
// logger.
func NewVoteCertifier(index *BlockIndex, support *SupportOracle, committee Committee, logger log.Logger) *VoteCertifier {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return &VoteCertifier{index: index, support: support, committee: committee, log: logger}
}

// IsVote reports whether candidate is a vote for leader: a block that
// directly or transitively supports leader via ancestor edges.
func (c *VoteCertifier) IsVote(candidate Block, leader Block) bool {
	leaderSlot := leader.Ref().Slot()
	supported, ok := c.support.FindSupportedLeader(leaderSlot, candidate)
	return ok && supported == leader.Ref()
}

// VoteCache memoizes vote classification per ancestor reference. It is
// leader-dependent, so callers must allocate a fresh cache per leader.
type VoteCache map[BlockRef]bool

// NewVoteCache returns an empty, per-leader memoization table.
func NewVoteCache() VoteCache {
	return make(VoteCache)
}

// IsCertificate reports whether the set of candidate's ancestors that are
// themselves votes for leader carries aggregate stake at or above the
// committee's quorum threshold. voteCache memoizes vote classification
// across calls sharing the same leader.
func (c *VoteCertifier) IsCertificate(candidate Block, leader Block, voteCache VoteCache) bool {
	stake := NewStakeAggregator(c.committee)

	for _, ref := range candidate.Ancestors() {
		isVote, cached := voteCache[ref]
		if !cached {
			ancestorBlock, ok := c.index.Get(ref)
			if !ok {
				c.log.Debug("certifier: ancestor not found in window, treating as not-a-vote",
					"ancestor", ref, "candidate", candidate.Ref(), "leader", leader.Ref())
				isVote = false
			} else {
				isVote = c.IsVote(ancestorBlock, leader)
			}
			voteCache[ref] = isVote
		}

		if !isVote {
			continue
		}
		if stake.Add(ref.Authority) {
			return true
		}
	}

	return false
}
