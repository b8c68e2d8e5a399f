// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

// StakeAggregator is a reusable set-of-authorities-with-stake-sum
// primitive: it tracks which authorities have been added and the
// cumulative stake they represent, de-duplicating repeat adds by the same
// authority. It is deliberately not inlined into VoteCertifier so the
// threshold-crossing logic can be reused and tested on its own, the way
// the validator participation bitset in wavefpc is kept separate from the
// vote-tallying loop that drives it.
type StakeAggregator struct {
	committee Committee
	seen      map[AuthorityIndex]struct{}
	stake     uint64
}

// NewStakeAggregator returns an aggregator with zero stake.
func NewStakeAggregator(committee Committee) *StakeAggregator {
	return &StakeAggregator{
		committee: committee,
		seen:      make(map[AuthorityIndex]struct{}),
	}
}

// Add records a contribution from authority. It returns true if this call
// causes the cumulative stake to reach or cross the committee's quorum
// threshold for the first time (the boundary itself counts as crossing).
// Adding the same authority twice contributes stake only on the first call.
func (s *StakeAggregator) Add(authority AuthorityIndex) bool {
	if _, ok := s.seen[authority]; ok {
		return false
	}
	wasBelow := s.stake < s.committee.QuorumThreshold()
	s.seen[authority] = struct{}{}
	s.stake += s.committee.Authority(authority).Stake
	return wasBelow && s.stake >= s.committee.QuorumThreshold()
}

// Stake returns the cumulative stake recorded so far.
func (s *StakeAggregator) Stake() uint64 {
	return s.stake
}

// ReachedThreshold reports whether the cumulative stake has reached the
// committee's quorum threshold.
func (s *StakeAggregator) ReachedThreshold() bool {
	return s.stake >= s.committee.QuorumThreshold()
}
