// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import (
	"fmt"

	"github.com/luxfi/log"
)

// decisionMargin is the conservative round margin between the highest
// observed leader round and the latest leader round considered: leader at
// round r, votes at r+1, certificates at r+2, and the engine additionally
// requires the decision round to be fully present in the window. The
// source this engine is modeled on carries the same literal constant and
// notes it is not verified tight for every configured sub-committer
// schedule; see DESIGN.md for the resolution of this open question.
const decisionMargin = 3

// ScoreCalculator is the top-level driver: it iterates leader rounds, asks
// each sub-committer for a leader, finds the leader block, finds
// certificates at the decision round, and increments the leader authority's
// score per certificate found.
type ScoreCalculator struct {
	committee   Committee
	committers  *CommitterSet
	index       *BlockIndex
	support     *SupportOracle
	certifier   *VoteCertifier
	commitRange CommitRange
	log         log.Logger

	margin uint64
}

// Option configures a ScoreCalculator at construction time.
type Option func(*ScoreCalculator)

// WithLogger overrides the default no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(c *ScoreCalculator) { c.log = logger }
}

// WithDecisionMargin overrides the conservative round margin used to bound
// the last leader round considered. Implementations that know their
// sub-committer's concrete DecisionRound function may tighten this.
func WithDecisionMargin(margin uint64) Option {
	return func(c *ScoreCalculator) { c.margin = margin }
}

// NewScoreCalculator constructs a calculator over unscoredSubDags. It fails
// with ErrEmptyInput if unscoredSubDags is empty. committers' order is
// preserved and consulted in that order for each leader round.
func NewScoreCalculator(committee Committee, committers []SubCommitter, unscoredSubDags []CommittedSubDag, opts ...Option) (*ScoreCalculator, error) {
	if len(unscoredSubDags) == 0 {
		return nil, ErrEmptyInput
	}

	index, err := NewBlockIndex(unscoredSubDags)
	if err != nil {
		return nil, err
	}

	minCommit := unscoredSubDags[0].CommitIndex
	maxCommit := unscoredSubDags[0].CommitIndex
	for _, subDag := range unscoredSubDags[1:] {
		if subDag.CommitIndex < minCommit {
			minCommit = subDag.CommitIndex
		}
		if subDag.CommitIndex > maxCommit {
			maxCommit = subDag.CommitIndex
		}
	}

	c := &ScoreCalculator{
		committee:   committee,
		committers:  NewCommitterSet(committers),
		index:       index,
		commitRange: CommitRange{Min: minCommit, Max: maxCommit},
		log:         log.NewNoOpLogger(),
		margin:      decisionMargin,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.support = NewSupportOracle(index, c.log)
	c.certifier = NewVoteCertifier(index, c.support, committee, c.log)

	return c, nil
}

// Calculate is pure: it produces one ReputationScores for the window this
// calculator was constructed over. Returns ErrEmptyBlocks if the window's
// block index is empty, or ErrInvariantViolation if more than one block is
// observed at an elected leader slot.
func (c *ScoreCalculator) Calculate() (ReputationScores, error) {
	if c.index.Len() == 0 {
		return ReputationScores{}, ErrEmptyBlocks
	}

	scores := make([]uint64, c.committee.Size())

	minRound, maxRound, ok := c.leaderRoundBounds()
	if !ok {
		return ReputationScores{ScoresPerAuthority: scores, CommitRange: c.commitRange}, nil
	}

	if maxRound < minRound+c.margin {
		// Window too narrow to contain a full decision round for any
		// leader. A valid no-op.
		return ReputationScores{ScoresPerAuthority: scores, CommitRange: c.commitRange}, nil
	}

	for leaderRound := minRound; leaderRound <= maxRound-c.margin; leaderRound++ {
		for i := 0; i < c.committers.Len(); i++ {
			if err := c.scoreLeaderRound(leaderRound, c.committers.At(i), scores); err != nil {
				return ReputationScores{}, err
			}
		}
	}

	return ReputationScores{ScoresPerAuthority: scores, CommitRange: c.commitRange}, nil
}

// leaderRoundBounds returns the minimum and maximum non-genesis round
// present in the block index.
func (c *ScoreCalculator) leaderRoundBounds() (min, max Round, ok bool) {
	first := true
	for _, ref := range c.index.sorted {
		if ref.Round == 0 {
			continue
		}
		if first {
			min, max = ref.Round, ref.Round
			first = false
			continue
		}
		if ref.Round < min {
			min = ref.Round
		}
		if ref.Round > max {
			max = ref.Round
		}
	}
	return min, max, !first
}

func (c *ScoreCalculator) scoreLeaderRound(leaderRound Round, committer SubCommitter, scores []uint64) error {
	leaderSlot, ok := committer.ElectLeader(leaderRound)
	if !ok {
		c.log.Debug("calculator: sub-committer declined to elect a leader", "round", leaderRound)
		return nil
	}

	leaderBlocks := c.index.BlocksAtSlot(leaderSlot)
	if len(leaderBlocks) == 0 {
		c.log.Debug("calculator: no block for elected leader slot in window, skipping", "slot", leaderSlot)
		return nil
	}
	if len(leaderBlocks) != 1 {
		return fmt.Errorf("%w: %d blocks observed at leader slot %+v", ErrInvariantViolation, len(leaderBlocks), leaderSlot)
	}
	leader := leaderBlocks[0]

	wave := committer.WaveNumber(leaderRound)
	decisionRound := committer.DecisionRound(wave)

	voteCache := NewVoteCache()
	for _, candidate := range c.index.BlocksAtRound(decisionRound) {
		if c.certifier.IsCertificate(candidate, leader, voteCache) {
			c.log.Debug("calculator: certificate found for leader", "leader", leader.Ref(), "certifier", candidate.Author())
			scores[candidate.Author()]++
		}
	}

	return nil
}
