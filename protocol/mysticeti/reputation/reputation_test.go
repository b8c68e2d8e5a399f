// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import "github.com/luxfi/ids"

// testBlock is a minimal Block implementation for tests, grounded on
// wavefpc's hand-written test doubles rather than a generated mock (the
// interface surface here is small enough that mockgen isn't warranted).
type testBlock struct {
	ref       BlockRef
	ancestors []BlockRef
}

func (b *testBlock) Ref() BlockRef          { return b.ref }
func (b *testBlock) Round() Round           { return b.ref.Round }
func (b *testBlock) Author() AuthorityIndex { return b.ref.Authority }
func (b *testBlock) Ancestors() []BlockRef  { return b.ancestors }

// testDigest derives a deterministic, distinct digest from (round, authority)
// so fixtures never collide without needing real hashing.
func testDigest(round Round, authority AuthorityIndex) ids.ID {
	var d ids.ID
	d[0] = byte(round)
	d[1] = byte(round >> 8)
	d[2] = byte(authority)
	d[3] = byte(authority >> 8)
	return d
}

func newTestBlock(round Round, authority AuthorityIndex, ancestors []BlockRef) *testBlock {
	return &testBlock{
		ref:       BlockRef{Round: round, Authority: authority, Digest: testDigest(round, authority)},
		ancestors: ancestors,
	}
}

// testCommittee is a uniform-stake committee of n authorities with quorum
// 2f+1.
type testCommittee struct {
	n        int
	stake    uint64
	quorum   uint64
	hostname func(AuthorityIndex) string
}

func newTestCommittee(n int) *testCommittee {
	f := (n - 1) / 3
	return &testCommittee{
		n:      n,
		stake:  1,
		quorum: uint64(2*f + 1),
		hostname: func(i AuthorityIndex) string {
			return "host"
		},
	}
}

func (c *testCommittee) Size() int { return c.n }
func (c *testCommittee) Authority(i AuthorityIndex) Authority {
	return Authority{Hostname: c.hostname(i), Stake: c.stake}
}
func (c *testCommittee) QuorumThreshold() uint64               { return c.quorum }
func (c *testCommittee) ToAuthorityIndex(i int) AuthorityIndex { return i }

// testCommitter elects leaderAuthority's slot at every round. Each leader
// round is its own wave, decided waveLength-1 rounds later (with a wave
// length of 3: leader r, votes r+1, certs r+2), the simplest
// single-committer schedule.
type testCommitter struct {
	leaderAuthority AuthorityIndex
	waveLength      uint64
	decline         map[Round]bool
}

func (c *testCommitter) ElectLeader(round Round) (Slot, bool) {
	if c.decline != nil && c.decline[round] {
		return Slot{}, false
	}
	return Slot{Round: round, Authority: c.leaderAuthority}, true
}

func (c *testCommitter) WaveNumber(round Round) uint64 {
	return round
}

func (c *testCommitter) DecisionRound(wave uint64) Round {
	return wave + (c.waveLength - 1)
}

// fullyConnectedDAG builds maxRound rounds (plus genesis) over n
// authorities where every block at round r has every block at round r-1
// as an ancestor. If skip is non-nil, the (round, authority) pairs it
// names are omitted from the output but still referenced as ancestors by
// the next round (used to model a block committed in a prior window).
func fullyConnectedDAG(n int, maxRound Round, skip map[Slot]bool) []Block {
	var all []Block
	prevRound := make([]BlockRef, 0, n)

	for round := Round(0); round <= maxRound; round++ {
		var curRound []BlockRef
		for a := 0; a < n; a++ {
			if skip != nil && skip[Slot{Round: round, Authority: a}] {
				curRound = append(curRound, BlockRef{Round: round, Authority: a, Digest: testDigest(round, a)})
				continue
			}
			var ancestors []BlockRef
			if round > 0 {
				ancestors = append(ancestors, prevRound...)
			}
			b := newTestBlock(round, a, ancestors)
			all = append(all, b)
			curRound = append(curRound, b.ref)
		}
		prevRound = curRound
	}

	return all
}

func asSubDag(blocks []Block, leaderRef BlockRef, commitIndex uint64) CommittedSubDag {
	return CommittedSubDag{LeaderRef: leaderRef, Blocks: blocks, CommitIndex: commitIndex}
}
