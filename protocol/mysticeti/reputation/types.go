// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import (
	"bytes"

	"github.com/luxfi/ids"
)

// Round is a monotonic, non-negative round number. Round 0 is genesis.
type Round = uint64

// AuthorityIndex is a dense index 0..N into the committee.
type AuthorityIndex = int

// BlockDigest is an opaque fixed-width block identifier with a total
// order, used as the innermost field of a BlockRef so that slot and
// round range scans can use inclusive digest bounds.
type BlockDigest = ids.ID

// MinBlockDigest and MaxBlockDigest bound BlockDigest from below and
// above, as inclusive bounds for range queries over BlockIndex.
var (
	MinBlockDigest = ids.Empty
	MaxBlockDigest = func() ids.ID {
		var d ids.ID
		for i := range d {
			d[i] = 0xff
		}
		return d
	}()
)

func compareDigest(a, b BlockDigest) int {
	return bytes.Compare(a[:], b[:])
}

// BlockRef uniquely identifies a block by (round, authority, digest),
// lexicographically ordered in that field order.
type BlockRef struct {
	Round     Round
	Authority AuthorityIndex
	Digest    BlockDigest
}

// Compare returns -1, 0 or 1 as r sorts before, equal to, or after o.
func (r BlockRef) Compare(o BlockRef) int {
	switch {
	case r.Round != o.Round:
		if r.Round < o.Round {
			return -1
		}
		return 1
	case r.Authority != o.Authority:
		if r.Authority < o.Authority {
			return -1
		}
		return 1
	default:
		return compareDigest(r.Digest, o.Digest)
	}
}

// Slot returns the (round, authority) slot this block reference belongs to.
func (r BlockRef) Slot() Slot {
	return Slot{Round: r.Round, Authority: r.Authority}
}

// Slot is a (round, authority) pair. A committed sub-DAG carries at most
// one block per slot (invariant I3).
type Slot struct {
	Round     Round
	Authority AuthorityIndex
}

// Block is a validated block as seen by the scoring engine. Implementations
// are assumed immutable and already verified by the caller.
type Block interface {
	Ref() BlockRef
	Round() Round
	Author() AuthorityIndex
	// Ancestors returns strong edges at Round()-1 plus any weak edges at
	// earlier rounds, in the order the block stored them.
	Ancestors() []BlockRef
}

// CommittedSubDag is the set of blocks committed together under one leader.
type CommittedSubDag struct {
	LeaderRef   BlockRef
	Blocks      []Block
	CommitIndex uint64
}

// CommitRange is the half-open interval [Min, Max) of commit indices a
// ReputationScores result covers.
type CommitRange struct {
	Min uint64
	Max uint64
}

// Authority describes one committee member's external attributes.
type Authority struct {
	Hostname string
	Stake    uint64
}

// Committee is the static (within one scoring call) committee configuration.
type Committee interface {
	Size() int
	Authority(i AuthorityIndex) Authority
	QuorumThreshold() uint64
	ToAuthorityIndex(i int) AuthorityIndex
}

// SubCommitter elects a leader slot for a round and defines the wave /
// decision-round relationship the scoring engine uses to find certificates.
// Sub-committers are external collaborators; the engine never constructs one.
type SubCommitter interface {
	ElectLeader(round Round) (Slot, bool)
	WaveNumber(round Round) uint64
	DecisionRound(wave uint64) Round
}
