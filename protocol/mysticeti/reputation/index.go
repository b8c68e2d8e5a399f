// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import (
	"fmt"
	"sort"
)

// BlockIndex is an in-memory, ordered index of the blocks in a scoring
// window, keyed by BlockRef. It supports exact lookup plus range scans
// (inclusive of both digest sentinels) by slot and by round. Implementations must not use unordered maps
// for this structure: slot and round queries rely on BlockRef's
// lexicographic order.
type BlockIndex struct {
	byRef  map[BlockRef]Block
	sorted []BlockRef // ascending by BlockRef.Compare
}

// NewBlockIndex builds an index from the concatenation of all blocks in all
// input sub-DAGs. Duplicates by BlockRef collapse to one. Returns
// ErrInvariantViolation if two distinct blocks share a slot (I3).
func NewBlockIndex(subDags []CommittedSubDag) (*BlockIndex, error) {
	idx := &BlockIndex{
		byRef: make(map[BlockRef]Block),
	}
	slots := make(map[Slot]BlockRef)

	for _, subDag := range subDags {
		for _, b := range subDag.Blocks {
			ref := b.Ref()
			if _, ok := idx.byRef[ref]; ok {
				continue // duplicate by BlockRef, collapse to one
			}
			if existing, ok := slots[ref.Slot()]; ok && existing != ref {
				return nil, fmt.Errorf("%w: slot %+v has blocks %s and %s", ErrInvariantViolation, ref.Slot(), existing.Digest, ref.Digest)
			}
			slots[ref.Slot()] = ref
			idx.byRef[ref] = b
			idx.sorted = append(idx.sorted, ref)
		}
	}

	sort.Slice(idx.sorted, func(i, j int) bool {
		return idx.sorted[i].Compare(idx.sorted[j]) < 0
	})

	return idx, nil
}

// Len returns the number of distinct blocks in the index.
func (idx *BlockIndex) Len() int {
	return len(idx.byRef)
}

// Get performs an exact BlockRef lookup.
func (idx *BlockIndex) Get(ref BlockRef) (Block, bool) {
	b, ok := idx.byRef[ref]
	return b, ok
}

// BlocksAtSlot returns all blocks whose (round, authority) equals slot. By
// I3 this is 0 or 1 element in practice; the sequence return keeps the
// missing-leader branch testable.
func (idx *BlockIndex) BlocksAtSlot(slot Slot) []Block {
	lo := BlockRef{Round: slot.Round, Authority: slot.Authority, Digest: MinBlockDigest}
	hi := BlockRef{Round: slot.Round, Authority: slot.Authority, Digest: MaxBlockDigest}
	return idx.scanRange(lo, hi)
}

// BlocksAtRound returns all blocks at the given round, in ascending
// (authority, digest) order.
func (idx *BlockIndex) BlocksAtRound(round Round) []Block {
	lo := BlockRef{Round: round, Authority: 0, Digest: MinBlockDigest}
	hi := BlockRef{Round: round, Authority: maxAuthorityIndex, Digest: MaxBlockDigest}
	return idx.scanRange(lo, hi)
}

// maxAuthorityIndex bounds the authority field of the inclusive upper edge
// used by BlocksAtRound; committees are always far smaller than this.
const maxAuthorityIndex = int(^uint(0) >> 1)

// scanRange returns blocks whose BlockRef falls in [lo, hi] (inclusive
// bounds supplied by callers using the digest sentinels above).
func (idx *BlockIndex) scanRange(lo, hi BlockRef) []Block {
	start := sort.Search(len(idx.sorted), func(i int) bool {
		return idx.sorted[i].Compare(lo) >= 0
	})
	end := sort.Search(len(idx.sorted), func(i int) bool {
		return idx.sorted[i].Compare(hi) > 0
	})
	if start >= end {
		return nil
	}
	out := make([]Block, 0, end-start)
	for _, ref := range idx.sorted[start:end] {
		out = append(out, idx.byRef[ref])
	}
	return out
}
