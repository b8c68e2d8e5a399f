// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockIndex_GetAndRangeQueries(t *testing.T) {
	blocks := fullyConnectedDAG(4, 2, nil)
	idx, err := NewBlockIndex([]CommittedSubDag{asSubDag(blocks, blocks[0].Ref(), 1)})
	require.NoError(t, err)
	require.Equal(t, len(blocks), idx.Len())

	for _, b := range blocks {
		got, ok := idx.Get(b.Ref())
		require.True(t, ok)
		require.Equal(t, b.Ref(), got.Ref())
	}

	round1 := idx.BlocksAtRound(1)
	require.Len(t, round1, 4)
	for i := 1; i < len(round1); i++ {
		require.True(t, round1[i-1].Ref().Compare(round1[i].Ref()) < 0)
	}

	slotBlocks := idx.BlocksAtSlot(Slot{Round: 1, Authority: 2})
	require.Len(t, slotBlocks, 1)
	require.Equal(t, 2, slotBlocks[0].Author())
}

func TestBlockIndex_MissingSlotReturnsEmpty(t *testing.T) {
	blocks := fullyConnectedDAG(4, 1, nil)
	idx, err := NewBlockIndex([]CommittedSubDag{asSubDag(blocks, blocks[0].Ref(), 1)})
	require.NoError(t, err)

	require.Empty(t, idx.BlocksAtSlot(Slot{Round: 99, Authority: 0}))
	_, ok := idx.Get(BlockRef{Round: 99, Authority: 0, Digest: testDigest(99, 0)})
	require.False(t, ok)
}

func TestBlockIndex_DuplicateBlockRefCollapses(t *testing.T) {
	b := newTestBlock(1, 0, nil)
	idx, err := NewBlockIndex([]CommittedSubDag{
		asSubDag([]Block{b}, b.Ref(), 1),
		asSubDag([]Block{b}, b.Ref(), 2),
	})
	require.NoError(t, err)
	require.Equal(t, 1, idx.Len())
}

func TestBlockRef_Compare(t *testing.T) {
	a := BlockRef{Round: 1, Authority: 0, Digest: testDigest(1, 0)}
	b := BlockRef{Round: 1, Authority: 1, Digest: testDigest(1, 1)}
	c := BlockRef{Round: 2, Authority: 0, Digest: testDigest(2, 0)}

	require.Negative(t, a.Compare(b))
	require.Negative(t, b.Compare(c))
	require.Positive(t, c.Compare(a))
	require.Zero(t, a.Compare(a))
}
