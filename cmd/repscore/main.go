// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command repscore builds a synthetic, fully-connected DAG fixture and
// runs the MYSTICETI reputation scoring engine over it, printing the
// resulting authority scores. It exists to exercise the scoring engine
// end to end without pulling in a full node.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/consensus/protocol/mysticeti/reputation"
)

func main() {
	authorities := flag.Int("authorities", 4, "number of committee authorities")
	rounds := flag.Uint64("rounds", 6, "number of rounds to simulate, beyond genesis")
	flag.Parse()

	if *authorities < 1 {
		fmt.Fprintln(os.Stderr, "repscore: authorities must be >= 1")
		os.Exit(1)
	}

	committee := newFixtureCommittee(*authorities)
	blocks := buildFullyConnectedFixture(*authorities, *rounds)
	leaderRef := blocks[len(blocks)-1].Ref()

	subDags := []reputation.CommittedSubDag{{
		LeaderRef:   leaderRef,
		Blocks:      blocks,
		CommitIndex: 1,
	}}

	committer := &roundRobinCommitter{waveLength: 3}

	calc, err := reputation.NewScoreCalculator(
		committee,
		[]reputation.SubCommitter{committer},
		subDags,
		reputation.WithLogger(log.NewNoOpLogger()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "repscore: %v\n", err)
		os.Exit(1)
	}

	scores, err := calc.Calculate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "repscore: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("commit range: [%d, %d)\n", scores.CommitRange.Min, scores.CommitRange.Max)
	fmt.Println("authority  score  hostname")
	for _, as := range scores.AuthoritiesByScoreDesc(committee) {
		fmt.Printf("%9d  %5d  %s\n", as.Authority, as.Score, committee.Authority(as.Authority).Hostname)
	}
}

// fixtureCommittee is a uniform-stake committee used by the CLI fixture.
type fixtureCommittee struct {
	n int
}

func newFixtureCommittee(n int) *fixtureCommittee { return &fixtureCommittee{n: n} }

func (c *fixtureCommittee) Size() int { return c.n }

func (c *fixtureCommittee) Authority(i reputation.AuthorityIndex) reputation.Authority {
	return reputation.Authority{Hostname: fmt.Sprintf("validator-%d", i), Stake: 1}
}

func (c *fixtureCommittee) QuorumThreshold() uint64 {
	f := (c.n - 1) / 3
	return uint64(2*f + 1)
}

func (c *fixtureCommittee) ToAuthorityIndex(i int) reputation.AuthorityIndex { return i }

// roundRobinCommitter always elects authority 0 as the leader, the
// simplest sub-committer schedule.
type roundRobinCommitter struct {
	waveLength uint64
}

func (c *roundRobinCommitter) ElectLeader(round reputation.Round) (reputation.Slot, bool) {
	return reputation.Slot{Round: round, Authority: 0}, true
}

func (c *roundRobinCommitter) WaveNumber(round reputation.Round) uint64 {
	return round / c.waveLength
}

func (c *roundRobinCommitter) DecisionRound(wave uint64) reputation.Round {
	return wave*c.waveLength + (c.waveLength - 1)
}

// fixtureBlock is a minimal reputation.Block for the CLI fixture.
type fixtureBlock struct {
	ref       reputation.BlockRef
	ancestors []reputation.BlockRef
}

func (b *fixtureBlock) Ref() reputation.BlockRef          { return b.ref }
func (b *fixtureBlock) Round() reputation.Round           { return b.ref.Round }
func (b *fixtureBlock) Author() reputation.AuthorityIndex { return b.ref.Authority }
func (b *fixtureBlock) Ancestors() []reputation.BlockRef  { return b.ancestors }

func buildFullyConnectedFixture(n int, maxRound uint64) []reputation.Block {
	var all []reputation.Block
	var prevRound []reputation.BlockRef

	for round := uint64(0); round <= maxRound; round++ {
		var curRound []reputation.BlockRef
		for a := 0; a < n; a++ {
			ancestors := append([]reputation.BlockRef(nil), prevRound...)
			ref := reputation.BlockRef{
				Round:     round,
				Authority: a,
				Digest:    fixtureDigest(round, a),
			}
			all = append(all, &fixtureBlock{ref: ref, ancestors: ancestors})
			curRound = append(curRound, ref)
		}
		prevRound = curRound
	}

	return all
}

func fixtureDigest(round uint64, authority int) ids.ID {
	var d ids.ID
	d[0] = byte(round)
	d[1] = byte(round >> 8)
	d[2] = byte(authority)
	return d
}
