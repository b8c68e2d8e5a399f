// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import "sort"

// ReputationScores is the immutable result of one scoring call: a
// per-authority score vector plus the commit range it covers.
type ReputationScores struct {
	ScoresPerAuthority []uint64
	CommitRange        CommitRange
}

// AuthorityScore pairs an authority index with its score.
type AuthorityScore struct {
	Authority AuthorityIndex
	Score     uint64
}

// AuthoritiesByScoreDesc returns authorities sorted by score descending.
// Ties are broken by authority index descending — a deterministic,
// implementation-independent rule that must be identical across all
// honest replicas.
func (s ReputationScores) AuthoritiesByScoreDesc(committee Committee) []AuthorityScore {
	out := make([]AuthorityScore, len(s.ScoresPerAuthority))
	for i, score := range s.ScoresPerAuthority {
		out[i] = AuthorityScore{
			Authority: committee.ToAuthorityIndex(i),
			Score:     score,
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Authority > out[j].Authority
	})

	return out
}

// MetricsSink receives one (hostname, score) observation per authority.
// Authorities with an empty hostname are skipped by Publish.
type MetricsSink interface {
	SetReputationScore(hostname string, score int64)
}

// Publish emits the current scores to sink in descending order, skipping
// zero-hostname authorities (e.g. placeholder/test authorities that carry
// no externally addressable identity).
func (s ReputationScores) Publish(committee Committee, sink MetricsSink) {
	for _, as := range s.AuthoritiesByScoreDesc(committee) {
		hostname := committee.Authority(as.Authority).Hostname
		if hostname == "" {
			continue
		}
		sink.SetReputationScore(hostname, int64(as.Score))
	}
}
