// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink is a MetricsSink backed by a gauge vector labelled by
// authority hostname.
type PrometheusSink struct {
	reputationScores *prometheus.GaugeVec
}

// NewPrometheusSink creates the gauge vector and registers it with reg.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	s := &PrometheusSink{
		reputationScores: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mysticeti_reputation_scores",
			Help: "Current reputation score per authority hostname",
		}, []string{"authority"}),
	}

	if err := reg.Register(s.reputationScores); err != nil {
		return nil, fmt.Errorf("reputation: failed to register reputation_scores metric: %w", err)
	}

	return s, nil
}

// SetReputationScore implements MetricsSink.
func (s *PrometheusSink) SetReputationScore(hostname string, score int64) {
	s.reputationScores.WithLabelValues(hostname).Set(float64(score))
}
