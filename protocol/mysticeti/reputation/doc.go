// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package reputation implements the MYSTICETI leader reputation scoring
// engine: given a window of recently committed sub-DAGs, it assigns each
// authority a score proportional to how promptly it certified recent
// leaders.
//
// The engine is a pure function of (committee, sub-committers, sub-DAGs):
// no time, no randomness, no persistence. It is built fresh for each
// scoring window and discarded after Calculate returns.
//
// Usage:
//
//	calc, err := reputation.NewScoreCalculator(committee, committers, subDags)
//	if err != nil {
//	    return err
//	}
//	scores, err := calc.Calculate()
//	if err != nil {
//	    return err
//	}
//	scores.Publish(committee, sink)
package reputation
