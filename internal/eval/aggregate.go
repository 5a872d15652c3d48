//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

package eval

import (
	"math"

	"trpc.group/trpc-go/trpc-agent-go/log"
)

// DefaultThreshold is the pass/fail gate applied to the aggregate
// percentage when no threshold is configured.
const DefaultThreshold = 50.0

// Aggregate combines per-case results into a single 0-100 percentage.
// Each result contributes max(exact score, similarity score); an empty
// result set aggregates to 0.0. An internal failure is logged and
// reported as 0.0 rather than propagated, so the gate still produces a
// decision.
func Aggregate(results []Result) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("aggregate score computation failed: %v", r)
			score = 0.0
		}
	}()

	if len(results) == 0 {
		log.Warnf("no evaluation results to aggregate")
		return 0.0
	}

	var total float64
	for _, result := range results {
		similarity := SimilarityScore(result.Prediction, result.Reference)
		final := math.Max(result.Score, similarity)
		total += final
		log.Debugf("evaluation: %q vs %q -> exact: %v, similarity: %.2f, final: %.2f",
			result.Prediction, result.Reference, result.Score, similarity, final)
	}
	score = total / float64(len(results)) * 100
	log.Infof("aggregate score: %.1f%% (average similarity: %.2f)", score, total/float64(len(results)))
	return score
}

// Pass reports whether the aggregate percentage meets the threshold.
// The caller maps the decision to a process exit status.
func Pass(score, threshold float64) bool {
	return score >= threshold
}
