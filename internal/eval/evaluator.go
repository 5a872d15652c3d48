//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

package eval

import "context"

// StringEvaluator scores a predicted string against a reference string.
// The case runner treats it as a pluggable collaborator, so alternative
// metrics can replace the default exact matcher without touching the
// pipeline.
type StringEvaluator interface {
	// Name returns the evaluator identifier.
	Name() string
	// EvaluateStrings scores prediction against reference.
	EvaluateStrings(ctx context.Context, prediction, reference string) (float64, error)
}

// exactMatchEvaluator returns 1 for byte-for-byte equality, 0 otherwise.
type exactMatchEvaluator struct{}

// NewExactMatchEvaluator creates the default exact-match string evaluator.
func NewExactMatchEvaluator() StringEvaluator {
	return exactMatchEvaluator{}
}

func (exactMatchEvaluator) Name() string {
	return "exact_match"
}

func (exactMatchEvaluator) EvaluateStrings(_ context.Context, prediction, reference string) (float64, error) {
	if prediction == reference {
		return 1.0, nil
	}
	return 0.0, nil
}
