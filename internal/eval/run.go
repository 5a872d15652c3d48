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
	"context"

	"trpc.group/trpc-go/trpc-agent-go/log"
)

// Translator is the external translation capability driven by the case
// runner. Implementations receive the raw case input (language | text)
// and return the agent's natural-language response.
type Translator interface {
	Translate(ctx context.Context, input string) (string, error)
}

// Run drives the dataset through the translator serially, in dataset
// order, and returns exactly one Result per case. A failing case is
// recorded and the batch continues; each case gets a single invocation
// attempt, no retries.
func Run(ctx context.Context, dataset []Case, translator Translator, evaluator StringEvaluator) []Result {
	log.Infof("running evaluation on %d test cases", len(dataset))
	results := make([]Result, 0, len(dataset))
	for i, c := range dataset {
		results = append(results, runCase(ctx, i, c, translator, evaluator))
	}
	return results
}

func runCase(ctx context.Context, index int, c Case, translator Translator, evaluator StringEvaluator) Result {
	result := Result{
		CaseIndex: index,
		Input:     c.Input,
		Reference: c.Reference,
	}
	raw, err := translator.Translate(ctx, c.Input)
	if err == nil {
		prediction := ExtractTranslation(raw)
		var score float64
		score, err = evaluator.EvaluateStrings(ctx, prediction, c.Reference)
		if err == nil {
			result.RawPrediction = raw
			result.Prediction = prediction
			result.Score = score
			log.Infof("test case %d: %q vs %q -> %v", index, prediction, c.Reference, score)
			return result
		}
	}
	log.Errorf("error evaluating test case %d: %v", index, err)
	result.Error = err.Error()
	return result
}
