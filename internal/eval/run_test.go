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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// translatorFunc adapts a function to the Translator interface.
type translatorFunc func(ctx context.Context, input string) (string, error)

func (f translatorFunc) Translate(ctx context.Context, input string) (string, error) {
	return f(ctx, input)
}

// failingEvaluator always errors, to exercise the scoring failure path.
type failingEvaluator struct{}

func (failingEvaluator) Name() string { return "failing" }

func (failingEvaluator) EvaluateStrings(context.Context, string, string) (float64, error) {
	return 0, errors.New("evaluator broke")
}

func TestRunProducesOneResultPerCase(t *testing.T) {
	dataset := []Case{
		{Input: "Spanish | cloud payroll", Reference: "nube nómina"},
		{Input: "German | Workday payroll", Reference: "Workday Lohnabrechnung"},
		{Input: "Spanish | cloud", Reference: "nube"},
	}
	translator := translatorFunc(func(_ context.Context, input string) (string, error) {
		if input == "German | Workday payroll" {
			return "", errors.New("model unavailable")
		}
		return "The translation is 'nube nómina'.", nil
	})

	results := Run(context.Background(), dataset, translator, NewExactMatchEvaluator())
	require.Len(t, results, len(dataset))

	for i, result := range results {
		assert.Equal(t, i, result.CaseIndex)
		assert.Equal(t, dataset[i].Input, result.Input)
		assert.Equal(t, dataset[i].Reference, result.Reference)
	}

	// The failing case is recorded, not fatal.
	failed := results[1]
	assert.Empty(t, failed.Prediction)
	assert.Empty(t, failed.RawPrediction)
	assert.Equal(t, 0.0, failed.Score)
	assert.Equal(t, "model unavailable", failed.Error)

	// Surrounding cases still produce normal results.
	assert.Equal(t, "nube nómina", results[0].Prediction)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, "nube nómina", results[2].Prediction)
	assert.Equal(t, 0.0, results[2].Score)
	assert.Empty(t, results[2].Error)
}

func TestRunExtractsBeforeScoring(t *testing.T) {
	dataset := []Case{{Input: "Spanish | cloud payroll", Reference: "nube nómina"}}
	raw := "The translation of 'cloud payroll' in Spanish is 'nube nómina'."
	translator := translatorFunc(func(context.Context, string) (string, error) {
		return raw, nil
	})

	results := Run(context.Background(), dataset, translator, NewExactMatchEvaluator())
	require.Len(t, results, 1)
	assert.Equal(t, raw, results[0].RawPrediction)
	assert.Equal(t, "nube nómina", results[0].Prediction)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestRunScoringFailureIsPerCase(t *testing.T) {
	dataset := []Case{
		{Input: "Spanish | cloud", Reference: "nube"},
		{Input: "Spanish | payroll", Reference: "nómina"},
	}
	translator := translatorFunc(func(context.Context, string) (string, error) {
		return "nube", nil
	})

	results := Run(context.Background(), dataset, translator, failingEvaluator{})
	require.Len(t, results, 2)
	for _, result := range results {
		assert.Empty(t, result.Prediction)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, "evaluator broke", result.Error)
	}
}

func TestRunEmptyDataset(t *testing.T) {
	translator := translatorFunc(func(context.Context, string) (string, error) {
		t.Fatal("translator must not be invoked for an empty dataset")
		return "", nil
	})
	results := Run(context.Background(), nil, translator, NewExactMatchEvaluator())
	assert.Empty(t, results)
}
