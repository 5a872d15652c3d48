//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package eval scores agent translations against a fixed reference set.
//
// The pipeline is strictly forward: dataset -> case runner -> extractor ->
// scorer -> aggregator -> gate. Results are produced in dataset order, one
// per case, whether or not the individual case succeeded.
package eval

import (
	"encoding/json"
	"fmt"
	"os"
)

// Case is one (input, reference) pair from the evaluation dataset.
// Input carries the target language and source text joined by a pipe,
// e.g. "Spanish | cloud payroll".
type Case struct {
	Input     string `json:"input"`
	Reference string `json:"reference"`
}

// Result records the outcome of evaluating a single case. Exactly one
// Result exists per dataset case; failed cases carry an empty prediction,
// a zero score, and a non-empty Error.
type Result struct {
	CaseIndex     int     `json:"test_case"`
	Input         string  `json:"input"`
	Reference     string  `json:"reference"`
	RawPrediction string  `json:"raw_prediction"`
	Prediction    string  `json:"prediction"`
	Score         float64 `json:"score"`
	Error         string  `json:"error,omitempty"`
}

// DefaultDataset returns the built-in reference set used when no dataset
// file is configured.
func DefaultDataset() []Case {
	return []Case{
		{Input: "Spanish | cloud payroll", Reference: "nube nómina"},
		{Input: "German | Workday payroll", Reference: "Workday Lohnabrechnung"},
	}
}

// LoadDataset reads a JSON array of cases from path. An empty array is a
// valid, scoreable dataset.
func LoadDataset(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return cases, nil
}
