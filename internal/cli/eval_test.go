//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

package cli

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/translate-agent-go/internal/config"
	"trpc.group/trpc-go/translate-agent-go/internal/eval"
)

type translatorFunc func(ctx context.Context, input string) (string, error)

func (f translatorFunc) Translate(ctx context.Context, input string) (string, error) {
	return f(ctx, input)
}

func TestRunEvalRequiresAPIKey(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")

	err := runEval(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvAPIKey)
}

func TestEvaluateGate(t *testing.T) {
	dataset := []eval.Case{
		{Input: "Spanish | cloud payroll", Reference: "nube nómina"},
		{Input: "German | Workday payroll", Reference: "Workday Lohnabrechnung"},
	}
	perfect := translatorFunc(func(_ context.Context, input string) (string, error) {
		for _, c := range dataset {
			if c.Input == input {
				return c.Reference, nil
			}
		}
		return "", nil
	})
	halfRight := translatorFunc(func(_ context.Context, input string) (string, error) {
		if input == dataset[0].Input {
			return dataset[0].Reference, nil
		}
		return "zzz", nil
	})

	require.NoError(t, evaluate(context.Background(), dataset, perfect, 50.0))

	// One of two cases correct scores exactly 50%; the gate is inclusive.
	require.NoError(t, evaluate(context.Background(), dataset, halfRight, 50.0))
	err := evaluate(context.Background(), dataset, halfRight, 50.1)
	assert.ErrorIs(t, err, errGateFailed)
}

func TestDeadlineTranslatorTimeout(t *testing.T) {
	blocking := translatorFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	translator := &deadlineTranslator{next: blocking, timeout: 10 * time.Millisecond}

	_, err := translator.Translate(context.Background(), "Spanish | cloud payroll")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDeadlineTranslatorZeroTimeout(t *testing.T) {
	passthrough := translatorFunc(func(ctx context.Context, input string) (string, error) {
		_, hasDeadline := ctx.Deadline()
		assert.False(t, hasDeadline, "zero timeout must not impose a deadline")
		return input, nil
	})
	translator := &deadlineTranslator{next: passthrough, timeout: 0}

	out, err := translator.Translate(context.Background(), "Spanish | cloud payroll")
	require.NoError(t, err)
	assert.Equal(t, "Spanish | cloud payroll", out)
}

func TestDeadlineTranslatorGateFailure(t *testing.T) {
	// A timed-out case is recorded, not fatal; with every case failing
	// the aggregate falls below the gate.
	blocking := translatorFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	translator := &deadlineTranslator{next: blocking, timeout: time.Millisecond}

	err := evaluate(context.Background(), eval.DefaultDataset(), translator, eval.DefaultThreshold)
	assert.ErrorIs(t, err, errGateFailed)
}