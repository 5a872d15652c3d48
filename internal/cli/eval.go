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
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/translate-agent-go/internal/chatagent"
	"trpc.group/trpc-go/translate-agent-go/internal/config"
	"trpc.group/trpc-go/translate-agent-go/internal/eval"
	"trpc.group/trpc-go/translate-agent-go/internal/glossary"
)

var errGateFailed = errors.New("evaluation gate failed")

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate translation quality against the reference set",
	Long: `Runs the fixed evaluation dataset through the agent, scores each
translation against its reference, prints a JSON report, and exits
non-zero when the aggregate score falls below the configured threshold.`,
	RunE: runEval,
}

func runEval(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	// The credential is required up front; no partial run is attempted.
	if _, err := config.APIKey(); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		return err
	}

	dataset := eval.DefaultDataset()
	if cfg.Eval.Dataset != "" {
		if dataset, err = eval.LoadDataset(cfg.Eval.Dataset); err != nil {
			return err
		}
	}

	// Every case runs in a fresh throwaway session, so persistent chat
	// history has no role in an evaluation run.
	evalCfg := *cfg
	evalCfg.Memory = config.MemoryConfig{Backend: config.MemoryInMemory}

	gloss := glossary.Load(cfg.Glossary)
	agent, err := chatagent.New(&evalCfg, gloss)
	if err != nil {
		return fmt.Errorf("create agent: %w", err)
	}
	defer agent.Close()

	translator := &deadlineTranslator{next: agent, timeout: time.Duration(cfg.Eval.Timeout)}
	return evaluate(cmd.Context(), dataset, translator, cfg.Eval.Threshold)
}

// evaluate runs the dataset, prints the JSON report, and maps the gate
// decision to the command error.
func evaluate(ctx context.Context, dataset []eval.Case, translator eval.Translator, threshold float64) error {
	results := eval.Run(ctx, dataset, translator, eval.NewExactMatchEvaluator())

	fmt.Println("Evaluation Results:")
	fmt.Println(eval.Report(results))

	score := eval.Aggregate(results)
	if eval.Pass(score, threshold) {
		fmt.Printf("[SUCCESS] aggregate score %.1f%% meets threshold of %.1f%%\n", score, threshold)
		return nil
	}
	fmt.Printf("[FAIL] aggregate score %.1f%% below threshold of %.1f%%\n", score, threshold)
	return errGateFailed
}

// deadlineTranslator bounds each case invocation so a hung LLM call
// cannot block the whole run. The case runner itself stays retry-free.
type deadlineTranslator struct {
	next    eval.Translator
	timeout time.Duration
}

func (t *deadlineTranslator) Translate(ctx context.Context, input string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	return t.next.Translate(ctx, input)
}
