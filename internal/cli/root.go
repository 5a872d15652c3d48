//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package cli defines the translate-agent command tree.
package cli

import (
	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-agent-go/log"

	"trpc.group/trpc-go/translate-agent-go/internal/config"
)

var (
	// cfgFile is the config file path given via --config.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "translate-agent",
		Short: "Conversational translation assistant with an offline quality gate",
		Long: `A proof-of-concept conversational agent with echo and glossary-aware
translation tools, plus an offline evaluation harness that scores
translation quality against a fixed reference set for CI gating.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command. The caller maps a returned error to a
// non-zero process exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./.translate-agent.yaml)")
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(evalCmd)
}

// setup loads the environment, the config file, and applies the log
// level. Shared by all subcommands.
func setup() (*config.Config, error) {
	config.LoadEnv()
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	log.SetLevel(cfg.LogLevel)
	return cfg, nil
}
