//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package main is the entry point for the translate-agent CLI.
package main

import (
	"os"

	"trpc.group/trpc-go/translate-agent-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
