//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

package chatagent

import (
	"context"

	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"
)

type echoArgs struct {
	Text string `json:"text" jsonschema:"description=Text to echo back to the user"`
}

type echoResult struct {
	Text string `json:"text"`
}

// newEchoTool creates the echo tool, which returns the input text back
// unchanged behind an "Echo: " prefix.
func newEchoTool() tool.CallableTool {
	return function.NewFunctionTool(
		echo,
		function.WithName("echo"),
		function.WithDescription("Echoes input text back to the user."),
	)
}

func echo(_ context.Context, args echoArgs) (echoResult, error) {
	log.Debugf("echo tool called with: %s", args.Text)
	return echoResult{Text: "Echo: " + args.Text}, nil
}
