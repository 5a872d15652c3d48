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
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/model"

	"trpc.group/trpc-go/translate-agent-go/internal/chatagent"
	"trpc.group/trpc-go/translate-agent-go/internal/glossary"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session with the translation assistant",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	gloss := glossary.Load(cfg.Glossary)

	agent, err := chatagent.New(cfg, gloss, chatagent.WithStreaming(true))
	if err != nil {
		return fmt.Errorf("create agent: %w", err)
	}
	defer agent.Close()

	sessionID := fmt.Sprintf("chat-session-%d", time.Now().Unix())
	fmt.Println("Type '/exit' to quit.")
	fmt.Println("Try: Spanish | cloud payroll")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/exit" || strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			fmt.Println("Good-bye!")
			return nil
		}
		if err := processTurn(cmd.Context(), agent, sessionID, input); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input scanner error: %w", err)
	}
	return nil
}

// processTurn sends one message and renders the streamed events: tool
// activity first, then the assistant's content deltas.
func processTurn(ctx context.Context, agent *chatagent.Agent, sessionID, input string) error {
	events, err := agent.Chat(ctx, sessionID, input)
	if err != nil {
		return fmt.Errorf("run agent: %w", err)
	}

	fmt.Print("Agent: ")
	for evt := range events {
		if evt == nil {
			continue
		}
		if evt.Error != nil {
			fmt.Printf("\nError: %s\n", evt.Error.Message)
			continue
		}
		renderToolActivity(evt)
		renderContent(evt)
		if evt.IsFinalResponse() {
			fmt.Println()
			break
		}
	}
	return nil
}

func renderToolActivity(evt *event.Event) {
	if evt.Response == nil || len(evt.Response.Choices) == 0 {
		return
	}
	for _, toolCall := range evt.Response.Choices[0].Message.ToolCalls {
		fmt.Printf("\n[tool call] %s %s\n", toolCall.Function.Name, string(toolCall.Function.Arguments))
	}
	for _, choice := range evt.Response.Choices {
		if choice.Message.Role == model.RoleTool && choice.Message.ToolID != "" {
			fmt.Printf("[tool result] %s\n", strings.TrimSpace(choice.Message.Content))
		}
	}
}

func renderContent(evt *event.Event) {
	if evt.Response == nil || len(evt.Response.Choices) == 0 {
		return
	}
	if content := evt.Response.Choices[0].Delta.Content; content != "" {
		fmt.Print(content)
	}
}
