//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package chatagent assembles the conversational translation assistant:
// an LLM agent with echo and glossary-aware translate tools, backed by a
// configurable conversation history store.
package chatagent

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-agent-go/agent"
	"trpc.group/trpc-go/trpc-agent-go/agent/llmagent"
	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-agent-go/model"
	"trpc.group/trpc-go/trpc-agent-go/model/openai"
	"trpc.group/trpc-go/trpc-agent-go/runner"
	"trpc.group/trpc-go/trpc-agent-go/session"
	sessioninmemory "trpc.group/trpc-go/trpc-agent-go/session/inmemory"
	sessionmysql "trpc.group/trpc-go/trpc-agent-go/session/mysql"
	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/translate-agent-go/internal/config"
	"trpc.group/trpc-go/translate-agent-go/internal/glossary"
)

const (
	appName       = "translate-agent"
	agentName     = "translate-assistant"
	defaultUserID = "default_user"
)

const agentInstruction = `You are a helpful translation assistant with two tools:
1. echo: echoes input text back to the user.
2. translate: translates text. Input format: '<language> | <text>' e.g. 'Russian | Hello'.

When the user asks for a translation, or sends a message already in the
'<language> | <text>' format, call the translate tool and answer with its
result. Stay conversational otherwise.`

// Options configures optional Agent behavior.
type Options struct {
	streaming bool
}

// Option is a function that configures the Agent.
type Option func(*Options)

// WithStreaming enables streaming responses, for interactive use.
func WithStreaming(streaming bool) Option {
	return func(o *Options) {
		o.streaming = streaming
	}
}

// Agent wraps the framework runner with the translator tool set.
type Agent struct {
	runner runner.Runner
	userID string
}

// New assembles the chat model, tools, and session backend described by
// cfg. The glossary is passed through to the translate tool.
func New(cfg *config.Config, gloss glossary.Glossary, opt ...Option) (*Agent, error) {
	if _, err := config.APIKey(); err != nil {
		return nil, err
	}
	opts := &Options{}
	for _, o := range opt {
		o(opts)
	}

	sessionService, err := newSessionService(cfg)
	if err != nil {
		return nil, err
	}

	genConfig := model.GenerationConfig{
		MaxTokens:   intPtr(2000),
		Temperature: floatPtr(0.7),
		Stream:      opts.streaming,
	}
	llmAgent := llmagent.New(
		agentName,
		llmagent.WithModel(openai.New(cfg.Model)),
		llmagent.WithDescription("A conversational assistant with echo and glossary-aware translation tools."),
		llmagent.WithInstruction(agentInstruction),
		llmagent.WithGenerationConfig(genConfig),
		llmagent.WithTools([]tool.Tool{
			newEchoTool(),
			newTranslateTool(cfg.TranslateModel, gloss),
		}),
	)

	r := runner.NewRunner(
		appName,
		llmAgent,
		runner.WithSessionService(sessionService),
	)
	return &Agent{runner: r, userID: defaultUserID}, nil
}

// newSessionService selects the conversation history backend from config.
func newSessionService(cfg *config.Config) (session.Service, error) {
	switch cfg.Memory.Backend {
	case "", config.MemoryInMemory:
		log.Infof("using in-memory conversation history")
		return sessioninmemory.NewSessionService(), nil
	case config.MemoryPersistentMySQL:
		if cfg.Memory.DSN == "" {
			return nil, errors.New("memory.dsn is required for the persistent-mysql backend")
		}
		log.Infof("using persistent MySQL conversation history")
		return sessionmysql.NewService(sessionmysql.WithMySQLClientDSN(cfg.Memory.DSN))
	default:
		return nil, fmt.Errorf("unknown memory backend %q", cfg.Memory.Backend)
	}
}

// Chat sends one user message into the given session and returns the
// event stream for the caller to render.
func (a *Agent) Chat(ctx context.Context, sessionID, text string) (<-chan *event.Event, error) {
	message := model.NewUserMessage(text)
	requestID := uuid.New().String()
	return a.runner.Run(ctx, a.userID, sessionID, message, agent.WithRequestID(requestID))
}

// Translate runs one input through the agent in a fresh session and
// returns the final response text. Each call gets its own session so
// history from one invocation cannot leak into the next; this is the
// translation capability consumed by the evaluation runner.
func (a *Agent) Translate(ctx context.Context, input string) (string, error) {
	sessionID := "eval-" + uuid.New().String()
	events, err := a.Chat(ctx, sessionID, input)
	if err != nil {
		return "", fmt.Errorf("run agent: %w", err)
	}
	var final string
	for evt := range events {
		if evt == nil {
			continue
		}
		if evt.Error != nil {
			return "", fmt.Errorf("agent event error: %s", evt.Error.Message)
		}
		if evt.IsFinalResponse() && len(evt.Response.Choices) > 0 {
			final = evt.Response.Choices[0].Message.Content
		}
	}
	return final, nil
}

// Close releases the runner resources.
func (a *Agent) Close() error {
	return a.runner.Close()
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
