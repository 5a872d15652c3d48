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
	"fmt"
	"strings"
	"unicode/utf8"

	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-agent-go/model"
	"trpc.group/trpc-go/trpc-agent-go/model/openai"
	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"

	"trpc.group/trpc-go/translate-agent-go/internal/config"
	"trpc.group/trpc-go/translate-agent-go/internal/glossary"
)

type translateArgs struct {
	Input string `json:"input" jsonschema:"description=Translation request in the format '<language> | <text>', e.g. 'Russian | Hello'"`
}

type translateResult struct {
	Text string `json:"text"`
}

// translateTool performs a direct LLM call with a glossary-seeded
// translator prompt, outside the agent's own reasoning loop.
type translateTool struct {
	model    *openai.Model
	glossary glossary.Glossary
}

// newTranslateTool creates the glossary-aware translate tool.
func newTranslateTool(modelName string, gloss glossary.Glossary) tool.CallableTool {
	t := &translateTool{
		model:    openai.New(modelName),
		glossary: gloss,
	}
	return function.NewFunctionTool(
		t.translate,
		function.WithName("translate"),
		function.WithDescription("Translates text. Input format: '<language> | <text>' e.g. 'Russian | Hello'."),
	)
}

// translate parses the "<language> | <text>" input and asks the model for
// the bare translation. Failures are reported as descriptive result text
// rather than errors, so the agent can relay them to the user instead of
// aborting the turn.
func (t *translateTool) translate(ctx context.Context, args translateArgs) (translateResult, error) {
	parts := strings.SplitN(args.Input, "|", 2)
	if len(parts) != 2 {
		return translateResult{
			Text: fmt.Sprintf("Error: invalid format. Use '<language> | <text>'. Got: %s", args.Input),
		}, nil
	}
	language := strings.TrimSpace(parts[0])
	text := strings.TrimSpace(parts[1])

	if _, err := config.APIKey(); err != nil {
		log.Errorf("translate tool: %v", err)
		return translateResult{Text: "Translation failed: " + err.Error()}, nil
	}

	log.Infof("translating to %s: %s", language, text)

	request := &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage(t.systemPrompt(language)),
			model.NewUserMessage(text),
		},
		GenerationConfig: model.GenerationConfig{
			MaxTokens:   intPtr(500),
			Temperature: floatPtr(0.3),
		},
	}
	responses, err := t.model.GenerateContent(ctx, request)
	if err != nil {
		log.Errorf("translation error: %v", err)
		return translateResult{Text: "Translation failed: " + err.Error()}, nil
	}

	var content string
	for rsp := range responses {
		if rsp.Error != nil {
			log.Errorf("translation error: %s", rsp.Error.Message)
			return translateResult{Text: "Translation failed: " + rsp.Error.Message}, nil
		}
		if !rsp.IsPartial && len(rsp.Choices) > 0 {
			content = rsp.Choices[0].Message.Content
		}
	}

	result := stripQuotes(strings.TrimSpace(content))
	if !utf8.ValidString(result) {
		result = strings.ToValidUTF8(result, "?")
	}
	log.Infof("translation result: %s", result)
	return translateResult{Text: result}, nil
}

// systemPrompt demands only the translated text, seeded with the glossary
// terms for the target language when any exist.
func (t *translateTool) systemPrompt(language string) string {
	glossaryContext := ""
	if terms := t.glossary.TermsFor(language); len(terms) > 0 {
		pairs := make([]string, 0, len(terms))
		for _, term := range terms {
			pairs = append(pairs, term.Source+" -> "+term.Target)
		}
		glossaryContext = "\nUse these glossary terms exactly: " + strings.Join(pairs, ", ")
	}
	return fmt.Sprintf(
		"You are a professional translator. Translate the given text to %s. "+
			"Return ONLY the translated text, nothing else. Do not include any explanations, "+
			"quotes, or additional text. Just the direct translation.%s",
		language, glossaryContext,
	)
}

// stripQuotes removes one pair of wrapping quotes the model sometimes
// adds despite the prompt.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
