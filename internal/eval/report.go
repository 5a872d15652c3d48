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
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"trpc.group/trpc-go/trpc-agent-go/log"
)

// Report renders results as indented, ASCII-safe JSON for CI logs.
// Non-ASCII runes are emitted as \uXXXX escapes so the output survives
// any terminal or log encoding; if serialization fails, the results are
// rewritten with unrepresentable characters replaced before retrying.
func Report(results []Result) string {
	out, err := marshalResults(results)
	if err == nil {
		return out
	}
	log.Warnf("encode evaluation report: %v, replacing unrepresentable characters", err)
	out, err = marshalResults(replaceUnrepresentable(results))
	if err != nil {
		log.Errorf("encode sanitized evaluation report: %v", err)
		return "[]"
	}
	return out
}

func marshalResults(results []Result) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return "", err
	}
	return escapeNonASCII(strings.TrimRight(buf.String(), "\n")), nil
}

// escapeNonASCII rewrites runes outside the ASCII range as JSON \uXXXX
// escapes. Runes beyond the BMP become surrogate pairs.
func escapeNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r <= 0xFFFF:
			writeEscape(&b, uint16(r))
		default:
			r1, r2 := utf16.EncodeRune(r)
			writeEscape(&b, uint16(r1))
			writeEscape(&b, uint16(r2))
		}
	}
	return b.String()
}

func writeEscape(b *strings.Builder, r uint16) {
	const hex = "0123456789abcdef"
	b.WriteString(`\u`)
	b.WriteByte(hex[r>>12&0xf])
	b.WriteByte(hex[r>>8&0xf])
	b.WriteByte(hex[r>>4&0xf])
	b.WriteByte(hex[r&0xf])
}

func replaceUnrepresentable(results []Result) []Result {
	safe := make([]Result, len(results))
	for i, r := range results {
		r.Input = toASCII(r.Input)
		r.Reference = toASCII(r.Reference)
		r.RawPrediction = toASCII(r.RawPrediction)
		r.Prediction = toASCII(r.Prediction)
		r.Error = toASCII(r.Error)
		safe[i] = r
	}
	return safe
}

func toASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
