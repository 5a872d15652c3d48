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
	"regexp"
	"strings"
)

// extractionRules is tried in order against the raw agent response; the
// first submatch of the first matching rule wins. Later rules are
// deliberately less specific fallbacks, so the order must not change.
var extractionRules = []*regexp.Regexp{
	// "The translation of X is 'text'"
	regexp.MustCompile(`(?i)translation.*is\s*["']([^"']+)["']`),
	// "... is 'text'"
	regexp.MustCompile(`(?i)is\s*["']([^"']+)["']`),
	// any quoted substring
	regexp.MustCompile(`(?i)["']([^"']+)["']`),
}

// responsePrefixes are stripped from the front of an unquoted response.
var responsePrefixes = []string{"Translation:", "Result:", "Output:"}

// ExtractTranslation recovers the literal translated string from a
// free-form agent response. Agents tend to answer with full sentences
// like "The translation of 'cloud payroll' in Spanish is 'nube nómina'.";
// this pulls out just the translation. When nothing matches, the trimmed
// response itself is used, minus any known prefix.
func ExtractTranslation(response string) string {
	if response == "" {
		return ""
	}
	for _, rule := range extractionRules {
		if m := rule.FindStringSubmatch(response); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	result := strings.TrimSpace(response)
	for _, prefix := range responsePrefixes {
		if strings.HasPrefix(result, prefix) {
			result = strings.TrimSpace(result[len(prefix):])
		}
	}
	return result
}
