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
	"math"
	"strings"
	"unicode"
)

const (
	// wordOverlapCutoff is the word-overlap score at which the word signal
	// is trusted on its own, without the character fallback.
	wordOverlapCutoff = 0.7
	// charOverlapWeight discounts character-only similarity so that shared
	// letters across unrelated words are not over-rewarded.
	charOverlapWeight = 0.8
)

// SimilarityScore computes a normalized [0,1] similarity between a
// predicted translation and its reference. Exact match after
// normalization short-circuits to 1.0; otherwise word-set overlap is
// used, with a discounted character-set overlap as the fallback for
// near-misses such as accent differences.
func SimilarityScore(prediction, reference string) float64 {
	if prediction == "" || reference == "" {
		return 0.0
	}

	pred := strings.ToLower(strings.TrimSpace(prediction))
	ref := strings.ToLower(strings.TrimSpace(reference))

	if pred == ref {
		return 1.0
	}

	refWords := wordSet(ref)
	if len(refWords) == 0 {
		return 0.0
	}
	predWords := wordSet(pred)
	wordScore := float64(intersectionSize(predWords, refWords)) / float64(len(refWords))
	if wordScore >= wordOverlapCutoff {
		return wordScore
	}

	charScore := charOverlapScore(pred, ref)
	return math.Max(wordScore, charScore*charOverlapWeight)
}

// wordSet splits a normalized string on whitespace into a set of unique
// tokens.
func wordSet(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		words[w] = struct{}{}
	}
	return words
}

func intersectionSize(a, b map[string]struct{}) int {
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

// charOverlapScore compares the sets of alphanumeric runes in both
// strings. A reference without alphanumeric runes contributes nothing.
func charOverlapScore(pred, ref string) float64 {
	refChars := alnumSet(ref)
	if len(refChars) == 0 {
		return 0.0
	}
	predChars := alnumSet(pred)
	overlap := 0
	for r := range predChars {
		if _, ok := refChars[r]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(refChars))
}

func alnumSet(s string) map[rune]struct{} {
	chars := make(map[rune]struct{})
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			chars[r] = struct{}{}
		}
	}
	return chars
}
