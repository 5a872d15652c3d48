//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package glossary holds the term mappings injected into the translator
// prompt. The glossary is loaded once at startup and passed explicitly to
// whatever needs it; there is no package-level state.
package glossary

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/log"
)

// Glossary maps a source term to its translations keyed by two-letter
// language code.
type Glossary map[string]map[string]string

// Term is one source -> target pair handed to the translator prompt.
type Term struct {
	Source string `json:"source_term"`
	Target string `json:"target_term"`
}

// Default returns the built-in glossary used when no glossary file can be
// read.
func Default() Glossary {
	return Glossary{
		"cloud":   {"es": "nube", "de": "Cloud"},
		"payroll": {"es": "nómina", "de": "Lohnabrechnung"},
		"Workday": {"es": "Workday", "de": "Workday"},
	}
}

// Load reads a glossary JSON file. Read or decode failures fall back to
// the built-in default so a broken data file never takes the agent down.
func Load(path string) Glossary {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("load glossary %s: %v, using built-in glossary", path, err)
		return Default()
	}
	var g Glossary
	if err := json.Unmarshal(data, &g); err != nil {
		log.Errorf("parse glossary %s: %v, using built-in glossary", path, err)
		return Default()
	}
	return g
}

// languageCodes maps full language names, as users type them, to the
// two-letter codes keying the glossary.
var languageCodes = map[string]string{
	"spanish": "es", "español": "es", "espanol": "es",
	"german": "de", "deutsch": "de",
	"english": "en",
	"french": "fr", "français": "fr", "francais": "fr",
	"italian":    "it",
	"portuguese": "pt",
	"russian":    "ru",
}

// languageCode resolves a user-supplied language to a glossary code:
// known full names map through the table, bare two-letter codes pass
// through unchanged, anything else matches no terms.
func languageCode(language string) string {
	name := strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageCodes[name]; ok {
		return code
	}
	if len(name) == 2 {
		return name
	}
	return ""
}

// TermsFor returns the glossary pairs available for the target language,
// matched case-insensitively ("Spanish" and "es" both select the "es"
// entries). The result is sorted by source term so prompts stay
// deterministic.
func (g Glossary) TermsFor(language string) []Term {
	code := languageCode(language)
	terms := make([]Term, 0, len(g))
	for source, targets := range g {
		if target, ok := targets[code]; ok && target != "" {
			terms = append(terms, Term{Source: source, Target: target})
		}
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Source < terms[j].Source })
	return terms
}
