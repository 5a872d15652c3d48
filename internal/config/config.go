//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package config loads the application configuration and credentials.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"trpc.group/trpc-go/trpc-agent-go/log"
)

// EnvAPIKey is the environment variable holding the LLM API credential.
const EnvAPIKey = "OPENAI_API_KEY"

// Memory backend identifiers accepted in the config file.
const (
	MemoryInMemory        = "in-memory"
	MemoryPersistentMySQL = "persistent-mysql"
)

// defaultConfigFiles is the search order when --config is not given.
var defaultConfigFiles = []string{".translate-agent.yaml", "translate-agent.yaml"}

// Config is the full application configuration.
type Config struct {
	// Model drives the conversational agent.
	Model string `yaml:"model"`
	// TranslateModel drives the translate tool's direct LLM call.
	TranslateModel string       `yaml:"translate_model"`
	Memory         MemoryConfig `yaml:"memory"`
	// Glossary is the path to the glossary JSON file.
	Glossary string     `yaml:"glossary"`
	Eval     EvalConfig `yaml:"eval"`
	LogLevel string     `yaml:"log_level"`
}

// MemoryConfig selects the conversation history backend.
type MemoryConfig struct {
	Backend string `yaml:"backend"`
	// DSN is required for the persistent-mysql backend.
	DSN string `yaml:"dsn"`
}

// EvalConfig tunes the offline evaluation run.
type EvalConfig struct {
	// Threshold is the pass/fail gate on the 0-100 aggregate score.
	Threshold float64 `yaml:"threshold"`
	// Dataset is an optional path to a JSON dataset; empty uses the
	// built-in reference set.
	Dataset string `yaml:"dataset"`
	// Timeout bounds each per-case agent invocation. Zero disables it.
	Timeout Duration `yaml:"timeout"`
}

// Duration wraps time.Duration so config files can use values like "60s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		Model:          "gpt-4",
		TranslateModel: "gpt-4o-mini",
		Memory:         MemoryConfig{Backend: MemoryInMemory},
		Glossary:       "data/glossary.json",
		Eval: EvalConfig{
			Threshold: 50.0,
			Timeout:   Duration(60 * time.Second),
		},
		LogLevel: log.LevelInfo,
	}
}

// Load reads configuration from path, or from the first default config
// file found when path is empty. A missing config file is not an error;
// the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		for _, candidate := range defaultConfigFiles {
			data, err = os.ReadFile(candidate)
			if err == nil {
				path = candidate
				break
			}
		}
		if data == nil {
			log.Infof("no config file found, using defaults")
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	log.Debugf("loaded config from %s", path)
	return cfg, nil
}

// LoadEnv loads a .env file for local development. Missing files are
// fine; CI is expected to set credentials directly in the environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
}

// APIKey returns the LLM API credential, or an error when it is absent.
// Callers treat the error as fatal before any agent work begins.
func APIKey() (string, error) {
	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return "", errors.New(EnvAPIKey + " not found in environment variables")
	}
	return key, nil
}
