//
// Tencent is pleased to support the open source community by making translate-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// translate-agent-go is licensed under the Apache License Version 2.0.
//
//

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "gpt-4", cfg.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.TranslateModel)
	assert.Equal(t, MemoryInMemory, cfg.Memory.Backend)
	assert.Equal(t, 50.0, cfg.Eval.Threshold)
	assert.Equal(t, Duration(60*time.Second), cfg.Eval.Timeout)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
model: gpt-4o
memory:
  backend: persistent-mysql
  dsn: "user:pass@tcp(127.0.0.1:3306)/chat_history"
eval:
  threshold: 80
  timeout: 5s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	// Unset fields keep their defaults.
	assert.Equal(t, "gpt-4o-mini", cfg.TranslateModel)
	assert.Equal(t, MemoryPersistentMySQL, cfg.Memory.Backend)
	assert.Equal(t, 80.0, cfg.Eval.Threshold)
	assert.Equal(t, Duration(5*time.Second), cfg.Eval.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadExplicitPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration
	require.NoError(t, yaml.Unmarshal([]byte(`90s`), &d))
	assert.Equal(t, Duration(90*time.Second), d)

	assert.Error(t, yaml.Unmarshal([]byte(`soon`), &d))
}

func TestAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-test")
	key, err := APIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", key)

	t.Setenv(EnvAPIKey, "")
	_, err = APIKey()
	assert.Error(t, err)
}
