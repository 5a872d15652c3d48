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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcho(t *testing.T) {
	result, err := echo(context.Background(), echoArgs{Text: "hello world"})
	require.NoError(t, err)
	assert.Equal(t, "Echo: hello world", result.Text)

	result, err = echo(context.Background(), echoArgs{})
	require.NoError(t, err)
	assert.Equal(t, "Echo: ", result.Text)
}

func TestEchoToolDeclaration(t *testing.T) {
	decl := newEchoTool().Declaration()
	assert.Equal(t, "echo", decl.Name)
	assert.NotEmpty(t, decl.Description)
}
