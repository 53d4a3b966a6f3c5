package queuectl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queuectl/queuectl"
)

func TestShellExecutorSuccess(t *testing.T) {
	executor := &queuectl.ShellExecutor{}

	res, err := executor.Execute(context.Background(), "echo hello", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.False(t, res.TimedOut)
}

func TestShellExecutorExitCode(t *testing.T) {
	executor := &queuectl.ShellExecutor{}

	res, err := executor.Execute(context.Background(), "echo oops >&2; exit 3", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "oops\n", res.Stderr)
	assert.False(t, res.TimedOut)
}

func TestShellExecutorTimeout(t *testing.T) {
	executor := &queuectl.ShellExecutor{}

	start := time.Now()
	res, err := executor.Execute(context.Background(), "sleep 5", 200*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
	assert.Equal(t, queuectl.TimeoutExitCode, res.ExitCode)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestShellExecutorNoTimeout(t *testing.T) {
	executor := &queuectl.ShellExecutor{}

	res, err := executor.Execute(context.Background(), "sleep 0.1; echo done", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "done\n", res.Stdout)
}
