package queuectl_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queuectl/queuectl"
)

func TestJobLoggerAppend(t *testing.T) {
	logs := queuectl.NewJobLogger(t.TempDir())
	now := time.Now().UTC()

	res := &queuectl.ExecResult{ExitCode: 0, Stdout: "out\n", Stderr: ""}
	require.NoError(t, logs.Append("a", "echo out", 0, now, res))
	res = &queuectl.ExecResult{ExitCode: 1, Stdout: "", Stderr: "bad\n"}
	require.NoError(t, logs.Append("a", "echo out", 0, now, res))

	data, err := os.ReadFile(logs.Path("a"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "EXIT=0")
	assert.Contains(t, content, "EXIT=1")
	assert.Contains(t, content, "out\n")
	assert.Contains(t, content, "bad\n")
}

func TestJobLoggerTimeoutMarker(t *testing.T) {
	logs := queuectl.NewJobLogger(t.TempDir())

	res := &queuectl.ExecResult{ExitCode: queuectl.TimeoutExitCode, TimedOut: true}
	require.NoError(t, logs.Append("slow", "sleep 10", time.Second, time.Now().UTC(), res))

	data, err := os.ReadFile(logs.Path("slow"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "TIMEOUT after 1s for command: sleep 10")
}
