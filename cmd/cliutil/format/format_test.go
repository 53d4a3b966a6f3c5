package format_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queuectl/queuectl/cmd/cliutil/format"
	"github.com/queuectl/queuectl/job"
)

func TestParseOutputFormat(t *testing.T) {
	out, err := format.ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, format.TableFormat, out)

	out, err = format.ParseOutputFormat("json")
	require.NoError(t, err)
	assert.Equal(t, format.JSONFormat, out)

	_, err = format.ParseOutputFormat("yaml")
	assert.Error(t, err)
}

func TestJSONFormatterJobs(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	jobs := []*job.Job{{
		ID:        "a",
		Command:   "true",
		State:     job.StatePending,
		Priority:  job.DefaultPriority,
		RunAt:     now,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	var buf bytes.Buffer
	require.NoError(t, format.NewFormatter(format.JSONFormat, &buf).Format(jobs))
	assert.Contains(t, buf.String(), `"id": "a"`)
	assert.Contains(t, buf.String(), `"state": "pending"`)
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	formatter := format.NewFormatter(format.TableFormat, &buf)

	require.NoError(t, formatter.Format([]*job.Job{}))
	assert.Contains(t, buf.String(), "No jobs.")

	buf.Reset()
	require.NoError(t, formatter.Format([]*job.DLQEntry{}))
	assert.Contains(t, buf.String(), "DLQ is empty.")
}

func TestTableFormatterRejectsUnknownType(t *testing.T) {
	var buf bytes.Buffer
	err := format.NewFormatter(format.TableFormat, &buf).Format(42)
	assert.Error(t, err)
}
