package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEvents = `{"session_id":"a","timestamp":"2024-05-01T10:00:00Z","event":"startup"}
{"session_id":"a","timestamp":"2024-05-01T10:00:05Z","event":"dir_opened","path":"/tmp"}
not json
{"session_id":"a","timestamp":"2024-05-01T10:00:09Z","event":"read_failed","error":"permission denied"}
{"session_id":"b","timestamp":"2024-05-01T09:00:00Z","event":"dir_opened","path":"/home"}

{"session_id":"b","timestamp":"2024-05-01T09:00:01Z"}
`

func TestSummarize(t *testing.T) {
	sum, err := summarize(strings.NewReader(sampleEvents))
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Sessions)
	assert.Equal(t, 2, sum.Skipped)
	require.Len(t, sum.Events, 3)

	first := sum.Events[0]
	assert.Equal(t, "dir_opened", first.Event)
	assert.Equal(t, 2, first.Count)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), first.First.UTC())
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 5, 0, time.UTC), first.Last.UTC())

	assert.Equal(t, "read_failed", sum.Events[1].Event)
	assert.Equal(t, 1, sum.Events[1].Errors)
	assert.Equal(t, "startup", sum.Events[2].Event)
}

func TestWriteTable(t *testing.T) {
	sum, err := summarize(strings.NewReader(sampleEvents))
	require.NoError(t, err)
	sum.Source = "events.jsonl"

	var buf bytes.Buffer
	writeTable(&buf, sum, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "events.jsonl: 2 sessions, 2 skipped lines", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "EVENT"))
	assert.True(t, strings.HasPrefix(lines[2], "dir_opened"))
	assert.Contains(t, lines[2], "3 hours ago")
}
