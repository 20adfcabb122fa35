package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLogsCarryTraceID(t *testing.T) {
	home := t.TempDir()
	logPath := filepath.Join(home, "carbonlens.log")

	dir := filepath.Join(home, ".carbonlens")
	require.NoError(t, os.MkdirAll(dir, 0750))
	cfg := fmt.Sprintf("logging:\n  level: info\n  format: json\n  file: %s\n", logPath)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0600))

	_, _, err := executeCommandInHome(t, home, "factors")
	require.NoError(t, err)

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	// Every line of the invocation carries the same ULID trace ID.
	var traceIDs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))

		id, ok := entry["trace_id"].(string)
		require.True(t, ok, "log line missing trace_id: %s", scanner.Text())
		assert.Len(t, id, 26)
		traceIDs = append(traceIDs, id)

		assert.Equal(t, "cli", entry["component"])
	}
	require.NoError(t, scanner.Err())

	require.NotEmpty(t, traceIDs)
	for _, id := range traceIDs[1:] {
		assert.Equal(t, traceIDs[0], id)
	}
}

func TestTraceIDsDifferAcrossInvocations(t *testing.T) {
	home := t.TempDir()
	logPath := filepath.Join(home, "carbonlens.log")

	dir := filepath.Join(home, ".carbonlens")
	require.NoError(t, os.MkdirAll(dir, 0750))
	cfg := fmt.Sprintf("logging:\n  level: info\n  format: json\n  file: %s\n", logPath)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0600))

	_, _, err := executeCommandInHome(t, home, "factors")
	require.NoError(t, err)
	_, _, err = executeCommandInHome(t, home, "factors")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if id, ok := entry["trace_id"].(string); ok {
			ids[id] = true
		}
	}
	assert.Len(t, ids, 2)
}
