package project

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendLog(t *testing.T) {
	root := t.TempDir()

	AppendLog(root, "install", "big-rocks", "ok target=/x")
	AppendLog(root, "preview", "big-rocks", "no-op")

	data, err := os.ReadFile(LogPath(root))
	require.NoError(t, err)

	lines := regexp.MustCompile(`\n`).Split(string(data), -1)
	require.GreaterOrEqual(t, len(lines), 2)

	// RFC3339 timestamp followed by operation, id and outcome.
	lineRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\S* install big-rocks ok target=/x$`)
	assert.Regexp(t, lineRe, lines[0])
	assert.Contains(t, lines[1], "preview big-rocks no-op")
}

func TestAppendLogBestEffort(t *testing.T) {
	// A root whose .packrat path is occupied by a file cannot take the log;
	// the call must still return without panicking.
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, MetaDirName), []byte("x"), 0o644))

	AppendLog(root, "install", "big-rocks", "ok")

	_, err := os.Stat(LogPath(root))
	assert.Error(t, err)
}

func TestLogPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/proj", ".packrat", "packrat.log"), LogPath("/proj"))
}
