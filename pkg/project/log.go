package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/packrat-tools/packrat/pkg/fsutil"
)

// LogPath returns the append-only operation log for a project.
func LogPath(projectRoot string) string {
	return filepath.Join(projectRoot, MetaDirName, "packrat.log")
}

// AppendLog writes one timestamped line to the project log. It is strictly
// best-effort: any failure is swallowed and must never abort the calling
// operation.
func AppendLog(projectRoot, operation, id, outcome string) {
	path := LogPath(projectRoot)
	if err := fsutil.EnsureFileDir(path); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fsutil.FileModeDefault)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	line := fmt.Sprintf("%s %s %s %s\n", time.Now().Format(time.RFC3339), operation, id, outcome)
	_, _ = f.WriteString(line)
}
