// Package editor detects whether the Unreal editor is currently running.
// Installing or removing content under a live editor corrupts project state,
// so detection errors fail safe: when in doubt, report running and block.
package editor

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// editorProcessNames are the known editor binary names across engine
// generations and platforms.
var editorProcessNames = []string{
	"UnrealEditor",
	"UE4Editor",
	"UE5Editor",
}

// Detector reports whether the host editor is running.
type Detector interface {
	IsEditorRunning() bool
}

// ProcessDetector scans the process table for editor binaries.
type ProcessDetector struct{}

// NewDetector creates a process-table based detector.
func NewDetector() *ProcessDetector {
	return &ProcessDetector{}
}

// IsEditorRunning returns true when an editor process is found, and also on
// any detection error.
func (d *ProcessDetector) IsEditorRunning() bool {
	procs, err := process.Processes()
	if err != nil {
		return true
	}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		if matchesEditorName(name) {
			return true
		}
	}
	return false
}

// matchesEditorName compares a process name against the known editor
// binaries, ignoring case and a Windows .exe suffix.
func matchesEditorName(name string) bool {
	base := name
	if strings.EqualFold(filepath.Ext(name), ".exe") {
		base = name[:len(name)-len(".exe")]
	}
	for _, editor := range editorProcessNames {
		if strings.EqualFold(base, editor) {
			return true
		}
	}
	return false
}

// StaticDetector returns a fixed answer; used in tests and as a --force
// substitute in tooling.
type StaticDetector bool

// IsEditorRunning returns the fixed answer.
func (d StaticDetector) IsEditorRunning() bool { return bool(d) }
