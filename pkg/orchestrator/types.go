//go:generate mockgen -destination=./mocks/orchestrator.go -package=mocks . ArchiveCache,Extractor,EditorDetector,LayoutInspector

package orchestrator

import (
	"context"

	"github.com/packrat-tools/packrat/pkg/cache"
	"github.com/packrat-tools/packrat/pkg/inspect"
	"github.com/packrat-tools/packrat/pkg/model"
)

// ArchiveCache is the subset of the cache manager used by the orchestrator.
type ArchiveCache interface {
	GetOrFetch(ctx context.Context, id, sourceURL string, opts cache.GetOptions) (string, error)
}

// Extractor is the subset of the archive manager used by the orchestrator.
type Extractor interface {
	ExtractAll(ctx context.Context, archivePath, destDir string) error
}

// EditorDetector reports whether the host editor is running. Detection errors
// report true (assume running, block).
type EditorDetector interface {
	IsEditorRunning() bool
}

// LayoutInspector produces a layout descriptor for an extracted tree.
type LayoutInspector interface {
	Inspect(extractRoot string) (*inspect.Layout, error)
}

// Event represents a progress notification for one state of an operation.
type Event struct {
	Phase string // project|guard|license|target|fetch|verify|extract|inspect|compat|preview|apply|prune|done|error
	ID    string // package id, when applicable
	Msg   string
}

// EventHooks carries callbacks for progress events.
type EventHooks struct {
	OnEvent func(Event)
}

// InstallOptions control install execution.
type InstallOptions struct {
	// Force downgrades the editor-running guard, the overwrite confirmation,
	// and engine-version mismatch blocks to warnings. It never overrides the
	// license gate or the engine-level package block.
	Force bool

	// PreviewOnly runs the full validation path, including download and
	// extraction, but performs zero filesystem changes under the project.
	PreviewOnly bool

	// Refetch bypasses the cache reuse decision and downloads fresh.
	Refetch bool
}

// InstallResult describes what an install did or, in preview mode, would do.
type InstallResult struct {
	Target    string
	Flattened bool
	Entries   []string
	Previewed bool
}

// UninstallOptions control uninstall execution.
type UninstallOptions struct {
	Force bool
}

// UninstallResult reports the uninstall outcome. Removed is false when the
// target did not exist (a reported no-op).
type UninstallResult struct {
	Target  string
	Removed bool
}

// PruneOptions control prune execution.
type PruneOptions struct {
	// Statuses is the license status set selecting removal candidates.
	// Empty means all non-OK statuses.
	Statuses []model.LicenseStatus
	DryRun   bool
	Force    bool
}

// PruneItem is one prune candidate and its individual outcome.
type PruneItem struct {
	ID     string
	Status model.LicenseStatus
	Target string
	Err    error
}

// PruneResult collects per-candidate outcomes; a single candidate's failure
// never aborts the remaining candidates.
type PruneResult struct {
	Candidates []PruneItem
	Removed    int
}
