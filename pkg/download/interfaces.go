package download

import "context"

// Manager defines the interface for fetching remote package archives. It
// replaces ad-hoc HTTP downloading with a testable API that stages into a
// temp file, verifies the payload, and reports progress.
type Manager interface {
	// Fetch downloads a single archive into opts.Dir and returns the absolute
	// local file path. The payload is verified to be a zip archive before the
	// destination file is finalized.
	Fetch(ctx context.Context, url string, opts Options) (string, error)
}

// ProgressFunc receives streaming progress. Total is -1 when the server did
// not declare a content length; callers should then report activity only.
type ProgressFunc func(fetched, total int64)

// Options control the behavior of a fetch.
type Options struct {
	Dir      string // destination directory; must be absolute
	Filename string // destination file name; must be non-empty

	// DiagnosticDir, when set, receives a copy of a payload that failed
	// archive verification, named after PackageID, for human inspection.
	// It should sit beside the project, never inside a managed directory.
	DiagnosticDir string
	PackageID     string

	Progress ProgressFunc // optional
}
