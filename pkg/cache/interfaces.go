package cache

import (
	"context"

	"github.com/packrat-tools/packrat/pkg/download"
)

// Manager defines the interface for the archive cache. Entries are keyed by
// package id, live outside any project, and are never expired implicitly.
type Manager interface {
	// GetOrFetch returns the cached archive for id, or fetches it from
	// sourceURL and stores it. A usable existing entry is reused by default;
	// ForceRefetch always refetches and overwrites.
	GetOrFetch(ctx context.Context, id, sourceURL string, opts GetOptions) (string, error)

	// EntryPath returns the deterministic cache path for id.
	EntryPath(id string) string

	// Info returns entry count and total size of the cache.
	Info() (*Info, error)

	// Clear deletes all cache entries.
	Clear() (*Info, error)

	// Directory returns the cache root.
	Directory() string
}

// GetOptions control a single GetOrFetch call.
type GetOptions struct {
	ForceRefetch bool

	// Confirm, when set and a cache entry exists, asks whether to reuse it.
	// The default answer is yes; a nil Confirm reuses without asking.
	Confirm func(message string, defaultYes bool) bool

	// Fetch options forwarded to the downloader on a miss or refetch.
	DiagnosticDir string
	Progress      download.ProgressFunc
}

// Info describes the cache contents.
type Info struct {
	Directory  string
	Count      int
	TotalBytes int64
}
