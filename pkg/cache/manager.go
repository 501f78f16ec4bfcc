// Package cache implements the process-wide archive cache: one zip per
// package id with a reuse-or-refetch decision on access.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/packrat-tools/packrat/internal/logger"
	"github.com/packrat-tools/packrat/pkg/download"
	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/fsutil"
)

// DefaultManager implements the Manager interface for cache operations.
type DefaultManager struct {
	directory  string
	downloader download.Manager
}

// NewManager creates a cache manager rooted at directory.
func NewManager(directory string, downloader download.Manager) *DefaultManager {
	return &DefaultManager{directory: directory, downloader: downloader}
}

// NewDefaultManager creates a cache manager under the user cache directory.
func NewDefaultManager(downloader download.Manager) (*DefaultManager, error) {
	dir, err := fsutil.GetArchiveCacheDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve user cache directory")
	}
	if err := os.MkdirAll(dir, fsutil.DirModeSecure); err != nil {
		return nil, errors.Wrap(err, "failed to create cache directory")
	}
	return NewManager(dir, downloader), nil
}

// Directory returns the cache root.
func (cm *DefaultManager) Directory() string { return cm.directory }

// EntryPath returns the deterministic cache path for id.
func (cm *DefaultManager) EntryPath(id string) string {
	return filepath.Join(cm.directory, id+".zip")
}

// GetOrFetch returns a local archive path for the package, reusing the cached
// entry when present and sound, refetching otherwise. A cached entry that
// fails the zip signature pre-check is treated as a miss.
func (cm *DefaultManager) GetOrFetch(ctx context.Context, id, sourceURL string, opts GetOptions) (string, error) {
	entry := cm.EntryPath(id)

	if !opts.ForceRefetch {
		if st, err := os.Stat(entry); err == nil && st.Size() > 0 {
			if err := download.VerifyZipMagic(entry); err != nil {
				logger.Warn("Cached archive failed verification, refetching", logger.Fields{"id": id})
			} else if opts.Confirm == nil || opts.Confirm(fmt.Sprintf("Use cached archive for %s?", id), true) {
				return entry, nil
			}
		}
	}

	if sourceURL == "" {
		return "", errors.Wrapf(errors.ErrNoArchiveLocation, "package %s", id)
	}
	if err := os.MkdirAll(cm.directory, fsutil.DirModeSecure); err != nil {
		return "", errors.Wrap(err, "failed to create cache directory")
	}

	path, err := cm.downloader.Fetch(ctx, sourceURL, download.Options{
		Dir:           cm.directory,
		Filename:      id + ".zip",
		DiagnosticDir: opts.DiagnosticDir,
		PackageID:     id,
		Progress:      opts.Progress,
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// Info returns entry count and total size of the cache.
func (cm *DefaultManager) Info() (*Info, error) {
	size, count, err := fsutil.DirSizeAndCount(cm.directory)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cache info")
	}
	return &Info{Directory: cm.directory, Count: count, TotalBytes: size}, nil
}

// Clear deletes all cache entries and recreates the empty cache root. It
// returns what was freed.
func (cm *DefaultManager) Clear() (*Info, error) {
	info, err := cm.Info()
	if err != nil {
		return nil, err
	}
	if err := os.RemoveAll(cm.directory); err != nil {
		return nil, errors.Wrapf(err, "failed to remove cache directory %s", cm.directory)
	}
	if err := os.MkdirAll(cm.directory, fsutil.DirModeSecure); err != nil {
		return info, errors.Wrapf(err, "failed to recreate cache directory %s", cm.directory)
	}
	return info, nil
}
