// Package archive provides extraction of downloaded package archives into an
// isolated directory.
package archive

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"

	"github.com/packrat-tools/packrat/pkg/fsutil"
)

// Manager handles archive extraction operations.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// ExtractAll extracts all files from an archive to the specified destination
// directory. The destination must be an isolated temp location, never a
// project directory; callers move validated contents into place afterwards.
func (am *Manager) ExtractAll(ctx context.Context, archivePath, destDir string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return fmt.Errorf("failed to open archive file: %w", err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := os.MkdirAll(destDir, fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return am.extractEntry(fsys, path, destDir, d)
	})
}

func (am *Manager) extractEntry(fsys fs.FS, path, destDir string, d fs.DirEntry) error {
	if path == "." {
		return nil
	}
	// Reject entries that would escape the destination.
	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(os.PathSeparator)) || filepath.IsAbs(clean) {
		return fmt.Errorf("archive entry escapes destination: %s", path)
	}
	target := filepath.Join(destDir, clean)

	if d.IsDir() {
		return fsutil.EnsureDir(target)
	}

	src, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", path, err)
	}
	defer func() { _ = src.Close() }()

	if err := fsutil.EnsureFileDir(target); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", target, err)
	}
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", target, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", path, err)
	}
	return nil
}
