// Package download implements streaming archive fetches with zip signature
// verification and diagnostic capture on failure.
package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	pkgerrors "github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/fsutil"
)

// zipMagic is the ZIP local-file-header signature ("PK").
var zipMagic = []byte{0x50, 0x4B}

// ManagerImpl is an HTTP-based download manager. Downloads are staged into a
// temp file so no partial file ever reaches the authoritative destination.
type ManagerImpl struct {
	client    *http.Client
	userAgent string
}

// NewManager creates a new download manager with the given timeout and user agent.
func NewManager(timeout time.Duration, userAgent string) *ManagerImpl {
	if userAgent == "" {
		userAgent = "packrat/1.0"
	}
	return &ManagerImpl{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads a single archive and returns the path to the downloaded file.
func (m *ManagerImpl) Fetch(ctx context.Context, url string, opts Options) (string, error) {
	if opts.Dir == "" || !filepath.IsAbs(opts.Dir) {
		return "", fmt.Errorf("download dir must be absolute: %s: %w", opts.Dir, pkgerrors.ErrInvalidPath)
	}
	if opts.Filename == "" {
		return "", fmt.Errorf("download filename must be set: %w", pkgerrors.ErrInvalidPath)
	}
	if err := os.MkdirAll(opts.Dir, fsutil.DirModeSecure); err != nil {
		return "", pkgerrors.Wrap(err, "could not create download dir")
	}

	resp, err := m.doRequest(ctx, url)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	absPath := filepath.Join(opts.Dir, opts.Filename)
	tmpPath, err := writeBodyToTemp(resp, absPath, opts.Progress)
	if err != nil {
		return "", err
	}

	if err := VerifyZipMagic(tmpPath); err != nil {
		diag := preserveDiagnostic(tmpPath, opts)
		_ = os.Remove(tmpPath)
		if diag != "" {
			return "", pkgerrors.Wrapf(err,
				"payload from %s failed verification (raw copy kept at %s); common causes: the host returned an HTML confirmation or login page instead of the file, the source is a folder link rather than a file link, or sharing is misconfigured", url, diag)
		}
		return "", pkgerrors.Wrapf(err, "payload from %s failed verification", url)
	}

	if err := finalizeFile(tmpPath, absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (m *ManagerImpl) doRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to create request for %s", url)
	}
	req.Header.Set("User-Agent", m.userAgent)
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrDownloadFailed, "%s: %v", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d from %s: %w", resp.StatusCode, url, pkgerrors.ErrDownloadFailed)
	}
	return resp, nil
}

// progressReader wraps a response body and reports bytes read.
type progressReader struct {
	r        io.Reader
	fetched  int64
	total    int64
	progress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.fetched += int64(n)
		if p.progress != nil {
			p.progress(p.fetched, p.total)
		}
	}
	return n, err
}

func writeBodyToTemp(resp *http.Response, absPath string, progress ProgressFunc) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(absPath), "dl-*.tmp")
	if err != nil {
		return "", pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	body := &progressReader{r: resp.Body, total: resp.ContentLength, progress: progress}
	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}

func finalizeFile(tmpPath, absPath string) error {
	if err := fsutil.Move(tmpPath, absPath); err != nil {
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	if err := os.Chmod(absPath, fsutil.FileModeDefault); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}

// VerifyZipMagic checks that the first bytes of the file match the zip
// local-file-header signature. This is mandatory before any extraction.
func VerifyZipMagic(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return pkgerrors.Wrap(err, "open for verification")
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrNotAnArchive, "payload too short")
	}
	if !bytes.Equal(head, zipMagic) {
		return pkgerrors.Wrapf(pkgerrors.ErrNotAnArchive, "got leading bytes %#x %#x", head[0], head[1])
	}
	return nil
}

// preserveDiagnostic copies a failed payload beside the project for human
// inspection and returns the diagnostic path, or "" when not configured.
func preserveDiagnostic(tmpPath string, opts Options) string {
	if opts.DiagnosticDir == "" {
		return ""
	}
	id := opts.PackageID
	if id == "" {
		id = "unknown"
	}
	diagPath := filepath.Join(opts.DiagnosticDir, fmt.Sprintf("FailedDownload_%s.bin", id))
	if err := fsutil.Copy(tmpPath, diagPath); err != nil {
		return ""
	}
	return diagPath
}
