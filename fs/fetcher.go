// Package fs provides a file-based implementation of llmsdoc.Fetcher.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/llmsdoc"
)

// FileScheme is the optional prefix accepted on file locations.
const FileScheme = "file://"

// Ensure Fetcher implements llmsdoc.Fetcher at compile time.
var _ llmsdoc.Fetcher = (*Fetcher)(nil)

// Fetcher reads documentation sources from the local file system.
// Relative locations are resolved against Dir when it is set.
type Fetcher struct {
	Dir string
}

// NewFetcher creates a Fetcher resolving relative paths against dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{Dir: dir}
}

// Fetch reads the file at location. A missing file is reported as
// ENOTFOUND.
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := f.Path(location)
	if path == "" {
		return "", llmsdoc.Errorf(llmsdoc.EINVALID, "empty file location")
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", llmsdoc.Errorf(llmsdoc.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// Path returns the file system path for location.
func (f *Fetcher) Path(location string) string {
	path := strings.TrimPrefix(location, FileScheme)
	if path == "" {
		return ""
	}
	if f.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.Dir, path)
	}
	return filepath.Clean(path)
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
