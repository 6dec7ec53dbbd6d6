package main

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/llmsdoc"
)

// Ensure SourceFetcher implements llmsdoc.Fetcher at compile time.
var _ llmsdoc.Fetcher = (*SourceFetcher)(nil)

// SourceFetcher routes http(s) URLs to a remote fetcher and everything
// else to a file fetcher.
type SourceFetcher struct {
	file   llmsdoc.Fetcher
	remote llmsdoc.Fetcher
}

// NewSourceFetcher creates a SourceFetcher.
func NewSourceFetcher(file, remote llmsdoc.Fetcher) *SourceFetcher {
	return &SourceFetcher{file: file, remote: remote}
}

// Fetch delegates to the fetcher matching the location's scheme.
func (f *SourceFetcher) Fetch(ctx context.Context, location string) (string, error) {
	if IsRemote(location) {
		return f.remote.Fetch(ctx, location)
	}
	return f.file.Fetch(ctx, location)
}

// Close closes both fetchers.
func (f *SourceFetcher) Close() error {
	return errors.Join(f.file.Close(), f.remote.Close())
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
