package llmsdoc

import (
	"context"
	"fmt"
)

// Default source file names, following the llms.txt convention.
const (
	DefaultOutlineFile = "llms.txt"
	DefaultDetailFile  = "llms-full.txt"
)

// Sources locates the two documents a library is built from.
type Sources struct {
	// Outline lists categories and topic links (llms.txt).
	Outline string `json:"outline"`

	// Detail holds the long-form content (llms-full.txt).
	Detail string `json:"detail"`
}

// LoadLibrary fetches the outline and then the detail document and parses
// them. If either fetch fails it returns an empty library together with the
// error, so callers can log the failure and keep serving.
func LoadLibrary(ctx context.Context, f Fetcher, src Sources) (*Library, error) {
	outline, err := f.Fetch(ctx, src.Outline)
	if err != nil {
		return NewLibrary(nil, "", ""), fmt.Errorf("load outline %q: %w", src.Outline, err)
	}

	detail, err := f.Fetch(ctx, src.Detail)
	if err != nil {
		return NewLibrary(nil, "", ""), fmt.Errorf("load detail %q: %w", src.Detail, err)
	}

	return ParseLibrary(outline, detail), nil
}
