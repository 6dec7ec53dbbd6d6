package llmsdoc

import "context"

// Fetcher retrieves the raw text of a documentation source.
type Fetcher interface {
	// Fetch returns the content at location, a file path or URL depending
	// on the implementation.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, location string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
