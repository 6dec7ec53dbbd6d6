package mock

import (
	"context"

	"github.com/fwojciec/llmsdoc"
)

var _ llmsdoc.DocsService = (*DocsService)(nil)

// DocsService is a mock implementation of llmsdoc.DocsService.
type DocsService struct {
	SearchFn         func(ctx context.Context, query string, opts llmsdoc.SearchOptions) (*llmsdoc.SearchResponse, error)
	FindTopicFn      func(ctx context.Context, name string) (*llmsdoc.TopicResponse, error)
	ListCategoriesFn func(ctx context.Context) (*llmsdoc.CategoryListing, error)
	OverviewFn       func(ctx context.Context) (*llmsdoc.Overview, error)
	FindExamplesFn   func(ctx context.Context, concept string) (*llmsdoc.ExamplesResponse, error)
}

func (s *DocsService) Search(ctx context.Context, query string, opts llmsdoc.SearchOptions) (*llmsdoc.SearchResponse, error) {
	return s.SearchFn(ctx, query, opts)
}

func (s *DocsService) FindTopic(ctx context.Context, name string) (*llmsdoc.TopicResponse, error) {
	return s.FindTopicFn(ctx, name)
}

func (s *DocsService) ListCategories(ctx context.Context) (*llmsdoc.CategoryListing, error) {
	return s.ListCategoriesFn(ctx)
}

func (s *DocsService) Overview(ctx context.Context) (*llmsdoc.Overview, error) {
	return s.OverviewFn(ctx)
}

func (s *DocsService) FindExamples(ctx context.Context, concept string) (*llmsdoc.ExamplesResponse, error) {
	return s.FindExamplesFn(ctx, concept)
}
