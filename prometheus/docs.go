package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/llmsdoc"
)

// Ensure DocsService implements llmsdoc.DocsService.
var _ llmsdoc.DocsService = (*DocsService)(nil)

// DocsService wraps a DocsService and records per-operation counts and
// latency.
type DocsService struct {
	next    llmsdoc.DocsService
	metrics *Metrics
}

// NewDocsService creates a new instrumented DocsService.
func NewDocsService(next llmsdoc.DocsService, metrics *Metrics) *DocsService {
	return &DocsService{next: next, metrics: metrics}
}

// ObserveLibrary records the size of a loaded library.
func (m *Metrics) ObserveLibrary(lib *llmsdoc.Library) {
	m.LibraryTopics.Set(float64(lib.Len()))
	m.LibraryCodeBlocks.Set(float64(len(lib.CodeBlocks())))
}

func (s *DocsService) Search(ctx context.Context, query string, opts llmsdoc.SearchOptions) (_ *llmsdoc.SearchResponse, err error) {
	defer s.observe(llmsdoc.OpSearch, time.Now(), &err)
	return s.next.Search(ctx, query, opts)
}

func (s *DocsService) FindTopic(ctx context.Context, name string) (_ *llmsdoc.TopicResponse, err error) {
	defer s.observe(llmsdoc.OpGetTopic, time.Now(), &err)
	return s.next.FindTopic(ctx, name)
}

func (s *DocsService) ListCategories(ctx context.Context) (_ *llmsdoc.CategoryListing, err error) {
	defer s.observe(llmsdoc.OpListCategories, time.Now(), &err)
	return s.next.ListCategories(ctx)
}

func (s *DocsService) Overview(ctx context.Context) (_ *llmsdoc.Overview, err error) {
	defer s.observe(llmsdoc.OpGetOverview, time.Now(), &err)
	return s.next.Overview(ctx)
}

func (s *DocsService) FindExamples(ctx context.Context, concept string) (_ *llmsdoc.ExamplesResponse, err error) {
	defer s.observe(llmsdoc.OpFindExamples, time.Now(), &err)
	return s.next.FindExamples(ctx, concept)
}

func (s *DocsService) observe(op llmsdoc.Operation, begin time.Time, err *error) {
	status := "ok"
	if *err != nil {
		status = llmsdoc.ErrorCode(*err)
	}
	s.metrics.ToolCallsTotal.WithLabelValues(op.String(), status).Inc()
	s.metrics.ToolCallDuration.WithLabelValues(op.String()).Observe(time.Since(begin).Seconds())
}
