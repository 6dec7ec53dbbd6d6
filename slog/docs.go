package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmsdoc"
)

// Ensure LoggingDocsService implements llmsdoc.DocsService.
var _ llmsdoc.DocsService = (*LoggingDocsService)(nil)

// LoggingDocsService wraps a DocsService and logs one line per operation.
type LoggingDocsService struct {
	next   llmsdoc.DocsService
	logger *slog.Logger
}

// NewLoggingDocsService creates a new LoggingDocsService.
func NewLoggingDocsService(next llmsdoc.DocsService, logger *slog.Logger) *LoggingDocsService {
	return &LoggingDocsService{next: next, logger: logger}
}

func (s *LoggingDocsService) Search(ctx context.Context, query string, opts llmsdoc.SearchOptions) (resp *llmsdoc.SearchResponse, err error) {
	defer func(begin time.Time) {
		var results int
		if resp != nil {
			results = len(resp.Results)
		}
		category := opts.Category
		if category == "" {
			category = "all"
		}
		s.log(ctx, llmsdoc.OpSearch, begin, err,
			"query", query,
			"category", category,
			"limit", limitValue(opts.Limit),
			"results", results,
		)
	}(time.Now())
	return s.next.Search(ctx, query, opts)
}

func (s *LoggingDocsService) FindTopic(ctx context.Context, name string) (resp *llmsdoc.TopicResponse, err error) {
	defer func(begin time.Time) {
		s.log(ctx, llmsdoc.OpGetTopic, begin, err,
			"topic", name,
			"found", resp != nil && resp.Found(),
		)
	}(time.Now())
	return s.next.FindTopic(ctx, name)
}

func (s *LoggingDocsService) ListCategories(ctx context.Context) (resp *llmsdoc.CategoryListing, err error) {
	defer func(begin time.Time) {
		var categories int
		if resp != nil {
			categories = resp.TotalCategories
		}
		s.log(ctx, llmsdoc.OpListCategories, begin, err, "categories", categories)
	}(time.Now())
	return s.next.ListCategories(ctx)
}

func (s *LoggingDocsService) Overview(ctx context.Context) (resp *llmsdoc.Overview, err error) {
	defer func(begin time.Time) {
		s.log(ctx, llmsdoc.OpGetOverview, begin, err)
	}(time.Now())
	return s.next.Overview(ctx)
}

func (s *LoggingDocsService) FindExamples(ctx context.Context, concept string) (resp *llmsdoc.ExamplesResponse, err error) {
	defer func(begin time.Time) {
		var examples int
		if resp != nil {
			examples = resp.TotalExamplesFound
		}
		s.log(ctx, llmsdoc.OpFindExamples, begin, err,
			"concept", concept,
			"examples", examples,
		)
	}(time.Now())
	return s.next.FindExamples(ctx, concept)
}

// log writes the operation record. Invalid input is logged at warn level,
// other failures at error level.
func (s *LoggingDocsService) log(ctx context.Context, op llmsdoc.Operation, begin time.Time, err error, attrs ...any) {
	attrs = append(attrs, "duration", time.Since(begin))
	level := slog.LevelInfo
	if err != nil {
		attrs = append(attrs, "err", err)
		level = slog.LevelError
		if llmsdoc.ErrorCode(err) == llmsdoc.EINVALID {
			level = slog.LevelWarn
		}
	}
	s.logger.Log(ctx, level, op.String(), attrs...)
}

// limitValue reports an unset limit as "default".
func limitValue(limit *int) any {
	if limit == nil {
		return "default"
	}
	return *limit
}
