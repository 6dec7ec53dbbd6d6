// Package inmem provides an in-memory implementation of llmsdoc.DocsService
// over a parsed llmsdoc.Library.
package inmem

import (
	"context"
	"slices"
	"strings"

	"github.com/fwojciec/llmsdoc"
)

// Limits on the size of payload lists.
const (
	maxAvailableTopics = 10
	maxCategoryTopics  = 5
	maxCodeExamples    = 3
	maxRelatedTopics   = 5
	overviewLines      = 50
	overviewLength     = 1000
)

// Relevance weights per matching query term.
const (
	titleWeight    = 3
	categoryWeight = 2
	contentWeight  = 1
)

// Ensure DocsService implements llmsdoc.DocsService at compile time.
var _ llmsdoc.DocsService = (*DocsService)(nil)

// DocsService answers queries with linear scans over a library's topics.
// It holds no mutable state and is safe for concurrent use.
type DocsService struct {
	lib       *llmsdoc.Library
	topics    []llmsdoc.Topic
	framework llmsdoc.Framework
}

// NewDocsService creates a DocsService over lib describing framework.
func NewDocsService(lib *llmsdoc.Library, framework llmsdoc.Framework) *DocsService {
	return &DocsService{
		lib:       lib,
		topics:    lib.Topics(),
		framework: framework,
	}
}

// Search scores every topic against the query terms and returns the best
// matches in descending score order. Ties keep outline order.
func (s *DocsService) Search(ctx context.Context, query string, opts llmsdoc.SearchOptions) (*llmsdoc.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, llmsdoc.Errorf(llmsdoc.EINVALID, "Search query cannot be empty")
	}

	limit, err := opts.ResultLimit()
	if err != nil {
		return nil, err
	}
	terms := strings.Fields(strings.ToLower(query))
	category := strings.ToLower(opts.Category)

	results := []llmsdoc.SearchResult{}
	for _, t := range s.topics {
		if category != "" && !strings.Contains(strings.ToLower(t.Category), category) {
			continue
		}

		score := Score(t, terms)
		if score == 0 {
			continue
		}

		content := t.Content
		if content == "" {
			content = llmsdoc.FallbackContent(t.Category, t.Title)
		}
		results = append(results, llmsdoc.SearchResult{
			Title:          t.Title,
			Content:        content,
			URL:            t.URL,
			RelevanceScore: score,
		})
	}

	slices.SortStableFunc(results, func(a, b llmsdoc.SearchResult) int {
		return b.RelevanceScore - a.RelevanceScore
	})

	total := len(results)
	results = results[:min(limit, total)]
	for i := range results {
		results[i].Content = llmsdoc.Truncate(results[i].Content, llmsdoc.MaxSnippetLength)
	}

	categoryName := opts.Category
	if categoryName == "" {
		categoryName = "all"
	}

	return &llmsdoc.SearchResponse{
		Query:        query,
		Category:     categoryName,
		TotalResults: total,
		Results:      results,
	}, nil
}

// Score returns the relevance of a topic to lowercase query terms. Each
// term adds its weight once for every field containing it.
func Score(t llmsdoc.Topic, terms []string) int {
	title := strings.ToLower(t.Title)
	category := strings.ToLower(t.Category)
	content := strings.ToLower(t.Content)

	var score int
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += titleWeight
		}
		if strings.Contains(category, term) {
			score += categoryWeight
		}
		if strings.Contains(content, term) {
			score += contentWeight
		}
	}
	return score
}

// FindTopic returns the first topic whose title contains name or is
// contained in it, ignoring case. A miss returns a payload listing some
// available titles instead of an error.
func (s *DocsService) FindTopic(ctx context.Context, name string) (*llmsdoc.TopicResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, llmsdoc.Errorf(llmsdoc.EINVALID, "Topic name cannot be empty")
	}

	needle := strings.ToLower(name)
	for _, t := range s.topics {
		title := strings.ToLower(t.Title)
		if strings.Contains(title, needle) || strings.Contains(needle, title) {
			return &llmsdoc.TopicResponse{
				Title:    t.Title,
				Category: t.Category,
				URL:      t.URL,
				Content:  t.Content,
			}, nil
		}
	}

	available := []string{}
	for _, t := range s.topics[:min(maxAvailableTopics, len(s.topics))] {
		available = append(available, t.Title)
	}
	return &llmsdoc.TopicResponse{
		Error:           `Topic "` + name + `" not found`,
		Suggestion:      "Try searching with the " + llmsdoc.OpSearch.ToolName(s.framework.Slug) + " tool or list available categories",
		AvailableTopics: available,
	}, nil
}

// ListCategories groups topics by category in first-seen order.
func (s *DocsService) ListCategories(ctx context.Context) (*llmsdoc.CategoryListing, error) {
	categories := s.lib.Categories()

	stats := make([]llmsdoc.CategoryStats, 0, len(categories))
	index := make(map[string]int, len(categories))
	for i, name := range categories {
		index[name] = i
		stats = append(stats, llmsdoc.CategoryStats{Name: name, Topics: []string{}})
	}
	for _, t := range s.topics {
		c := &stats[index[t.Category]]
		c.TopicCount++
		if len(c.Topics) < maxCategoryTopics {
			c.Topics = append(c.Topics, t.Title)
		}
	}

	return &llmsdoc.CategoryListing{
		TotalCategories: len(categories),
		TotalTopics:     len(s.topics),
		Categories:      stats,
	}, nil
}

// Overview combines the framework description with the opening of the
// detail document and library totals.
func (s *DocsService) Overview(ctx context.Context) (*llmsdoc.Overview, error) {
	lines := strings.Split(s.lib.Detail(), "\n")
	excerpt := strings.Join(lines[:min(overviewLines, len(lines))], "\n")

	fw := s.framework
	gettingStarted := fw.GettingStarted
	gettingStarted.Prerequisites = nonNil(gettingStarted.Prerequisites)

	return &llmsdoc.Overview{
		Framework:                fw.Name,
		Description:              fw.Description,
		Maintainer:               fw.Maintainer,
		KeyFeatures:              nonNil(fw.KeyFeatures),
		GettingStarted:           gettingStarted,
		Overview:                 llmsdoc.Prefix(excerpt, overviewLength),
		TotalDocumentationTopics: len(s.topics),
		Categories:               s.lib.Categories(),
	}, nil
}

// FindExamples collects code blocks and topics that mention concept.
func (s *DocsService) FindExamples(ctx context.Context, concept string) (*llmsdoc.ExamplesResponse, error) {
	if strings.TrimSpace(concept) == "" {
		return nil, llmsdoc.Errorf(llmsdoc.EINVALID, "Concept cannot be empty")
	}

	examples := []string{}
	for _, b := range s.lib.CodeBlocks() {
		if b.Mentions(concept) {
			examples = append(examples, b.Code)
		}
	}

	needle := strings.ToLower(concept)
	related := []llmsdoc.RelatedTopic{}
	for _, t := range s.topics {
		if len(related) == maxRelatedTopics {
			break
		}
		if strings.Contains(strings.ToLower(t.Title), needle) || strings.Contains(strings.ToLower(t.Content), needle) {
			related = append(related, llmsdoc.RelatedTopic{Title: t.Title, Category: t.Category, URL: t.URL})
		}
	}

	return &llmsdoc.ExamplesResponse{
		Concept:            concept,
		CodeExamples:       examples[:min(maxCodeExamples, len(examples))],
		RelatedTopics:      related,
		TotalExamplesFound: len(examples),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
