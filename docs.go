package llmsdoc

import (
	"context"
	"encoding/json"
)

// DefaultSearchLimit is the number of search results returned when no
// limit is given.
const DefaultSearchLimit = 5

// MaxSnippetLength is the maximum number of characters of topic content
// returned with a search result.
const MaxSnippetLength = 300

// DocsService answers queries over a documentation library.
//
// Required string arguments that are blank return EINVALID. Misses are not
// errors: they are described in the returned payload.
type DocsService interface {
	// Search ranks topics by keyword relevance to the query.
	Search(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error)

	// FindTopic returns the first topic whose title contains the name or is
	// contained by it, ignoring case.
	FindTopic(ctx context.Context, name string) (*TopicResponse, error)

	// ListCategories returns every category with its topic count.
	ListCategories(ctx context.Context) (*CategoryListing, error)

	// Overview describes the framework and summarises the library.
	Overview(ctx context.Context) (*Overview, error)

	// FindExamples returns code blocks and topics mentioning a concept.
	FindExamples(ctx context.Context, concept string) (*ExamplesResponse, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Restrict results to categories containing this text, ignoring case.
	Category string `json:"category,omitempty"`

	// Maximum number of results. Nil means DefaultSearchLimit and zero
	// means no results. Negative limits are rejected.
	Limit *int `json:"limit,omitempty"`
}

// ResultLimit returns the effective result limit of o. Returns EINVALID
// when the limit is negative.
func (o SearchOptions) ResultLimit() (int, error) {
	if o.Limit == nil {
		return DefaultSearchLimit, nil
	}
	if *o.Limit < 0 {
		return 0, Errorf(EINVALID, "Limit cannot be negative")
	}
	return *o.Limit, nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// SearchResult represents a ranked search match.
type SearchResult struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	URL            string `json:"url,omitempty"`
	RelevanceScore int    `json:"relevanceScore"`
}

// SearchResponse is the payload of a search.
type SearchResponse struct {
	Query        string         `json:"query"`
	Category     string         `json:"category"`
	TotalResults int            `json:"totalResults"`
	Results      []SearchResult `json:"results"`
}

// TopicResponse is the payload of a topic lookup. On a miss only Error,
// Suggestion and AvailableTopics are set.
type TopicResponse struct {
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
	URL      string `json:"url,omitempty"`
	Content  string `json:"content,omitempty"`

	Error           string   `json:"error,omitempty"`
	Suggestion      string   `json:"suggestion,omitempty"`
	AvailableTopics []string `json:"availableTopics,omitempty"`
}

// Found reports whether the lookup matched a topic.
func (r TopicResponse) Found() bool {
	return r.Error == ""
}

// MarshalJSON encodes either the matched topic or the miss description.
func (r TopicResponse) MarshalJSON() ([]byte, error) {
	if r.Found() {
		return json.Marshal(struct {
			Title    string `json:"title"`
			Category string `json:"category"`
			URL      string `json:"url,omitempty"`
			Content  string `json:"content"`
		}{r.Title, r.Category, r.URL, r.Content})
	}
	topics := r.AvailableTopics
	if topics == nil {
		topics = []string{}
	}
	return json.Marshal(struct {
		Error           string   `json:"error"`
		Suggestion      string   `json:"suggestion"`
		AvailableTopics []string `json:"availableTopics"`
	}{r.Error, r.Suggestion, topics})
}

// CategoryListing is the payload of a category listing.
type CategoryListing struct {
	TotalCategories int             `json:"totalCategories"`
	TotalTopics     int             `json:"totalTopics"`
	Categories      []CategoryStats `json:"categories"`
}

// CategoryStats summarises one category.
type CategoryStats struct {
	Name       string   `json:"name"`
	TopicCount int      `json:"topicCount"`
	Topics     []string `json:"topics"`
}

// Overview is the payload of an overview request.
type Overview struct {
	Framework                string         `json:"framework"`
	Description              string         `json:"description"`
	Maintainer               string         `json:"maintainer"`
	KeyFeatures              []string       `json:"keyFeatures"`
	GettingStarted           GettingStarted `json:"gettingStarted"`
	Overview                 string         `json:"overview"`
	TotalDocumentationTopics int            `json:"totalDocumentationTopics"`
	Categories               []string       `json:"categories"`
}

// ExamplesResponse is the payload of an example search.
type ExamplesResponse struct {
	Concept            string         `json:"concept"`
	CodeExamples       []string       `json:"codeExamples"`
	RelatedTopics      []RelatedTopic `json:"relatedTopics"`
	TotalExamplesFound int            `json:"totalExamplesFound"`
}

// RelatedTopic references a topic without its content.
type RelatedTopic struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	URL      string `json:"url,omitempty"`
}
