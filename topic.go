package llmsdoc

import (
	"regexp"
	"slices"
	"strings"
)

// Topic represents a single documented subject listed in the outline.
type Topic struct {
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// topicLinkRe matches an outline list item of the form "- [Title](URL)".
var topicLinkRe = regexp.MustCompile(`^- \[([^\]]+)\]\(([^)]+)\)`)

// categoryPrefix marks a level-2 outline heading.
const categoryPrefix = "## "

// titlePrefix marks the level-1 title line of the outline.
const titlePrefix = "# "

// Library is the parsed documentation corpus together with the raw
// documents it was built from. A Library is immutable after construction
// and safe to share between goroutines.
type Library struct {
	topics     []Topic
	outline    string
	detail     string
	codeBlocks []CodeBlock
}

// NewLibrary returns a Library over the given topics. The topics slice is
// copied.
func NewLibrary(topics []Topic, outline, detail string) *Library {
	return &Library{
		topics:     slices.Clone(topics),
		outline:    outline,
		detail:     detail,
		codeBlocks: ExtractCodeBlocks(detail),
	}
}

// ParseLibrary parses the outline into topics, resolving each topic's
// content from the detail document.
func ParseLibrary(outline, detail string) *Library {
	return NewLibrary(ParseOutline(outline, detail), outline, detail)
}

// ParseOutline converts an llms.txt outline into topics in document order.
//
// Level-2 headings set the category for the topics that follow. Link list
// items become topics. Blank lines, the title line and any other prose are
// skipped. Topic content is the first matching detail section, or
// "{category}: {title}" when the detail document has nothing on it.
func ParseOutline(outline, detail string) []Topic {
	sections := SplitSections(detail)

	topics := []Topic{}
	var category string
	for _, line := range strings.Split(outline, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, titlePrefix) {
			continue
		}

		if strings.HasPrefix(line, categoryPrefix) {
			category = strings.Replace(line, categoryPrefix, "", 1)
			continue
		}

		match := topicLinkRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		title, url := match[1], match[2]

		content := LookupDetail(sections, title, url)
		if content == "" {
			content = FallbackContent(category, title)
		}

		topics = append(topics, Topic{
			Title:    title,
			URL:      url,
			Content:  content,
			Category: category,
		})
	}
	return topics
}

// FallbackContent is the content used for a topic with no detail section.
func FallbackContent(category, title string) string {
	return category + ": " + title
}

// Topics returns a copy of the library's topics in outline order.
func (l *Library) Topics() []Topic {
	return slices.Clone(l.topics)
}

// Len returns the number of topics.
func (l *Library) Len() int {
	return len(l.topics)
}

// Outline returns the raw outline document.
func (l *Library) Outline() string {
	return l.outline
}

// Detail returns the raw detail document.
func (l *Library) Detail() string {
	return l.detail
}

// CodeBlocks returns the completed fenced code blocks of the detail document.
func (l *Library) CodeBlocks() []CodeBlock {
	return slices.Clone(l.codeBlocks)
}

// Categories returns the distinct topic categories in first-seen order.
func (l *Library) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, t := range l.topics {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		categories = append(categories, t.Category)
	}
	return categories
}
