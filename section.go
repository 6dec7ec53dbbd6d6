package llmsdoc

import (
	"regexp"
	"strings"
)

// MaxDetailLength is the maximum number of characters of a detail section
// attached to a topic.
const MaxDetailLength = 1000

// sectionBoundaryRe matches a level 1-3 markdown heading marker at the start
// of a line. The marker is consumed by the split, the heading text is kept.
var sectionBoundaryRe = regexp.MustCompile(`\n#{1,3}\s+`)

// SplitSections splits a detail document into sections at every level 1-3
// heading. Text before the first heading forms the first section.
func SplitSections(detail string) []string {
	return sectionBoundaryRe.Split(detail, -1)
}

// LookupDetail returns the first section that mentions the topic title
// (case-insensitive) or contains its URL, truncated to MaxDetailLength.
// Returns an empty string if no section matches.
//
// Every topic scans all sections in order, so the cost is
// O(topics x sections). Both documents are small and loaded once.
func LookupDetail(sections []string, title, url string) string {
	lowerTitle := strings.ToLower(title)
	for _, section := range sections {
		if strings.Contains(strings.ToLower(section), lowerTitle) || strings.Contains(section, url) {
			return Truncate(section, MaxDetailLength)
		}
	}
	return ""
}
