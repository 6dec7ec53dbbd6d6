package llmsdoc

import "strings"

// fence opens and closes a code block.
const fence = "```"

// CodeBlock is a completed fenced code block from the detail document.
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Code     string `json:"code"`

	body string
}

// Mentions reports whether the block's text contains s, ignoring case.
func (b CodeBlock) Mentions(s string) bool {
	return strings.Contains(strings.ToLower(b.body), strings.ToLower(s))
}

// ExtractCodeBlocks returns every completed fenced code block in document
// order. A line whose trimmed text starts with a fence toggles in or out of
// a block. A block left open at the end of the document is dropped.
func ExtractCodeBlocks(doc string) []CodeBlock {
	blocks := []CodeBlock{}

	var (
		inBlock  bool
		language string
		body     strings.Builder
	)
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, fence) {
			if inBlock {
				blocks = append(blocks, CodeBlock{
					Language: language,
					Code:     strings.TrimSpace(body.String()),
					body:     body.String(),
				})
				body.Reset()
				inBlock = false
			} else {
				language = fenceLanguage(trimmed)
				inBlock = true
			}
			continue
		}
		if inBlock {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	return blocks
}

// fenceLanguage returns the language named in an opening fence's info string.
func fenceLanguage(line string) string {
	fields := strings.Fields(strings.TrimPrefix(line, fence))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], "`{}")
}
