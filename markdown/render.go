// Package markdown renders documentation payloads as Markdown for
// terminal and chat output.
package markdown

import (
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/llmsdoc"
	"github.com/nao1215/markdown"
)

// Render writes payload to w as Markdown. payload must be one of the
// response types returned by llmsdoc.DocsService.
func Render(w io.Writer, payload any) error {
	md := markdown.NewMarkdown(w)

	switch v := payload.(type) {
	case *llmsdoc.SearchResponse:
		writeSearch(md, v)
	case *llmsdoc.TopicResponse:
		writeTopic(md, v)
	case *llmsdoc.CategoryListing:
		writeCategories(md, v)
	case *llmsdoc.Overview:
		writeOverview(md, v)
	case *llmsdoc.ExamplesResponse:
		writeExamples(md, v)
	default:
		return llmsdoc.Errorf(llmsdoc.EINTERNAL, "cannot render %T as markdown", payload)
	}

	return md.Build()
}

func writeSearch(md *markdown.Markdown, resp *llmsdoc.SearchResponse) {
	md.H1("Search: " + resp.Query)
	md.PlainText("")
	md.PlainTextf("%d result(s) in category %s.", resp.TotalResults, resp.Category)
	md.PlainText("")

	if len(resp.Results) == 0 {
		md.Note("No matching topics. Try broader terms or list the categories.")
		return
	}

	for _, r := range resp.Results {
		md.H2(r.Title)
		md.PlainText("")
		md.PlainText("Relevance: " + strconv.Itoa(r.RelevanceScore))
		if r.URL != "" {
			md.PlainText("Source: " + link(r.URL, r.URL))
		}
		md.PlainText("")
		md.PlainText(r.Content)
		md.PlainText("")
	}
}

func writeTopic(md *markdown.Markdown, resp *llmsdoc.TopicResponse) {
	if !resp.Found() {
		md.Warning(resp.Error)
		md.PlainText("")
		md.PlainText(resp.Suggestion)
		md.PlainText("")
		if len(resp.AvailableTopics) > 0 {
			md.H2("Available topics")
			md.PlainText("")
			md.BulletList(resp.AvailableTopics...)
		}
		return
	}

	md.H1(resp.Title)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Category", resp.Category},
			{"Source", resp.URL},
		},
	})
	md.PlainText("")
	md.PlainText(resp.Content)
}

func writeCategories(md *markdown.Markdown, listing *llmsdoc.CategoryListing) {
	md.H1("Documentation categories")
	md.PlainText("")
	md.PlainTextf("%d categories, %d topics.", listing.TotalCategories, listing.TotalTopics)
	md.PlainText("")

	rows := make([][]string, 0, len(listing.Categories))
	for _, c := range listing.Categories {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.TopicCount), strings.Join(c.Topics, ", ")})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Topics", "Examples"},
		Rows:   rows,
	})
}

func writeOverview(md *markdown.Markdown, o *llmsdoc.Overview) {
	md.H1(o.Framework)
	md.PlainText("")
	md.PlainText(o.Description)
	md.PlainText("")
	md.PlainText("Maintained by " + o.Maintainer + ".")
	md.PlainText("")

	if len(o.KeyFeatures) > 0 {
		md.H2("Key features")
		md.PlainText("")
		md.BulletList(o.KeyFeatures...)
		md.PlainText("")
	}

	gs := o.GettingStarted
	md.H2("Getting started")
	md.PlainText("")
	if len(gs.Prerequisites) > 0 {
		md.PlainText("Prerequisites: " + strings.Join(gs.Prerequisites, ", "))
		md.PlainText("")
	}
	var steps []string
	for _, cmd := range []string{gs.Installation, gs.CreateProject, gs.RunProject} {
		if cmd != "" {
			steps = append(steps, cmd)
		}
	}
	if len(steps) > 0 {
		md.CodeBlocks(markdown.SyntaxHighlight("sh"), strings.Join(steps, "\n"))
		md.PlainText("")
	}

	md.H2("Documentation")
	md.PlainText("")
	md.PlainTextf("%d topics across %d categories.", o.TotalDocumentationTopics, len(o.Categories))
	md.PlainText("")
	if len(o.Categories) > 0 {
		md.BulletList(o.Categories...)
		md.PlainText("")
	}
	if o.Overview != "" {
		md.H2("From the documentation")
		md.PlainText("")
		md.PlainText(o.Overview)
	}
}

func writeExamples(md *markdown.Markdown, resp *llmsdoc.ExamplesResponse) {
	md.H1("Examples: " + resp.Concept)
	md.PlainText("")
	md.PlainTextf("Showing %d of %d example(s).", len(resp.CodeExamples), resp.TotalExamplesFound)
	md.PlainText("")

	for _, code := range resp.CodeExamples {
		md.CodeBlocks(markdown.SyntaxHighlight(""), code)
		md.PlainText("")
	}

	if len(resp.RelatedTopics) > 0 {
		md.H2("Related topics")
		md.PlainText("")
		items := make([]string, 0, len(resp.RelatedTopics))
		for _, t := range resp.RelatedTopics {
			item := t.Title
			if t.URL != "" {
				item = link(t.Title, t.URL)
			}
			if t.Category != "" {
				item += " (" + t.Category + ")"
			}
			items = append(items, item)
		}
		md.BulletList(items...)
	}
}

func link(text, url string) string {
	return "[" + text + "](" + url + ")"
}
