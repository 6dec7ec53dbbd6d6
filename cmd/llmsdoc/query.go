package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/llmsdoc"
	"github.com/fwojciec/llmsdoc/markdown"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	resp, err := deps.Docs.Search(deps.Ctx, c.Query, llmsdoc.SearchOptions{Category: c.Category, Limit: llmsdoc.Ptr(c.Limit)})
	return write(deps, c.Format, resp, err)
}

// Run executes the topic command.
func (c *TopicCmd) Run(deps *Dependencies) error {
	resp, err := deps.Docs.FindTopic(deps.Ctx, c.Name)
	return write(deps, c.Format, resp, err)
}

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	resp, err := deps.Docs.ListCategories(deps.Ctx)
	return write(deps, c.Format, resp, err)
}

// Run executes the overview command.
func (c *OverviewCmd) Run(deps *Dependencies) error {
	resp, err := deps.Docs.Overview(deps.Ctx)
	return write(deps, c.Format, resp, err)
}

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	resp, err := deps.Docs.FindExamples(deps.Ctx, c.Concept)
	return write(deps, c.Format, resp, err)
}

// Run executes the call command. The output is the JSON payload an MCP
// client would receive.
func (c *CallCmd) Run(deps *Dependencies) error {
	op, err := llmsdoc.ParseOperation(c.Tool, deps.Framework.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
		return err
	}

	var args llmsdoc.Arguments
	if err := json.Unmarshal([]byte(c.Args), &args); err != nil {
		err = llmsdoc.Errorf(llmsdoc.EINVALID, "invalid arguments: %v", err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
		return err
	}

	payload, err := llmsdoc.Call(deps.Ctx, deps.Docs, op, args)
	return write(deps, "json", payload, err)
}

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "llmsdoc %s\n", deps.Version)
	return nil
}

// write prints payload in format, or err when the operation failed.
func write(deps *Dependencies, format string, payload any, err error) error {
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
		return err
	}

	if format == "json" {
		return writeJSON(deps.Stdout, payload)
	}
	return markdown.Render(deps.Stdout, payload)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
