package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/llmsdoc"
	docsprom "github.com/fwojciec/llmsdoc/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Docs      llmsdoc.DocsService
	Framework llmsdoc.Framework
	Metrics   *docsprom.Metrics
	Registry  *prometheus.Registry
	Version   string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Outline string `env:"LLMSDOC_OUTLINE" help:"Outline document (llms.txt), a path or URL"`
	Detail  string `env:"LLMSDOC_DETAIL" help:"Detail document (llms-full.txt), a path or URL"`
	Config  string `env:"LLMSDOC_CONFIG" help:"Config file (default: searched in XDG config dirs)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Serve      ServeCmd      `cmd:"" help:"Run the MCP server (stdio by default)"`
	Search     SearchCmd     `cmd:"" help:"Search documentation topics"`
	Topic      TopicCmd      `cmd:"" help:"Show a documentation topic"`
	Categories CategoriesCmd `cmd:"" help:"List documentation categories"`
	Overview   OverviewCmd   `cmd:"" help:"Show the framework overview"`
	Examples   ExamplesCmd   `cmd:"" help:"Find code examples for a concept"`
	Call       CallCmd       `cmd:"" help:"Invoke a tool by name with JSON arguments"`
	Version    VersionCmd    `cmd:"" help:"Print the version"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP      string  `name:"http" placeholder:"ADDR" help:"Serve streamable HTTP on ADDR (e.g. :8080) instead of stdio"`
	RateLimit float64 `default:"20" help:"Requests per second allowed on /mcp"`
	Burst     int     `default:"40" help:"Request burst allowed on /mcp"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search query"`
	Category string `short:"c" help:"Only search categories containing this text"`
	Limit    int    `short:"n" default:"5" help:"Maximum number of results"`
	Format   string `short:"f" enum:"markdown,json" default:"markdown" help:"Output format (markdown, json)"`
}

// TopicCmd is the "topic" subcommand.
type TopicCmd struct {
	Name   string `arg:"" help:"Topic name or part of it"`
	Format string `short:"f" enum:"markdown,json" default:"markdown" help:"Output format (markdown, json)"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct {
	Format string `short:"f" enum:"markdown,json" default:"markdown" help:"Output format (markdown, json)"`
}

// OverviewCmd is the "overview" subcommand.
type OverviewCmd struct {
	Format string `short:"f" enum:"markdown,json" default:"markdown" help:"Output format (markdown, json)"`
}

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct {
	Concept string `arg:"" help:"Concept to find examples for"`
	Format  string `short:"f" enum:"markdown,json" default:"markdown" help:"Output format (markdown, json)"`
}

// CallCmd is the "call" subcommand.
type CallCmd struct {
	Tool string `arg:"" help:"Tool or operation name (e.g. search_angular_docs, get_topic)"`
	Args string `arg:"" optional:"" default:"{}" help:"JSON object of tool arguments"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
