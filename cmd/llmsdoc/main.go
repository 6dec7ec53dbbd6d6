package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/llmsdoc"
	"github.com/fwojciec/llmsdoc/fs"
	docshttp "github.com/fwojciec/llmsdoc/http"
	"github.com/fwojciec/llmsdoc/inmem"
	docsprom "github.com/fwojciec/llmsdoc/prometheus"
	docslog "github.com/fwojciec/llmsdoc/slog"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Version is reported to MCP clients and by --version.
var Version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher loads the documentation sources. Defaults to a SourceFetcher
	// reading local files and http(s) URLs.
	Fetcher llmsdoc.Fetcher

	// Resolver locates the config file and default sources.
	Resolver *Resolver

	// Registry collects server metrics.
	Registry *prometheus.Registry

	// Metrics are registered with Registry once, so Run can be called
	// repeatedly.
	Metrics *docsprom.Metrics
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	return &Main{
		Resolver: NewResolver(),
		Registry: reg,
		Metrics:  docsprom.NewMetrics(reg),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Version: Version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmsdoc"),
		kong.Description("Serve llms.txt documentation to AI assistants over MCP."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'llmsdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if cmd == "version" {
		return kongCtx.Run(deps)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := m.Resolver.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set LLMSDOC_CONFIG to use a different config file\n")
		return err
	}
	deps.Framework = cfg.FrameworkOrDefault()
	src := m.Resolver.Sources(cfg, cli.Outline, cli.Detail)

	if m.Fetcher == nil {
		m.Fetcher = NewSourceFetcher(fs.NewFetcher(""), docshttp.NewFetcher())
	}
	defer m.Close()

	deps.Registry = m.Registry
	deps.Metrics = m.Metrics

	fetcher := docslog.NewLoggingFetcher(m.Fetcher, deps.Logger)
	lib, err := llmsdoc.LoadLibrary(ctx, fetcher, src)
	if err != nil {
		// Keep serving with an empty library so clients get answers.
		deps.Logger.Warn("documentation unavailable", "outline", src.Outline, "detail", src.Detail, "err", err)
		if errors.Is(err, context.Canceled) {
			return err
		}
	}
	deps.Logger.Info("library loaded",
		"framework", deps.Framework.Name,
		"topics", lib.Len(),
		"categories", len(lib.Categories()),
		"code_blocks", len(lib.CodeBlocks()),
		"languages", codeLanguages(lib),
	)
	deps.Metrics.ObserveLibrary(lib)

	var svc llmsdoc.DocsService = inmem.NewDocsService(lib, deps.Framework)
	svc = docsprom.NewDocsService(svc, deps.Metrics)
	svc = docslog.NewLoggingDocsService(svc, deps.Logger)
	deps.Docs = svc

	return kongCtx.Run(deps)
}

// codeLanguages returns the distinct fence languages in lib, sorted.
func codeLanguages(lib *llmsdoc.Library) string {
	seen := make(map[string]bool)
	for _, b := range lib.CodeBlocks() {
		if b.Language != "" {
			seen[b.Language] = true
		}
	}
	langs := make([]string, 0, len(seen))
	for l := range seen {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return strings.Join(langs, ",")
}
