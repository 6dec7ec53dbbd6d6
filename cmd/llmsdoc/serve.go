package main

import (
	"context"
	"errors"
	"net/http"

	docshttp "github.com/fwojciec/llmsdoc/http"
	docsmcp "github.com/fwojciec/llmsdoc/mcp"
	docsprom "github.com/fwojciec/llmsdoc/prometheus"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := docsmcp.NewServer(deps.Docs, deps.Framework,
		docsmcp.WithVersion(deps.Version),
		docsmcp.WithLogger(deps.Logger),
	)

	if c.HTTP == "" {
		deps.Logger.Info("serving on stdio", "server", docsmcp.ServerName(deps.Framework))
		err := srv.Run(deps.Ctx, &mcp.StdioTransport{})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return c.NewHTTPServer(deps, srv).ListenAndServe(deps.Ctx, c.HTTP)
}

// NewHTTPServer wraps srv in the HTTP surface configured by the flags.
func (c *ServeCmd) NewHTTPServer(deps *Dependencies, srv *mcp.Server) *docshttp.Server {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return srv
	}, nil)

	opts := []docshttp.ServerOption{docshttp.WithLogger(deps.Logger)}
	if c.RateLimit > 0 {
		opts = append(opts, docshttp.WithRateLimit(c.RateLimit, c.Burst))
	}
	if deps.Metrics != nil {
		opts = append(opts,
			docshttp.WithMiddleware(deps.Metrics.Middleware),
			docshttp.WithMetricsHandler(docsprom.Handler(deps.Registry)),
		)
	}
	return docshttp.NewServer(handler, opts...)
}
