// Package mcp publishes an llmsdoc.DocsService as Model Context Protocol
// tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/fwojciec/llmsdoc"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultVersion is reported to clients when no version is configured.
const DefaultVersion = "1.0.0"

// SearchArgs are the arguments of the search tool.
type SearchArgs struct {
	Query    string   `json:"query" jsonschema:"Search query (e.g., \"components\", \"dependency injection\", \"routing\")"`
	Category string   `json:"category,omitempty" jsonschema:"Optional: Filter by category (Components, Templates, Directives, etc.)"`
	Limit    *float64 `json:"limit,omitempty" jsonschema:"Maximum number of results to return (default: 5)"`
}

// TopicArgs are the arguments of the topic tool.
type TopicArgs struct {
	Topic string `json:"topic" jsonschema:"Specific topic name (e.g., \"Component lifecycle\", \"Signals overview\")"`
}

// ExamplesArgs are the arguments of the examples tool.
type ExamplesArgs struct {
	Concept string `json:"concept" jsonschema:"Concept to find examples for (e.g., \"component\", \"service\", \"directive\")"`
}

// NoArgs is the argument type of tools that take no input.
type NoArgs struct{}

// Option configures NewServer.
type Option func(*options)

type options struct {
	version string
	logger  *slog.Logger
}

// WithVersion sets the server version reported during initialization.
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithLogger sets the logger for tool failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewServer returns an MCP server exposing one tool per llmsdoc operation
// for framework, backed by svc. Failed calls are answered with JSON-RPC
// errors carrying the error message.
func NewServer(svc llmsdoc.DocsService, framework llmsdoc.Framework, opts ...Option) *mcp.Server {
	o := options{version: DefaultVersion, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName(framework),
		Version: o.version,
	}, nil)

	h := &handlers{svc: svc, logger: o.logger}
	for _, op := range llmsdoc.Operations() {
		srv.AddTool(&mcp.Tool{
			Name:        op.ToolName(framework.Slug),
			Description: op.Description(framework.Name),
			InputSchema: InputSchema(op),
		}, h.handler(op))
	}
	return srv
}

// ServerName returns the implementation name announced for framework,
// e.g. "angular-mcp-server".
func ServerName(framework llmsdoc.Framework) string {
	return framework.Slug + "-mcp-server"
}

// InputSchema returns the JSON schema advertised for the arguments of op.
func InputSchema(op llmsdoc.Operation) *jsonschema.Schema {
	switch op {
	case llmsdoc.OpSearch:
		s := mustSchema[SearchArgs]()
		limit := s.Properties["limit"]
		limit.Types = nil
		limit.Type = "number"
		limit.Minimum = llmsdoc.Ptr(0.0)
		limit.Default = json.RawMessage(strconv.Itoa(llmsdoc.DefaultSearchLimit))
		return s
	case llmsdoc.OpGetTopic:
		return mustSchema[TopicArgs]()
	case llmsdoc.OpFindExamples:
		return mustSchema[ExamplesArgs]()
	default:
		return mustSchema[NoArgs]()
	}
}

func mustSchema[T any]() *jsonschema.Schema {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		panic(err)
	}
	return s
}

// DecodeArguments unmarshals the raw arguments of a call to op. Fractional
// limits are rounded down.
func DecodeArguments(op llmsdoc.Operation, raw json.RawMessage) (llmsdoc.Arguments, error) {
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}

	var args llmsdoc.Arguments
	var err error
	switch op {
	case llmsdoc.OpSearch:
		var in SearchArgs
		if err = json.Unmarshal(raw, &in); err == nil {
			args = llmsdoc.Arguments{Query: in.Query, Category: in.Category}
			if in.Limit != nil {
				args.Limit = llmsdoc.Ptr(int(math.Floor(*in.Limit)))
			}
		}
	case llmsdoc.OpGetTopic:
		var in TopicArgs
		if err = json.Unmarshal(raw, &in); err == nil {
			args.Topic = in.Topic
		}
	case llmsdoc.OpFindExamples:
		var in ExamplesArgs
		if err = json.Unmarshal(raw, &in); err == nil {
			args.Concept = in.Concept
		}
	default:
		var in map[string]any
		err = json.Unmarshal(raw, &in)
	}
	if err != nil {
		return llmsdoc.Arguments{}, llmsdoc.Errorf(llmsdoc.EINVALID, "Invalid arguments: %v", err)
	}
	return args, nil
}

type handlers struct {
	svc    llmsdoc.DocsService
	logger *slog.Logger
}

// handler runs op and packs its payload as indented JSON text.
func (h *handlers) handler(op llmsdoc.Operation) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := DecodeArguments(op, req.Params.Arguments)
		if err != nil {
			return nil, h.fail(op, err)
		}

		payload, err := llmsdoc.Call(ctx, h.svc, op, args)
		if err != nil {
			return nil, h.fail(op, err)
		}

		b, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, h.fail(op, err)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
		}, nil
	}
}

func (h *handlers) fail(op llmsdoc.Operation, err error) error {
	if llmsdoc.ErrorCode(err) == llmsdoc.EINTERNAL {
		h.logger.Error("tool execution failed", "operation", op.String(), "err", err)
	}
	return CallError(err)
}

// CallError returns the error reported to the client for a failed call.
// Its text is the application error message. Internal failures hide their
// cause.
func CallError(err error) error {
	msg := llmsdoc.ErrorMessage(err)
	if llmsdoc.ErrorCode(err) == llmsdoc.EINTERNAL {
		return fmt.Errorf("Tool execution failed: %s", msg)
	}
	return errors.New(msg)
}
