package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/llmsdoc"
	"github.com/fwojciec/llmsdoc/inmem"
	docsmcp "github.com/fwojciec/llmsdoc/mcp"
	"github.com/fwojciec/llmsdoc/mock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOutline = `# Angular

## Reactivity
- [Signals overview](https://angular.dev/guide/signals): Reactive values

## Components
- [Component anatomy](https://angular.dev/guide/components)
`

const testDetail = "# Signals overview\nSignals wrap a value.\n```ts\nconst count = signal(0);\n```\n"

// connect starts srv on an in-memory transport and returns a client session.
func connect(t *testing.T, srv *mcp.Server) *mcp.ClientSession {
	t.Helper()

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ss, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	return cs
}

func newLibraryServer(t *testing.T) *mcp.ClientSession {
	t.Helper()

	lib := llmsdoc.ParseLibrary(testOutline, testDetail)
	svc := inmem.NewDocsService(lib, llmsdoc.DefaultFramework())
	return connect(t, docsmcp.NewServer(svc, llmsdoc.DefaultFramework()))
}

func callText(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text, res.IsError
}

func TestServer_ListTools(t *testing.T) {
	t.Parallel()

	cs := newLibraryServer(t)

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make(map[string]string, len(res.Tools))
	for _, tool := range res.Tools {
		names[tool.Name] = tool.Description
	}
	assert.Equal(t, map[string]string{
		"search_angular_docs":     "Search Angular documentation for specific topics, concepts, or keywords",
		"get_angular_topic":       "Get detailed information about a specific Angular topic",
		"list_angular_categories": "List all available Angular documentation categories",
		"get_angular_overview":    "Get a comprehensive overview of Angular framework and its features",
		"find_angular_examples":   "Find code examples and practical implementations for Angular concepts",
	}, names)
}

func TestServer_CallTool(t *testing.T) {
	t.Parallel()

	t.Run("search returns JSON payload", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		text, isError := callText(t, cs, "search_angular_docs", map[string]any{"query": "signals", "limit": 3})

		require.False(t, isError)
		var resp llmsdoc.SearchResponse
		require.NoError(t, json.Unmarshal([]byte(text), &resp))
		assert.Equal(t, "signals", resp.Query)
		assert.Equal(t, "all", resp.Category)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, "Signals overview", resp.Results[0].Title)
		assert.GreaterOrEqual(t, resp.Results[0].RelevanceScore, 3)
	})

	t.Run("blank query is a protocol error", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "search_angular_docs",
			Arguments: map[string]any{"query": "  "},
		})

		require.Error(t, err)
		assert.Nil(t, res)
		assert.Contains(t, err.Error(), "Search query cannot be empty")
	})

	t.Run("blank topic and concept are protocol errors", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		_, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "get_angular_topic",
			Arguments: map[string]any{},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Topic name cannot be empty")

		_, err = cs.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "find_angular_examples",
			Arguments: map[string]any{"concept": ""},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Concept cannot be empty")
	})

	t.Run("zero limit returns no results", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		text, isError := callText(t, cs, "search_angular_docs", map[string]any{"query": "signals", "limit": 0})

		require.False(t, isError)
		var resp llmsdoc.SearchResponse
		require.NoError(t, json.Unmarshal([]byte(text), &resp))
		assert.Empty(t, resp.Results)
		assert.Equal(t, 1, resp.TotalResults)
	})

	t.Run("fractional limit is rounded down", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		text, isError := callText(t, cs, "search_angular_docs", map[string]any{"query": "signals component", "limit": 1.5})

		require.False(t, isError)
		var resp llmsdoc.SearchResponse
		require.NoError(t, json.Unmarshal([]byte(text), &resp))
		assert.Len(t, resp.Results, 1)
		assert.Equal(t, 2, resp.TotalResults)
	})

	t.Run("negative limit is a protocol error", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		_, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "search_angular_docs",
			Arguments: map[string]any{"query": "signals", "limit": -1},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Limit cannot be negative")
	})

	t.Run("topic hit and miss", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		text, isError := callText(t, cs, "get_angular_topic", map[string]any{"topic": "signal"})
		require.False(t, isError)
		assert.Contains(t, text, `"title": "Signals overview"`)
		assert.Contains(t, text, `"category": "Reactivity"`)

		text, isError = callText(t, cs, "get_angular_topic", map[string]any{"topic": "zoneless"})
		require.False(t, isError)
		assert.Contains(t, text, `"error": "Topic \"zoneless\" not found"`)
		assert.Contains(t, text, `"availableTopics"`)
	})

	t.Run("categories and overview take no arguments", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		text, isError := callText(t, cs, "list_angular_categories", map[string]any{})
		require.False(t, isError)
		var listing llmsdoc.CategoryListing
		require.NoError(t, json.Unmarshal([]byte(text), &listing))
		assert.Equal(t, 2, listing.TotalCategories)
		assert.Equal(t, "Reactivity", listing.Categories[0].Name)

		text, isError = callText(t, cs, "get_angular_overview", map[string]any{})
		require.False(t, isError)
		var overview llmsdoc.Overview
		require.NoError(t, json.Unmarshal([]byte(text), &overview))
		assert.Equal(t, "Angular", overview.Framework)
		assert.Equal(t, 2, overview.TotalDocumentationTopics)
	})

	t.Run("examples returns matching code", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		text, isError := callText(t, cs, "find_angular_examples", map[string]any{"concept": "signal"})

		require.False(t, isError)
		var resp llmsdoc.ExamplesResponse
		require.NoError(t, json.Unmarshal([]byte(text), &resp))
		assert.Equal(t, []string{"const count = signal(0);"}, resp.CodeExamples)
		assert.Equal(t, 1, resp.TotalExamplesFound)
	})

	t.Run("internal failures are reported without crashing", func(t *testing.T) {
		t.Parallel()

		svc := &mock.DocsService{
			OverviewFn: func(ctx context.Context) (*llmsdoc.Overview, error) {
				return nil, errors.New("boom")
			},
		}
		cs := connect(t, docsmcp.NewServer(svc, llmsdoc.DefaultFramework()))

		_, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: "get_angular_overview", Arguments: map[string]any{}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tool execution failed: Internal error")
		assert.NotContains(t, err.Error(), "boom")
	})

	t.Run("unknown tool is rejected", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		_, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: "get_vue_topic", Arguments: map[string]any{}})

		require.Error(t, err)
	})
}

func TestServer_Framework(t *testing.T) {
	t.Parallel()

	fw := llmsdoc.Framework{Name: "Vue", Slug: "vue"}
	svc := inmem.NewDocsService(llmsdoc.NewLibrary(nil, "", ""), fw)
	cs := connect(t, docsmcp.NewServer(svc, fw, docsmcp.WithVersion("2.0.0")))

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"search_vue_docs",
		"get_vue_topic",
		"list_vue_categories",
		"get_vue_overview",
		"find_vue_examples",
	}, names)
	assert.Equal(t, "vue-mcp-server", docsmcp.ServerName(fw))
}

func TestInputSchema(t *testing.T) {
	t.Parallel()

	t.Run("search limit is a number defaulting to five", func(t *testing.T) {
		t.Parallel()

		s := docsmcp.InputSchema(llmsdoc.OpSearch)

		assert.Equal(t, "object", s.Type)
		assert.Equal(t, []string{"query"}, s.Required)
		limit := s.Properties["limit"]
		require.NotNil(t, limit)
		assert.Equal(t, "number", limit.Type)
		assert.Empty(t, limit.Types)
		assert.JSONEq(t, "5", string(limit.Default))
	})

	t.Run("advertised over the wire", func(t *testing.T) {
		t.Parallel()

		cs := newLibraryServer(t)

		res, err := cs.ListTools(context.Background(), nil)
		require.NoError(t, err)
		for _, tool := range res.Tools {
			if tool.Name != "search_angular_docs" {
				continue
			}
			require.NotNil(t, tool.InputSchema)
			limit := tool.InputSchema.Properties["limit"]
			require.NotNil(t, limit)
			assert.Equal(t, "number", limit.Type)
			assert.JSONEq(t, "5", string(limit.Default))
			return
		}
		t.Fatal("search tool not listed")
	})
}

func TestDecodeArguments(t *testing.T) {
	t.Parallel()

	t.Run("missing limit stays unset", func(t *testing.T) {
		t.Parallel()

		args, err := docsmcp.DecodeArguments(llmsdoc.OpSearch, json.RawMessage(`{"query":"signals"}`))

		require.NoError(t, err)
		assert.Equal(t, llmsdoc.Arguments{Query: "signals"}, args)
	})

	t.Run("explicit zero limit is kept", func(t *testing.T) {
		t.Parallel()

		args, err := docsmcp.DecodeArguments(llmsdoc.OpSearch, json.RawMessage(`{"query":"signals","limit":0}`))

		require.NoError(t, err)
		require.NotNil(t, args.Limit)
		assert.Equal(t, 0, *args.Limit)
	})

	t.Run("fractional limit is rounded down", func(t *testing.T) {
		t.Parallel()

		args, err := docsmcp.DecodeArguments(llmsdoc.OpSearch, json.RawMessage(`{"query":"signals","limit":2.7}`))

		require.NoError(t, err)
		require.NotNil(t, args.Limit)
		assert.Equal(t, 2, *args.Limit)
	})

	t.Run("empty arguments decode to zero values", func(t *testing.T) {
		t.Parallel()

		args, err := docsmcp.DecodeArguments(llmsdoc.OpListCategories, nil)

		require.NoError(t, err)
		assert.Equal(t, llmsdoc.Arguments{}, args)
	})

	t.Run("malformed arguments are invalid", func(t *testing.T) {
		t.Parallel()

		_, err := docsmcp.DecodeArguments(llmsdoc.OpGetTopic, json.RawMessage(`{"topic":3}`))

		assert.Equal(t, llmsdoc.EINVALID, llmsdoc.ErrorCode(err))
	})
}

func TestCallError(t *testing.T) {
	t.Parallel()

	err := docsmcp.CallError(llmsdoc.Errorf(llmsdoc.EINVALID, "Concept cannot be empty"))
	assert.EqualError(t, err, "Concept cannot be empty")

	err = docsmcp.CallError(errors.New("disk on fire"))
	assert.EqualError(t, err, "Tool execution failed: Internal error")
}
