package llmsdoc

import (
	"context"
	"fmt"
)

// Operation identifies one of the queries a DocsService answers.
type Operation int

// The operations, in the order they are advertised to clients.
const (
	OpSearch Operation = iota + 1
	OpGetTopic
	OpListCategories
	OpGetOverview
	OpFindExamples
)

// Operations returns every operation in advertising order.
func Operations() []Operation {
	return []Operation{OpSearch, OpGetTopic, OpListCategories, OpGetOverview, OpFindExamples}
}

// String returns the canonical operation name.
func (op Operation) String() string {
	switch op {
	case OpSearch:
		return "search"
	case OpGetTopic:
		return "get_topic"
	case OpListCategories:
		return "list_categories"
	case OpGetOverview:
		return "get_overview"
	case OpFindExamples:
		return "find_examples"
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// ToolName returns the name the operation is published under for the
// framework with the given slug, e.g. "search_angular_docs".
func (op Operation) ToolName(slug string) string {
	switch op {
	case OpSearch:
		return "search_" + slug + "_docs"
	case OpGetTopic:
		return "get_" + slug + "_topic"
	case OpListCategories:
		return "list_" + slug + "_categories"
	case OpGetOverview:
		return "get_" + slug + "_overview"
	case OpFindExamples:
		return "find_" + slug + "_examples"
	}
	return op.String()
}

// Description returns the tool description shown to agents.
func (op Operation) Description(framework string) string {
	switch op {
	case OpSearch:
		return "Search " + framework + " documentation for specific topics, concepts, or keywords"
	case OpGetTopic:
		return "Get detailed information about a specific " + framework + " topic"
	case OpListCategories:
		return "List all available " + framework + " documentation categories"
	case OpGetOverview:
		return "Get a comprehensive overview of " + framework + " framework and its features"
	case OpFindExamples:
		return "Find code examples and practical implementations for " + framework + " concepts"
	}
	return ""
}

// ParseOperation resolves a canonical operation name or a published tool
// name. Returns ENOTIMPLEMENTED for anything else.
func ParseOperation(name, slug string) (Operation, error) {
	for _, op := range Operations() {
		if name == op.String() || name == op.ToolName(slug) {
			return op, nil
		}
	}
	return 0, Errorf(ENOTIMPLEMENTED, "Unknown tool: %s", name)
}

// Arguments holds the union of all operation arguments as sent by a client.
type Arguments struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
	Topic    string `json:"topic,omitempty"`
	Concept  string `json:"concept,omitempty"`
}

// Call invokes the service method behind op.
func Call(ctx context.Context, svc DocsService, op Operation, args Arguments) (any, error) {
	switch op {
	case OpSearch:
		return svc.Search(ctx, args.Query, SearchOptions{Category: args.Category, Limit: args.Limit})
	case OpGetTopic:
		return svc.FindTopic(ctx, args.Topic)
	case OpListCategories:
		return svc.ListCategories(ctx)
	case OpGetOverview:
		return svc.Overview(ctx)
	case OpFindExamples:
		return svc.FindExamples(ctx, args.Concept)
	}
	return nil, Errorf(ENOTIMPLEMENTED, "Unknown tool: %s", op)
}
