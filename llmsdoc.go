// Package llmsdoc provides a documentation server for llms.txt style sources.
// It parses a structured outline (llms.txt) into topics, cross-references a
// longer detail document (llms-full.txt) for topic content, and answers
// keyword search, topic lookup, category listing and code example queries
// exposed as MCP tools.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., inmem/, mcp/, http/, prometheus/).
package llmsdoc
