// Package slog provides logging decorators for llmsdoc services.
package slog
