// Package mcp provides an MCP (Model Context Protocol) server adapter
// for layerlint. It lets AI assistants run layering checks and browse
// recorded runs.
package mcp

import "errors"

// ErrMissingCheckService is returned when the check service is not provided.
var ErrMissingCheckService = errors.New("mcp: check service is required")
