// ABOUTME: MCP server implementation for murmure
// ABOUTME: Provides tools, resources, and prompts for AI agents to interact with the journal

package mcp

import (
	"github.com/harper/murmure/internal/search"
	"github.com/harper/murmure/internal/store"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with journal-specific context
type Server struct {
	mcpServer *server.MCPServer
	store     *store.Store
	searchCfg search.Config
}

// NewServer creates a new MCP server instance
func NewServer(st *store.Store, searchCfg search.Config) *Server {
	s := &Server{
		store:     st,
		searchCfg: searchCfg,
	}

	s.mcpServer = server.NewMCPServer(
		"murmure",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// registerTools is implemented in tools.go
// registerResources is implemented in resources.go
// registerPrompts is implemented in prompts.go
