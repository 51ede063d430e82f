// Package agent exposes read-only exhibit tools over MCP so AI agents can
// browse the CMS content through the same backend client the dashboard
// uses.
package agent

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/openexhibits/exhibits-admin/internal/api"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes exhibit browsing tools.
type Server struct {
	client *api.Client
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server backed by an authenticated API client.
func NewServer(client *api.Client) *Server {
	s := &Server{client: client}

	s.mcp = server.NewMCPServer(
		"exhibits-admin",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listExhibitsTool, s.handleListExhibits)
	s.mcp.AddTool(getExhibitTool, s.handleGetExhibit)
	s.mcp.AddTool(listItemsTool, s.handleListItems)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
