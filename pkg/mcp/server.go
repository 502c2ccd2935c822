package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/homectl/homeyctl/pkg/homey"
)

// Server wraps the MCP server with the Homey tool and prompt surface.
type Server struct {
	mcpServer *server.MCPServer
	client    homey.Client
}

// NewServer creates a new MCP server bound to the given platform client.
func NewServer(client homey.Client) *Server {
	s := &Server{
		client: client,
	}

	s.mcpServer = server.NewMCPServer(
		"homeyctl",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server using stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
