// ABOUTME: MCP server exposing the card repository to AI agents.
// ABOUTME: Provides tools, resources, and prompts over the shared app state.

package mcp

import (
	"context"

	"github.com/ImFeH2/sylvo/internal/app"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server *mcp.Server
	state  *app.State
}

func NewServer(state *app.State, version string) *Server {
	s := &Server{state: state}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "sylvo",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
