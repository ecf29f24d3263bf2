// ABOUTME: MCP resources for exposing cards as readable resources.
// ABOUTME: Allows AI agents to read card content via the sylvo:// URI scheme.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const cardURIPrefix = "sylvo://card/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: cardURIPrefix + "{id}",
			Name:        "Card",
			Description: "Access individual cards by ID or unique ID prefix",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	ref, ok := strings.CutPrefix(req.Params.URI, cardURIPrefix)
	if !ok || ref == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	card, err := s.state.Lookup(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     renderCard(card),
			},
		},
	}, nil
}

func renderCard(card models.Card) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", card.Title)
	if len(card.Tags) > 0 {
		fmt.Fprintf(&sb, "**Tags:** %s\n\n", strings.Join(card.Tags, ", "))
	}
	sb.WriteString(card.Content)
	return sb.String()
}
