// ABOUTME: MCP tools for card CRUD operations.
// ABOUTME: Each tool maps one command of the app state onto the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_cards
	s.server.AddTool(&mcp.Tool{
		Name:        "list_cards",
		Description: "List every card, most recently updated first",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.handleListCards)

	// get_card
	s.server.AddTool(&mcp.Tool{
		Name:        "get_card",
		Description: "Get a card by ID; returns null if it does not exist",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Card ID (canonical UUID)"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetCard)

	// add_card
	s.server.AddTool(&mcp.Tool{
		Name:        "add_card",
		Description: "Create a new card with title, tags and content",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Card title"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Tags; duplicates are collapsed"},
				"content": {"type": "string", "description": "Card content (markdown)"}
			},
			"required": ["title"]
		}`),
	}, s.handleAddCard)

	// delete_card
	s.server.AddTool(&mcp.Tool{
		Name:        "delete_card",
		Description: "Delete a card; returns whether it existed",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Card ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteCard)

	// rename_card
	s.server.AddTool(&mcp.Tool{
		Name:        "rename_card",
		Description: "Replace a card's title; returns whether the card was found",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Card ID"},
				"title": {"type": "string", "description": "New title"}
			},
			"required": ["id", "title"]
		}`),
	}, s.handleRenameCard)

	// retag_card
	s.server.AddTool(&mcp.Tool{
		Name:        "retag_card",
		Description: "Replace a card's tags; returns whether the card was found",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Card ID"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "New tags"}
			},
			"required": ["id", "tags"]
		}`),
	}, s.handleRetagCard)

	// recontent_card
	s.server.AddTool(&mcp.Tool{
		Name:        "recontent_card",
		Description: "Replace a card's content; returns whether the card was found",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Card ID"},
				"content": {"type": "string", "description": "New content"}
			},
			"required": ["id", "content"]
		}`),
	}, s.handleRecontentCard)
}

// Tool handlers.
func (s *Server) handleListCards(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.state.ListCards())
}

func (s *Server) handleGetCard(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	card, ok, err := s.state.GetCard(params.ID)
	if err != nil {
		return errorResult("failed to get card: %v", err), nil
	}
	if !ok {
		return jsonResult(nil)
	}
	return jsonResult(card)
}

func (s *Server) handleAddCard(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title   string   `json:"title"`
		Tags    []string `json:"tags"`
		Content string   `json:"content"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	card, err := s.state.AddCard(params.Title, params.Tags, params.Content)
	if err != nil {
		return errorResult("failed to create card: %v", err), nil
	}
	return jsonResult(card)
}

func (s *Server) handleDeleteCard(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	ok, err := s.state.DeleteCard(params.ID)
	if err != nil {
		return errorResult("failed to delete card: %v", err), nil
	}
	return jsonResult(ok)
}

func (s *Server) handleRenameCard(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	ok, err := s.state.RenameCard(params.ID, params.Title)
	if err != nil {
		return errorResult("failed to rename card: %v", err), nil
	}
	return jsonResult(ok)
}

func (s *Server) handleRetagCard(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID   string   `json:"id"`
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	ok, err := s.state.RetagCard(params.ID, params.Tags)
	if err != nil {
		return errorResult("failed to retag card: %v", err), nil
	}
	return jsonResult(ok)
}

func (s *Server) handleRecontentCard(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID      string `json:"id"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	ok, err := s.state.RecontentCard(params.ID, params.Content)
	if err != nil {
		return errorResult("failed to update card content: %v", err), nil
	}
	return jsonResult(ok)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}
