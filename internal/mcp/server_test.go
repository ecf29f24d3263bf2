// ABOUTME: Tests for the MCP tool, resource and prompt handlers.
// ABOUTME: Drives handlers directly against a temp-directory repository.

package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/ImFeH2/sylvo/internal/app"
	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/ImFeH2/sylvo/internal/store"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	repo, err := store.Open(t.TempDir(), store.DefaultName, store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	return NewServer(app.New(repo), "test")
}

type handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error)

func call(t *testing.T, h handler, args string) *mcp.CallToolResult {
	t.Helper()
	res, err := h(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)},
	})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func decode[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, text(t, res))
	var v T
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &v))
	return v
}

func TestToolsCRUD(t *testing.T) {
	s := newTestServer(t)

	added := decode[models.Card](t, call(t, s.handleAddCard,
		`{"title":"Capital of France","tags":["geo","geo","eu"],"content":"Paris"}`))
	assert.Equal(t, "Capital of France", added.Title)
	assert.Equal(t, []string{"eu", "geo"}, added.Tags)
	id := added.ID.String()

	got := decode[*models.Card](t, call(t, s.handleGetCard, `{"id":"`+id+`"}`))
	require.NotNil(t, got)
	assert.Equal(t, added, *got)

	assert.True(t, decode[bool](t, call(t, s.handleRenameCard, `{"id":"`+id+`","title":"France"}`)))
	assert.True(t, decode[bool](t, call(t, s.handleRetagCard, `{"id":"`+id+`","tags":["capitals"]}`)))
	assert.True(t, decode[bool](t, call(t, s.handleRecontentCard, `{"id":"`+id+`","content":"Paris, on the Seine"}`)))

	list := decode[[]models.Card](t, call(t, s.handleListCards, `{}`))
	require.Len(t, list, 1)
	assert.Equal(t, "France", list[0].Title)
	assert.Equal(t, []string{"capitals"}, list[0].Tags)
	assert.Equal(t, "Paris, on the Seine", list[0].Content)

	assert.True(t, decode[bool](t, call(t, s.handleDeleteCard, `{"id":"`+id+`"}`)))
	assert.False(t, decode[bool](t, call(t, s.handleDeleteCard, `{"id":"`+id+`"}`)))

	missing := decode[*models.Card](t, call(t, s.handleGetCard, `{"id":"`+id+`"}`))
	assert.Nil(t, missing)
}

func TestToolsMissingCard(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New().String()

	assert.False(t, decode[bool](t, call(t, s.handleRenameCard, `{"id":"`+id+`","title":"t"}`)))
	assert.False(t, decode[bool](t, call(t, s.handleRetagCard, `{"id":"`+id+`","tags":[]}`)))
	assert.False(t, decode[bool](t, call(t, s.handleRecontentCard, `{"id":"`+id+`","content":"c"}`)))
}

func TestToolsInvalidID(t *testing.T) {
	s := newTestServer(t)

	for name, h := range map[string]handler{
		"get":       s.handleGetCard,
		"delete":    s.handleDeleteCard,
		"rename":    s.handleRenameCard,
		"retag":     s.handleRetagCard,
		"recontent": s.handleRecontentCard,
	} {
		res := call(t, h, `{"id":"not-a-uuid"}`)
		assert.True(t, res.IsError, name)
		assert.Contains(t, text(t, res), "invalid card id", name)
	}
}

func TestToolsMalformedArguments(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleAddCard(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(`{"title":`)},
	})
	assert.Error(t, err)
}

func TestReadResource(t *testing.T) {
	s := newTestServer(t)
	card, err := s.state.AddCard("Title", []string{"a", "b"}, "body text")
	require.NoError(t, err)

	uri := cardURIPrefix + card.ID.String()[:8]
	res, err := s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, uri, res.Contents[0].URI)
	assert.Equal(t, "# Title\n\n**Tags:** a, b\n\nbody text", res.Contents[0].Text)

	_, err = s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "other://card/abc"},
	})
	assert.Error(t, err)

	_, err = s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: cardURIPrefix + uuid.New().String()},
	})
	assert.ErrorIs(t, err, app.ErrCardNotFound)
}

func TestPrompts(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.getCreateFlashcardsPrompt(ctx, &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Arguments: map[string]string{"topic": "go"}},
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0].Content.(*mcp.TextContent).Text, "Create 5 flashcards about: go")

	_, err = s.getCreateFlashcardsPrompt(ctx, &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Arguments: map[string]string{}},
	})
	assert.Error(t, err)

	_, err = s.getReviewCardPrompt(ctx, &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Arguments: map[string]string{}},
	})
	assert.Error(t, err)

	res, err = s.getOrganizeCardsPrompt(ctx, &mcp.GetPromptRequest{Params: &mcp.GetPromptParams{}})
	require.NoError(t, err)
	assert.Contains(t, res.Messages[0].Content.(*mcp.TextContent).Text, "list_cards")
}
