// ABOUTME: MCP prompts for common flashcard workflows.
// ABOUTME: Provides pre-configured prompts for AI agent interactions.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "create-flashcards",
		Description: "Draft a set of question and answer cards about a topic",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topic",
				Description: "Subject the cards should cover",
				Required:    true,
			},
			{
				Name:        "count",
				Description: "How many cards to create (default 5)",
				Required:    false,
			},
		},
	}, s.getCreateFlashcardsPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "review-card",
		Description: "Quiz the user on an existing card",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "card_id",
				Description: "ID of the card to review",
				Required:    true,
			},
		},
	}, s.getReviewCardPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "organize-cards",
		Description: "Get suggestions for retitling and retagging cards",
	}, s.getOrganizeCardsPrompt)
}

func (s *Server) getCreateFlashcardsPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic, ok := req.Params.Arguments["topic"]
	if !ok || topic == "" {
		return nil, fmt.Errorf("topic argument is required")
	}
	count, ok := req.Params.Arguments["count"]
	if !ok || count == "" {
		count = "5"
	}

	template := fmt.Sprintf(`Create %s flashcards about: %s

For each card:
1. Use a short question as the title
2. Put the answer in the content, formatted as markdown
3. Tag the card with "%s" plus any narrower subtopics

Use the add_card tool once per card.`, count, topic, topic)

	return userPrompt(template), nil
}

func (s *Server) getReviewCardPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	cardID, ok := req.Params.Arguments["card_id"]
	if !ok || cardID == "" {
		return nil, fmt.Errorf("card_id argument is required")
	}

	template := fmt.Sprintf(`Review the card with ID: %s

1. Use the get_card tool to retrieve the card
2. Ask me the title as a question, without showing the content
3. Wait for my answer, then compare it with the content
4. If the content is unclear or wrong, offer a correction and apply it with recontent_card`, cardID)

	return userPrompt(template), nil
}

func (s *Server) getOrganizeCardsPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	template := `Help me organize my flashcards:

1. Use the list_cards tool to fetch every card
2. Group cards by topic and spot duplicates
3. Suggest consistent tags and apply them with retag_card
4. Suggest clearer titles where needed and apply them with rename_card`

	return userPrompt(template), nil
}

func userPrompt(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: text,
				},
			},
		},
	}
}
