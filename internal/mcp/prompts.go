// ABOUTME: MCP prompt definitions for moodjournal
// ABOUTME: Provides static context to AI assistants about journal capabilities
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const gettingStarted = `Moodjournal is a private journal where each entry has free text, a self-reported mood from 1 to 10 and a sentiment score from -1 to 1 computed from the text.

When to use moodjournal:
- The user wants to write down how their day went or how they feel
- The user asks how their mood has been trending
- The user asks about a past entry ("what did I write last Tuesday?")

Reading the data:
- "Masking?" marks a high mood (7+) written with negative text
- "Over-Critical" marks a low mood (4 or less) written with positive text
- The stats resource gives averages; the anomalies resource lists flagged entries

Be gentle: these are personal notes. Never delete or rewrite an entry unless asked.`

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "moodjournal-getting-started",
		Description: "Introduction to moodjournal and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		result := &mcp.GetPromptResult{
			Description: "Getting started with moodjournal",
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: gettingStarted},
				},
			},
		}

		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
