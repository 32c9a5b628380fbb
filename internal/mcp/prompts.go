// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Provides workflow templates for journaling routines

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.registerDailyReviewPrompt()
	s.registerWeeklyReflectionPrompt()
}

func (s *Server) registerDailyReviewPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "daily-review",
			Description: "Review today's journal entry and help close out the day with a short reflection",
			Arguments:   []mcp.PromptArgument{},
		},
		s.handleDailyReview,
	)
}

func (s *Server) handleDailyReview(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	template := `# Daily Review

## Overview
Help the user close out their day by reviewing today's journal entry and prompting a short reflection. Keep the tone warm and unhurried; this is a private journal, not a productivity report.

## Workflow Steps

### Step 1: Read Today's Entry
Use the murmure://today resource to read what the user has written so far today. If the entry is empty, skip to Step 3 and invite them to start.

### Step 2: Reflect It Back
Summarize the day's entry in one or two sentences, in the user's own voice. Note recurring themes if the entry touches on something that has come up before (use search_entries to check).

### Step 3: Ask One Question
Offer a single gentle question to prompt more writing. Good examples:
- "What's one thing from today you want to remember?"
- "Is there anything still on your mind?"
- "What would make tomorrow feel lighter?"

### Step 4: Capture the Answer
When the user responds with something worth keeping, use write_entry with append=true to add it to today's entry. Never overwrite what they have already written.

## Tips
- Keep responses short; the user's words matter more than yours
- Never judge or analyze the content, only reflect it
- If the user mentions something from a past day, use search_entries to find it
`

	return &mcp.GetPromptResult{
		Description: "Daily review workflow for today's journal entry",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) registerWeeklyReflectionPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "weekly-reflection",
			Description: "Look back over recent journal entries and surface themes worth reflecting on",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "days",
					Description: "Number of days to look back (default: 7)",
					Required:    false,
				},
			},
		},
		s.handleWeeklyReflection,
	)
}

func (s *Server) handleWeeklyReflection(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	days := "7"
	if req.Params.Arguments != nil {
		if d, ok := req.Params.Arguments["days"]; ok && d != "" {
			days = d
		}
	}

	template := fmt.Sprintf(`# Weekly Reflection

## Overview
Look back over the last %s days of journal entries and surface patterns worth reflecting on. This is about noticing, not scoring: the goal is a short, honest picture of the week.

## Workflow Steps

### Step 1: Gather the Week
Use list_entries to get recent entries, then get_entry to read the ones from the last %s days. Check murmure://stats for overall writing activity.

### Step 2: Notice Themes
Look for things that appear more than once: people, worries, small joys, unfinished thoughts. Use search_entries to verify whether a theme extends further back than this week.

### Step 3: Summarize
Write a short reflection with three parts:
- **What filled the week:** 2-3 sentences on the dominant threads
- **What kept coming back:** recurring themes, named plainly
- **What went unsaid:** gaps worth a gentle question, if any

### Step 4: Offer to Save
Ask whether the user wants the reflection kept. If yes, use write_entry with append=true to add it to today's entry under a "## Weekly reflection" heading.

## Tips
- Quote the user's own phrases where possible
- Skip days with no entries without comment; silence is allowed
- Never treat low writing volume as a problem to fix
`, days, days)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Weekly reflection workflow over the last %s days of entries", days),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
