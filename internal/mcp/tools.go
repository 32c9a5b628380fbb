// ABOUTME: MCP tool definitions and handlers for journal entry operations
// ABOUTME: Provides tools for writing, listing, searching, and trash management

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harper/murmure/internal/models"
	"github.com/harper/murmure/internal/search"
	"github.com/mark3labs/mcp-go/mcp"
)

// Type definitions for input/output structures

type ListEntriesInput struct {
	Trash *bool `json:"trash,omitempty"`
	Limit *int  `json:"limit,omitempty"`
}

type EntryOutput struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Preview     string     `json:"preview"`
	WordCount   int        `json:"word_count"`
	InTrash     bool       `json:"in_trash"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DaysToPurge *int       `json:"days_to_purge,omitempty"`
}

type ListEntriesOutput struct {
	Entries []EntryOutput `json:"entries"`
	Count   int           `json:"count"`
}

type GetEntryInput struct {
	EntryID string `json:"entry_id"`
}

type GetEntryOutput struct {
	EntryOutput
	Content string `json:"content"`
}

type WriteEntryInput struct {
	EntryID *string `json:"entry_id,omitempty"`
	Content string  `json:"content"`
	Append  *bool   `json:"append,omitempty"`
}

type SearchEntriesInput struct {
	Query         string   `json:"query"`
	WholeWords    *bool    `json:"whole_words,omitempty"`
	CaseSensitive *bool    `json:"case_sensitive,omitempty"`
	MinScore      *float64 `json:"min_score,omitempty"`
}

type SearchResultOutput struct {
	EntryOutput
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matched_fields"`
	Snippet       string   `json:"snippet"`
}

type SearchEntriesOutput struct {
	Results      []SearchResultOutput `json:"results"`
	Count        int                  `json:"count"`
	AverageScore float64              `json:"average_score"`
	ValidQuery   bool                 `json:"valid_query"`
	Reason       string               `json:"reason,omitempty"`
}

type TrashEntryInput struct {
	EntryID string `json:"entry_id"`
}

type TrashEntryOutput struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	EntryID     string `json:"entry_id"`
	DaysToPurge int    `json:"days_to_purge,omitempty"`
}

type RestoreEntryInput struct {
	EntryID string `json:"entry_id"`
}

type EmptyTrashInput struct{}

type EmptyTrashOutput struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}

type JournalStatsInput struct{}

type JournalStatsOutput struct {
	TotalEntries  int        `json:"total_entries"`
	ActiveEntries int        `json:"active_entries"`
	TrashEntries  int        `json:"trash_entries"`
	TotalWords    int        `json:"total_words"`
	FirstEntryAt  *time.Time `json:"first_entry_at,omitempty"`
	LastEntryAt   *time.Time `json:"last_entry_at,omitempty"`
	RetentionDays int        `json:"retention_days"`
}

// Tool registration

func (s *Server) registerTools() {
	s.registerListEntriesTool()
	s.registerGetEntryTool()
	s.registerWriteEntryTool()
	s.registerSearchEntriesTool()
	s.registerTrashEntryTool()
	s.registerRestoreEntryTool()
	s.registerEmptyTrashTool()
	s.registerJournalStatsTool()
}

func (s *Server) registerListEntriesTool() {
	tool := mcp.Tool{
		Name:        "list_entries",
		Description: "List journal entries sorted newest first. Returns entry metadata (ID, date, word count, preview) without full content. By default lists active entries only; set trash=true to list trashed entries instead. Use get_entry to read an entry's full content.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"trash": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, lists entries in the trash instead of active entries. Default: false",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of entries to return. If omitted, returns all matching entries. Example: 20",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListEntries)
}

func (s *Server) registerGetEntryTool() {
	tool := mcp.Tool{
		Name:        "get_entry",
		Description: "Get the full details of a single journal entry including its markdown content. Supports both full entry IDs and unambiguous ID prefixes (at least 4 characters). Use list_entries or search_entries to find entry IDs.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "The entry ID or ID prefix. Example: '01HQ3K7F' (prefix) or the full 26-character ID",
				},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleGetEntry)
}

func (s *Server) registerWriteEntryTool() {
	tool := mcp.Tool{
		Name:        "write_entry",
		Description: "Write journal content. Without entry_id, writes to today's entry, creating it if needed. With entry_id, updates that entry. Set append=true to add to the end of the existing content instead of replacing it. Returns the saved entry.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional entry ID or prefix to update. If omitted, writes to today's entry. Example: '01HQ3K7F'",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "The markdown content to write. Example: 'Had a quiet morning. Finished the garden bed.'",
				},
				"append": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, appends to existing content separated by a blank line instead of replacing. Default: false",
				},
			},
			Required: []string{"content"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleWriteEntry)
}

func (s *Server) registerSearchEntriesTool() {
	tool := mcp.Tool{
		Name:        "search_entries",
		Description: "Search active journal entries with relevance scoring. Matching is accent- and case-insensitive by default and covers entry content, preview, and date label. Results are sorted by score (best first) and include a highlighted snippet with matches wrapped in ** markers. Queries need at least 2 characters.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The search query. Example: 'garden'",
				},
				"whole_words": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, matches whole words only; needs a query word of at least 3 characters. Default: false",
				},
				"case_sensitive": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, matches case exactly. Default: false",
				},
				"min_score": map[string]interface{}{
					"type":        "number",
					"description": "Minimum relevance score between 0 and 1. Default: 0.3",
				},
			},
			Required: []string{"query"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleSearchEntries)
}

func (s *Server) registerTrashEntryTool() {
	tool := mcp.Tool{
		Name:        "trash_entry",
		Description: "Move a journal entry to the trash (soft delete). Trashed entries stay recoverable with restore_entry until the retention window lapses, after which they are purged automatically. Returns the number of days until permanent deletion.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "The entry ID or prefix to trash. Example: '01HQ3K7F'",
				},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleTrashEntry)
}

func (s *Server) registerRestoreEntryTool() {
	tool := mcp.Tool{
		Name:        "restore_entry",
		Description: "Restore a trashed journal entry back to the active collection. Clears the deletion timestamp so the entry is no longer scheduled for purge. Use list_entries with trash=true to find trashed entry IDs.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "The entry ID or prefix to restore. Example: '01HQ3K7F'",
				},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleRestoreEntry)
}

func (s *Server) registerEmptyTrashTool() {
	tool := mcp.Tool{
		Name:        "empty_trash",
		Description: "Permanently delete every entry in the trash. This action cannot be undone. Returns the number of entries removed.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleEmptyTrash)
}

func (s *Server) registerJournalStatsTool() {
	tool := mcp.Tool{
		Name:        "journal_stats",
		Description: "Get an overview of the journal: total, active, and trashed entry counts, total word count across active entries, and first/last entry timestamps. Use this to understand journal activity before other operations.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleJournalStats)
}

// Handler implementations

func (s *Server) handleListEntries(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ListEntriesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	var entries []*models.Entry
	var err error
	if input.Trash != nil && *input.Trash {
		entries, err = s.store.LoadTrashEntries()
	} else {
		entries, err = s.store.LoadActiveEntries()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if input.Limit != nil {
		if *input.Limit < 0 {
			return nil, fmt.Errorf("limit must be non-negative, got %d", *input.Limit)
		}
		if len(entries) > *input.Limit {
			entries = entries[:*input.Limit]
		}
	}

	entryOutputs := make([]EntryOutput, 0, len(entries))
	for _, entry := range entries {
		entryOutputs = append(entryOutputs, s.entryOutput(entry))
	}

	output := ListEntriesOutput{
		Entries: entryOutputs,
		Count:   len(entryOutputs),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleGetEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input GetEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	entry, err := s.findEntry(input.EntryID)
	if err != nil {
		return nil, err
	}

	output := GetEntryOutput{
		EntryOutput: s.entryOutput(entry),
		Content:     entry.Content,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleWriteEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input WriteEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("content must not be empty")
	}

	var entry *models.Entry
	var err error
	if input.EntryID != nil && *input.EntryID != "" {
		entry, err = s.findEntry(*input.EntryID)
	} else {
		entry, err = s.store.TodayEntryOrCreate()
	}
	if err != nil {
		return nil, err
	}

	if input.Append != nil && *input.Append && entry.Content != "" {
		entry.Content = entry.Content + "\n\n" + input.Content
	} else {
		entry.Content = input.Content
	}

	if err := s.store.SaveEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	output := GetEntryOutput{
		EntryOutput: s.entryOutput(entry),
		Content:     entry.Content,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleSearchEntries(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input SearchEntriesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	cfg := s.searchCfg
	if input.WholeWords != nil {
		cfg.WholeWordsOnly = *input.WholeWords
	}
	if input.CaseSensitive != nil {
		cfg.CaseSensitive = *input.CaseSensitive
	}
	if input.MinScore != nil {
		if *input.MinScore < 0 || *input.MinScore > 1 {
			return nil, fmt.Errorf("min_score must be between 0 and 1, got %v", *input.MinScore)
		}
		cfg.MinScore = *input.MinScore
	}

	entries, err := s.store.LoadActiveEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	results, stats := search.Search(entries, input.Query, cfg)

	resultOutputs := make([]SearchResultOutput, 0, len(results))
	for _, r := range results {
		resultOutputs = append(resultOutputs, SearchResultOutput{
			EntryOutput:   s.entryOutput(r.Entry),
			Score:         r.Score,
			MatchedFields: r.MatchedFields,
			Snippet:       r.Highlighted,
		})
	}

	output := SearchEntriesOutput{
		Results:      resultOutputs,
		Count:        stats.TotalResults,
		AverageScore: stats.AverageScore,
		ValidQuery:   stats.IsValidQuery,
		Reason:       string(stats.InvalidReason),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleTrashEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input TrashEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	entry, err := s.findEntry(input.EntryID)
	if err != nil {
		return nil, err
	}

	if err := s.store.MoveToTrash(entry.ID); err != nil {
		return nil, fmt.Errorf("failed to trash entry: %w", err)
	}

	output := TrashEntryOutput{
		Success:     true,
		Message:     fmt.Sprintf("Entry %s moved to trash", entry.ID),
		EntryID:     entry.ID,
		DaysToPurge: s.store.RetentionDays(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleRestoreEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input RestoreEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	entry, err := s.findEntry(input.EntryID)
	if err != nil {
		return nil, err
	}

	if err := s.store.RestoreFromTrash(entry.ID); err != nil {
		return nil, fmt.Errorf("failed to restore entry: %w", err)
	}

	output := TrashEntryOutput{
		Success: true,
		Message: fmt.Sprintf("Entry %s restored", entry.ID),
		EntryID: entry.ID,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleEmptyTrash(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	removed, err := s.store.EmptyTrash()
	if err != nil {
		return nil, fmt.Errorf("failed to empty trash: %w", err)
	}

	output := EmptyTrashOutput{Removed: removed}
	if removed == 0 {
		output.Message = "Trash was already empty"
	} else {
		output.Message = fmt.Sprintf("Permanently deleted %d entries", removed)
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleJournalStats(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output, err := s.calculateStats()
	if err != nil {
		return nil, err
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) calculateStats() (*JournalStatsOutput, error) {
	entries, err := s.store.LoadEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	output := &JournalStatsOutput{
		TotalEntries:  len(entries),
		RetentionDays: s.store.RetentionDays(),
	}
	for _, entry := range entries {
		if entry.InTrash {
			output.TrashEntries++
			continue
		}
		output.ActiveEntries++
		output.TotalWords += entry.WordCount

		created := entry.CreatedAt
		if output.FirstEntryAt == nil || created.Before(*output.FirstEntryAt) {
			t := created
			output.FirstEntryAt = &t
		}
		if output.LastEntryAt == nil || created.After(*output.LastEntryAt) {
			t := created
			output.LastEntryAt = &t
		}
	}

	return output, nil
}

// entryOutput projects an entry into the shared tool output shape.
func (s *Server) entryOutput(entry *models.Entry) EntryOutput {
	out := EntryOutput{
		ID:        entry.ID,
		Date:      entry.Date,
		Preview:   entry.PreviewText,
		WordCount: entry.WordCount,
		InTrash:   entry.InTrash,
		DeletedAt: entry.DeletedAt,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
	if days, ok := s.store.DaysUntilDeletion(entry); ok {
		out.DaysToPurge = &days
	}
	return out
}

const minPrefixLength = 4

// findEntry resolves an entry by full ID or unambiguous prefix.
func (s *Server) findEntry(ref string) (*models.Entry, error) {
	entries, err := s.store.LoadEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	for _, entry := range entries {
		if entry.ID == ref {
			return entry, nil
		}
	}

	if len(ref) < minPrefixLength {
		return nil, fmt.Errorf("entry not found: %s", ref)
	}

	var match *models.Entry
	for _, entry := range entries {
		if strings.HasPrefix(entry.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous entry ID prefix: %s", ref)
			}
			match = entry
		}
	}
	if match == nil {
		return nil, fmt.Errorf("entry not found: %s", ref)
	}
	return match, nil
}
