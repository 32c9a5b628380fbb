// ABOUTME: MCP resource providers for murmure
// ABOUTME: Exposes read-only views of entries, the trash, and journal statistics

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/murmure/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Timestamp   time.Time      `json:"timestamp"`
	Count       int            `json:"count"`
	ResourceURI string         `json:"resource_uri"`
	Filters     map[string]any `json:"filters,omitempty"`
}

func (s *Server) registerResources() {
	s.registerTodayResource()
	s.registerEntriesResource()
	s.registerTrashResource()
	s.registerStatsResource()
}

func (s *Server) registerTodayResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         "murmure://today",
			Name:        "Today's Entry",
			Description: "Today's journal entry with full content, created on first access if it does not exist yet",
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			entry, err := s.store.TodayEntryOrCreate()
			if err != nil {
				return nil, fmt.Errorf("failed to open today's entry: %w", err)
			}

			resourceData := ResourceData{
				Metadata: ResourceMetadata{
					Timestamp:   time.Now(),
					Count:       1,
					ResourceURI: "murmure://today",
				},
				Data: GetEntryOutput{
					EntryOutput: s.entryOutput(entry),
					Content:     entry.Content,
				},
				Links: map[string]string{
					"all_entries": "murmure://entries",
					"trash":       "murmure://trash",
					"stats":       "murmure://stats",
				},
			}

			return resourceContents(request, resourceData)
		},
	)
}

func (s *Server) registerEntriesResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         "murmure://entries",
			Name:        "All Entries",
			Description: "List all active journal entries with metadata, sorted newest first",
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			entries, err := s.store.LoadActiveEntries()
			if err != nil {
				return nil, fmt.Errorf("failed to list entries: %w", err)
			}

			resourceData := ResourceData{
				Metadata: ResourceMetadata{
					Timestamp:   time.Now(),
					Count:       len(entries),
					ResourceURI: "murmure://entries",
					Filters: map[string]any{
						"in_trash": false,
					},
				},
				Data: entryOutputs(s, entries),
				Links: map[string]string{
					"today": "murmure://today",
					"trash": "murmure://trash",
					"stats": "murmure://stats",
				},
			}

			return resourceContents(request, resourceData)
		},
	)
}

func (s *Server) registerTrashResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         "murmure://trash",
			Name:        "Trash",
			Description: "List all trashed journal entries with their deletion timestamps and days until permanent purge",
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			entries, err := s.store.LoadTrashEntries()
			if err != nil {
				return nil, fmt.Errorf("failed to list trash: %w", err)
			}

			resourceData := ResourceData{
				Metadata: ResourceMetadata{
					Timestamp:   time.Now(),
					Count:       len(entries),
					ResourceURI: "murmure://trash",
					Filters: map[string]any{
						"in_trash": true,
					},
				},
				Data: entryOutputs(s, entries),
				Links: map[string]string{
					"today":       "murmure://today",
					"all_entries": "murmure://entries",
					"stats":       "murmure://stats",
				},
			}

			return resourceContents(request, resourceData)
		},
	)
}

func (s *Server) registerStatsResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         "murmure://stats",
			Name:        "Journal Statistics",
			Description: "Overview statistics including entry counts (active, trashed), total word count, and first/last entry times",
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			stats, err := s.calculateStats()
			if err != nil {
				return nil, fmt.Errorf("failed to calculate stats: %w", err)
			}

			resourceData := ResourceData{
				Metadata: ResourceMetadata{
					Timestamp:   time.Now(),
					Count:       stats.TotalEntries,
					ResourceURI: "murmure://stats",
				},
				Data: stats,
				Links: map[string]string{
					"today":       "murmure://today",
					"all_entries": "murmure://entries",
					"trash":       "murmure://trash",
				},
			}

			return resourceContents(request, resourceData)
		},
	)
}

func entryOutputs(s *Server, entries []*models.Entry) []EntryOutput {
	outputs := make([]EntryOutput, 0, len(entries))
	for _, entry := range entries {
		outputs = append(outputs, s.entryOutput(entry))
	}
	return outputs
}

func resourceContents(request mcp.ReadResourceRequest, data ResourceData) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
