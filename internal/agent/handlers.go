package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleListExhibits lists all exhibits in a compact text table.
func (s *Server) handleListExhibits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exhibits, err := s.client.Exhibits(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing exhibits failed: %v", err)), nil
	}
	if len(exhibits) == 0 {
		return mcp.NewToolResultText("No exhibits found."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d exhibit(s):\n", len(exhibits)))
	for _, e := range exhibits {
		state := "draft"
		if e.IsPublished {
			state = "published"
		}
		sb.WriteString(fmt.Sprintf("- %s  %s  (%s)\n", e.UUID, e.Title, state))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetExhibit returns one exhibit and its headings.
func (s *Server) handleGetExhibit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exhibitID, err := request.RequireString("exhibit_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: exhibit_id"), nil
	}

	exhibit, err := s.client.Exhibit(ctx, exhibitID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching exhibit failed: %v", err)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title: %s\n", exhibit.Title))
	if exhibit.Subtitle != "" {
		sb.WriteString(fmt.Sprintf("Subtitle: %s\n", exhibit.Subtitle))
	}
	sb.WriteString(fmt.Sprintf("Published: %v\nFeatured: %v\n", exhibit.IsPublished, exhibit.IsFeatured))
	if exhibit.AboutTheCurators != "" {
		sb.WriteString("\nAbout the curators:\n")
		sb.WriteString(exhibit.AboutTheCurators)
		sb.WriteString("\n")
	}

	headings, err := s.client.Headings(ctx, exhibitID)
	if err == nil && len(headings) > 0 {
		sb.WriteString("\nHeadings:\n")
		for _, h := range headings {
			sb.WriteString(fmt.Sprintf("- %s  %s\n", h.UUID, h.Text))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleListItems lists the items of one grid or timeline.
func (s *Server) handleListItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exhibitID, err := request.RequireString("exhibit_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: exhibit_id"), nil
	}
	containerType, err := request.RequireString("container_type")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: container_type"), nil
	}
	containerID, err := request.RequireString("container_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: container_id"), nil
	}

	var sb strings.Builder
	switch containerType {
	case "grid":
		items, err := s.client.GridItems(ctx, exhibitID, containerID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("listing grid items failed: %v", err)), nil
		}
		sb.WriteString(fmt.Sprintf("Found %d grid item(s):\n", len(items)))
		for _, i := range items {
			sb.WriteString(fmt.Sprintf("- %s  %s  [%s]\n", i.UUID, i.Title, i.ItemType))
		}
	case "timeline":
		items, err := s.client.TimelineItems(ctx, exhibitID, containerID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("listing timeline items failed: %v", err)), nil
		}
		sb.WriteString(fmt.Sprintf("Found %d timeline item(s):\n", len(items)))
		for _, i := range items {
			sb.WriteString(fmt.Sprintf("- %s  %d  %s\n", i.UUID, i.Year, i.Title))
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown container type %q", containerType)), nil
	}

	return mcp.NewToolResultText(sb.String()), nil
}
