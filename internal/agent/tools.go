package agent

import "github.com/mark3labs/mcp-go/mcp"

// listExhibitsTool defines the list_exhibits MCP tool.
var listExhibitsTool = mcp.NewTool("list_exhibits",
	mcp.WithDescription("List all exhibits with their uuid, title, and publication state."),
)

// getExhibitTool defines the get_exhibit MCP tool.
var getExhibitTool = mcp.NewTool("get_exhibit",
	mcp.WithDescription("Get one exhibit record including its headings."),
	mcp.WithString("exhibit_id",
		mcp.Required(),
		mcp.Description("UUID of the exhibit"),
	),
)

// listItemsTool defines the list_items MCP tool.
var listItemsTool = mcp.NewTool("list_items",
	mcp.WithDescription("List the items of one grid or timeline inside an exhibit."),
	mcp.WithString("exhibit_id",
		mcp.Required(),
		mcp.Description("UUID of the exhibit"),
	),
	mcp.WithString("container_type",
		mcp.Required(),
		mcp.Description("Container kind to list items from"),
		mcp.Enum("grid", "timeline"),
	),
	mcp.WithString("container_id",
		mcp.Required(),
		mcp.Description("UUID of the grid or timeline"),
	),
)
