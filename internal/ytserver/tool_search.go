package ytserver

import (
	"context"

	"github.com/acehoss/youtube-mcp-server/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSearchVideos(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "searchVideos",
		Description: "Search YouTube for videos matching a query. Returns video IDs, titles, descriptions, channel info, durations, and view counts.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.SearchInput) (*mcp.CallToolResult, youtube.SearchOutput, error) {
		out, err := svc.SearchVideos(ctx, input)
		return nil, out, err
	})
}
