package ytserver

import (
	"context"

	"github.com/acehoss/youtube-mcp-server/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGetPlaylist(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getPlaylist",
		Description: "Get information about a YouTube playlist: title, description, author, video count, view count, last update, and privacy.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.PlaylistInput) (*mcp.CallToolResult, youtube.PlaylistOutput, error) {
		out, err := svc.GetPlaylist(ctx, input)
		return nil, out, err
	})
}

func registerGetPlaylistItems(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getPlaylistItems",
		Description: "List the videos in a YouTube playlist with their positions, titles, authors, and durations. Optionally limit the number of results.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.PlaylistItemsInput) (*mcp.CallToolResult, youtube.PlaylistItemsOutput, error) {
		out, err := svc.GetPlaylistItems(ctx, input)
		return nil, out, err
	})
}
