package ytserver

import (
	"context"

	"github.com/acehoss/youtube-mcp-server/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGetChannel(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getChannel",
		Description: "Get information about a YouTube channel: title, description, subscriber count, video count, thumbnails, and banners. Hidden counters are reported as N/A.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.ChannelInput) (*mcp.CallToolResult, youtube.ChannelOutput, error) {
		out, err := svc.GetChannel(ctx, input)
		return nil, out, err
	})
}

func registerListVideos(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "listVideos",
		Description: "List a channel's uploaded videos with titles, durations, view counts, and publish dates. Optionally limit the number of results.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.ChannelVideosInput) (*mcp.CallToolResult, youtube.ChannelVideosOutput, error) {
		out, err := svc.ListVideos(ctx, input)
		return nil, out, err
	})
}
