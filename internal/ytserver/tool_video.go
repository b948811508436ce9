package ytserver

import (
	"context"

	"github.com/acehoss/youtube-mcp-server/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGetVideo(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getVideo",
		Description: "Get detailed information about a YouTube video: title, description, author, duration, view count, publish date, thumbnails, and embed URL.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.VideoInput) (*mcp.CallToolResult, youtube.VideoOutput, error) {
		out, err := svc.GetVideo(ctx, input)
		return nil, out, err
	})
}

func registerGetTrendingVideos(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTrendingVideos",
		Description: "Get the videos currently trending on YouTube. Optionally limit the number of results and set a region code (results reflect YouTube's feed for the client's region).",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.TrendingInput) (*mcp.CallToolResult, youtube.TrendingOutput, error) {
		out, err := svc.GetTrendingVideos(ctx, input)
		return nil, out, err
	})
}

func registerGetRelatedVideos(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getRelatedVideos",
		Description: "Get videos related to a given YouTube video, as shown in the watch-next feed.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.RelatedInput) (*mcp.CallToolResult, youtube.RelatedOutput, error) {
		out, err := svc.GetRelatedVideos(ctx, input)
		return nil, out, err
	})
}
