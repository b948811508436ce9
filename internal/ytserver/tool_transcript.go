package ytserver

import (
	"context"

	"github.com/acehoss/youtube-mcp-server/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGetTranscript(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTranscript",
		Description: "Get the transcript (captions) of a YouTube video as a list of text segments. Optionally select the caption language; falls back to the first available track.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.TranscriptInput) (*mcp.CallToolResult, youtube.TranscriptOutput, error) {
		out, err := svc.GetTranscript(ctx, input)
		return nil, out, err
	})
}

func registerSearchTranscript(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "searchTranscript",
		Description: "Search within a video's transcript for segments containing a phrase (case-insensitive). Returns the matching segments with their offsets.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.SearchTranscriptInput) (*mcp.CallToolResult, youtube.SearchTranscriptOutput, error) {
		out, err := svc.SearchTranscript(ctx, input)
		return nil, out, err
	})
}

func registerGetTimestampedTranscript(server *mcp.Server, svc *youtube.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTimestampedTranscript",
		Description: "Get a video's transcript with human-readable timestamps (M:SS) on every segment, for citing moments in the video.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input youtube.TranscriptInput) (*mcp.CallToolResult, youtube.TimestampedTranscriptOutput, error) {
		out, err := svc.GetTimestampedTranscript(ctx, input)
		return nil, out, err
	})
}
