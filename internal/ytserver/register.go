// Package ytserver exposes the YouTube normalization service as MCP tools.
// Each tool is read-only and delegates to the service layer; inputs are
// validated there so handlers stay thin.
package ytserver

import (
	"github.com/acehoss/youtube-mcp-server/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all YouTube tools on the given MCP server:
// video lookup, search, transcripts, channels, playlists, trending, and
// related videos.
func RegisterTools(server *mcp.Server, svc *youtube.Service) {
	registerGetVideo(server, svc)
	registerSearchVideos(server, svc)
	registerGetTranscript(server, svc)
	registerSearchTranscript(server, svc)
	registerGetTimestampedTranscript(server, svc)
	registerGetChannel(server, svc)
	registerListVideos(server, svc)
	registerGetPlaylist(server, svc)
	registerGetPlaylistItems(server, svc)
	registerGetTrendingVideos(server, svc)
	registerGetRelatedVideos(server, svc)
}

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{ReadOnlyHint: true}
}
