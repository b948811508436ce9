package youtube

import (
	"context"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
)

// Client is the underlying Innertube client the service normalizes over.
// Every call returns a loosely-typed payload in the shape described in
// the package doc; the service never assumes any field is present.
type Client interface {
	// GetInfo fetches raw video info (basic_info, captions, related feeds).
	GetInfo(ctx context.Context, videoID string) (VideoInfo, error)
	// Search runs a search and returns a payload with a "videos" hit list.
	Search(ctx context.Context, query string, opts SearchOptions) (payload.Value, error)
	// GetChannel fetches a channel page (metadata, header).
	GetChannel(ctx context.Context, channelID string) (ChannelPage, error)
	// GetPlaylist fetches a playlist payload (info, items).
	GetPlaylist(ctx context.Context, playlistID string) (payload.Value, error)
	// GetTrending fetches the trending feed payload ("videos" list).
	GetTrending(ctx context.Context) (payload.Value, error)
}

// VideoInfo is one fetched video: its raw payload plus the payload-attached
// transcript accessor.
type VideoInfo interface {
	Payload() payload.Value
	// GetTranscript fetches the transcript body for this video. The returned
	// shape is not guaranteed stable; see Service.GetTranscript for the
	// shapes tolerated.
	GetTranscript(ctx context.Context) (payload.Value, error)
}

// ChannelPage is one fetched channel: its raw payload plus the videos-tab
// sub-call.
type ChannelPage interface {
	Payload() payload.Value
	GetVideos(ctx context.Context) (payload.Value, error)
}

// SearchOptions narrows a search to a result type ("video").
type SearchOptions struct {
	Type string
}

// ClientFactory constructs the shared client. Called lazily, at most once
// in flight; see Service.
type ClientFactory func(ctx context.Context) (Client, error)
