package innertube

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
	"github.com/acehoss/youtube-mcp-server/internal/youtube"
)

// GetInfo fetches a video via the player endpoint, plus the watch-next feed
// for related videos. The watch-next call is best-effort: video info is
// still usable without it.
func (c *Client) GetInfo(ctx context.Context, videoID string) (youtube.VideoInfo, error) {
	player, err := c.post(ctx, "player", map[string]any{"videoId": videoID})
	if err != nil {
		return nil, err
	}
	if reason := playabilityError(player); reason != "" {
		return nil, fmt.Errorf("video unavailable: %s", reason)
	}

	info := map[string]any{
		"basic_info": basicInfo(player),
		"captions":   map[string]any{"caption_tracks": captionTracks(player)},
	}

	next, err := c.post(ctx, "next", map[string]any{"videoId": videoID})
	if err != nil {
		slog.Warn("watch-next fetch failed", slog.String("video_id", videoID), slog.Any("error", err))
	} else if feed := watchNextFeed(next); len(feed) > 0 {
		info["watch_next_feed"] = feed
	}

	return &videoInfo{
		client:        c,
		data:          payload.New(info),
		transcriptURL: firstTrackURL(player),
	}, nil
}

// playabilityError returns the upstream error reason for videos that
// cannot be fetched (removed, private, bad ID), or "" when playable.
func playabilityError(player payload.Value) string {
	status := player.Get("playabilityStatus", "status").Str()
	switch status {
	case "", "OK", "LIVE_STREAM_OFFLINE", "CONTENT_CHECK_REQUIRED":
		return ""
	}
	if reason := player.Get("playabilityStatus", "reason").Str(); reason != "" {
		return reason
	}
	return status
}

// basicInfo flattens videoDetails and microformat into the basic-info shape.
func basicInfo(player payload.Value) map[string]any {
	details := player.Get("videoDetails")
	micro := player.Get("microformat", "playerMicroformatRenderer")

	return map[string]any{
		"id":                details.Get("videoId").Str(),
		"title":             details.Get("title").Str(),
		"short_description": details.Get("shortDescription").Str(),
		"author":            details.Get("author").Str(),
		"channel_id":        details.Get("channelId").Str(),
		"duration":          details.Get("lengthSeconds").Int(),
		"view_count":        details.Get("viewCount").Int(),
		"start_timestamp":   micro.FirstOf(payload.Path("publishDate"), payload.Path("uploadDate")).Str(),
		"thumbnail":         details.Get("thumbnail", "thumbnails").Raw(),
		"is_live":           details.Get("isLiveContent").Bool(),
		"is_private":        details.Get("isPrivate").Bool(),
		"is_unlisted":       micro.Get("isUnlisted").Bool(),
		"category":          micro.Get("category").Str(),
		"keywords":          details.Get("keywords").Raw(),
		"embed":             map[string]any{"iframe_url": micro.Get("embed", "iframeUrl").Str()},
	}
}

// captionTracks flattens the caption track list. Tracks without a fetch URL
// are kept — language selection only needs the code — but transcripts can
// only be fetched from the first track that has one.
func captionTracks(player payload.Value) []any {
	raw := player.Get("captions", "playerCaptionsTracklistRenderer", "captionTracks").List()
	tracks := make([]any, 0, len(raw))
	for _, t := range raw {
		tracks = append(tracks, map[string]any{
			"language_code": t.Get("languageCode").Str(),
			"name":          text(t.Get("name")),
			"base_url":      t.Get("baseUrl").Str(),
		})
	}
	return tracks
}

func firstTrackURL(player payload.Value) string {
	for _, t := range player.Get("captions", "playerCaptionsTracklistRenderer", "captionTracks").List() {
		if url := t.Get("baseUrl").Str(); url != "" {
			return url
		}
	}
	return ""
}

// watchNextFeed extracts related-video entries from the next response.
func watchNextFeed(next payload.Value) []any {
	results := next.Get("contents", "twoColumnWatchNextResults",
		"secondaryResults", "secondaryResults", "results")
	renderers := collectRenderers(results, "compactVideoRenderer", "videoRenderer")
	feed := make([]any, 0, len(renderers))
	for _, r := range renderers {
		if entry, ok := videoEntry(r); ok {
			feed = append(feed, entry)
		}
	}
	return feed
}

// videoInfo is one fetched video plus its payload-attached transcript
// accessor.
type videoInfo struct {
	client        *Client
	data          payload.Value
	transcriptURL string
}

func (v *videoInfo) Payload() payload.Value { return v.data }

func (v *videoInfo) GetTranscript(ctx context.Context) (payload.Value, error) {
	if v.transcriptURL == "" {
		return payload.Value{}, fmt.Errorf("caption track has no fetch URL")
	}
	return v.client.fetchTranscript(ctx, v.transcriptURL)
}
